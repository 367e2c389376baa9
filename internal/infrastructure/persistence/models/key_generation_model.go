package models

import (
	"time"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
)

// KeyGenerationModel is the GORM database model for a written key file
type KeyGenerationModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Algorithm   string    `gorm:"not null;index;type:varchar(8)"`
	KeyFileName string    `gorm:"not null;type:varchar(255)"`
	KeyFilePath string    `gorm:"not null;type:text"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (KeyGenerationModel) TableName() string {
	return "key_generations"
}

// ToDomain converts GORM model to domain entity
func (m *KeyGenerationModel) ToDomain() *keys.KeyGenerationResult {
	return &keys.KeyGenerationResult{
		ID:          m.ID,
		Algorithm:   keys.Algorithm(m.Algorithm),
		KeyFileName: m.KeyFileName,
		KeyFilePath: m.KeyFilePath,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyGenerationModel) FromDomain(r *keys.KeyGenerationResult) {
	m.ID = r.ID
	m.Algorithm = string(r.Algorithm)
	m.KeyFileName = r.KeyFileName
	m.KeyFilePath = r.KeyFilePath
	m.CreatedAt = r.CreatedAt
}
