package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/persistence/models"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"

	"gorm.io/gorm"
)

// ErrRecordNotFound is returned by GetByID for an unknown id
var ErrRecordNotFound = errors.New("key generation record not found")

type gormKeyGenerationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyGenerationRepository creates a new GORM-based KeyGenerationRepository implementation
func NewGormKeyGenerationRepository(db *gorm.DB, logger logger.Logger) (keys.KeyGenerationRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &gormKeyGenerationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyGenerationRepository) Create(ctx context.Context, result *keys.KeyGenerationResult) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyGenerationModel{}
	model.FromDomain(result)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record key generation: %w", err)
	}

	r.logger.Info("Recorded key generation with id ", result.ID)
	return nil
}

// List returns matching records, newest first
func (r *gormKeyGenerationRepository) List(ctx context.Context, query *keys.KeyGenerationQuery) ([]*keys.KeyGenerationResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyGenerationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyGenerationModel{})

	if query.Algorithm != "" {
		dbQuery = dbQuery.Where("algorithm = ?", string(query.Algorithm))
	}
	dbQuery = dbQuery.Order("created_at desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key generation records: %w", err)
	}

	domainList := make([]*keys.KeyGenerationResult, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormKeyGenerationRepository) GetByID(ctx context.Context, id string) (*keys.KeyGenerationResult, error) {
	var model models.KeyGenerationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch key generation record: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyGenerationRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.KeyGenerationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete key generation record: %w", err)
	}

	r.logger.Info("Deleted key generation record with id ", id)
	return nil
}
