package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultPort is the REST listen port when the file sets none
const DefaultPort = "8080"

// RestConfig holds everything the REST server needs
type RestConfig struct {
	Port     string           `mapstructure:"Port" validate:"required,numeric"`
	Crypto   CryptoSettings   `mapstructure:"CryptoSuite"`
	Logger   LoggerSettings   `mapstructure:"Logger"`
	Database DatabaseSettings `mapstructure:"Database"`
}

// Validate validates every nested section
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for Port: %w", err)
	}
	if err := c.Crypto.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Database.Validate()
}
