package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort                 string        `env:"HTTP_PORT" envDefault:"5000"`
	AppEnv                   string        `env:"APP_ENV" envDefault:"production"`
	StorageDriver            string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DatabaseURL              string        `env:"DATABASE_URL"`
	DBAutoMigrate            bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	BcryptCost               int           `env:"BCRYPT_COST" envDefault:"10"`
	EnableGlobalErrorLogging bool          `env:"ENABLE_GLOBAL_ERROR_LOGGING" envDefault:"false"`
	ShutdownTimeout          time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New(`config: DATABASE_URL is required when STORAGE_DRIVER is "postgres"`)
		}
	case StorageMemory:
	default:
		return errors.New(`config: STORAGE_DRIVER must be "postgres" or "memory"`)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return errors.New("config: BCRYPT_COST out of range")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
