package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPAddr        string `env:"HTTP_ADDR" envDefault:":8080"`
	StorageDriver   string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath      string `env:"SQLITE_PATH" envDefault:"quotecrm.db"`
	DatabaseURL     string `env:"DATABASE_URL"`
	InternalToken   string `env:"INTERNAL_TOKEN"`
	CORSAllowOrigin string `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`
	PDFFontDir      string `env:"PDF_FONT_DIR"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"LOG_FORMAT" envDefault:"auto"`
}

// Load reads an optional .env file and then the process environment. The
// result is not validated; callers apply their overrides first and then call
// Validate.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverMemory:
		return nil
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("missing env DATABASE_URL for storage driver %q", c.StorageDriver)
		}
		return nil
	}
	return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
}
