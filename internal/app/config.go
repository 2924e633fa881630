package app

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/yungbote/something-core/internal/data/db"
	"github.com/yungbote/something-core/internal/observability"
)

type Config struct {
	LogMode        string   `envconfig:"LOG_MODE" default:"development"`
	Port           string   `envconfig:"PORT" default:"8080"`
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
	MetricsEnabled bool     `envconfig:"METRICS_ENABLED" default:"false"`

	DBDriver         string `envconfig:"DB_DRIVER" default:"postgres"`
	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     string `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD"`
	PostgresName     string `envconfig:"POSTGRES_NAME" default:"something"`
	SQLitePath       string `envconfig:"SQLITE_PATH"`

	Otel observability.OtelConfig `ignored:"true"`
}

// LoadConfig reads a .env file when present, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Otel); err != nil {
		return Config{}, fmt.Errorf("load otel config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string { return ":" + c.Port }

func (c Config) DB() db.Config {
	return db.Config{
		Driver:     c.DBDriver,
		Host:       c.PostgresHost,
		Port:       c.PostgresPort,
		User:       c.PostgresUser,
		Password:   c.PostgresPassword,
		Name:       c.PostgresName,
		SQLitePath: c.SQLitePath,
	}
}
