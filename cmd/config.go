package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"orderwizard/internal/pkg/i18n"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"orders"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	OrderAPIURL     string        `env:"ORDER_API_URL" envDefault:"http://localhost:8080"`
	OrderAPITimeout time.Duration `env:"ORDER_API_TIMEOUT" envDefault:"0s"`

	WizardIdleTTL       time.Duration `env:"WIZARD_IDLE_TTL" envDefault:"30m"`
	WizardSweepSchedule string        `env:"WIZARD_SWEEP_SCHEDULE" envDefault:"@every 1m"`

	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"es-MX"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig loads the named dotenv files when present and parses the
// environment. Variables already set win over file values.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	for _, name := range dotenvFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", name, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Locale returns the supported locale closest to DEFAULT_LOCALE.
func (c Config) Locale() language.Tag {
	tag, ok := i18n.Parse(c.DefaultLocale)
	if !ok {
		return i18n.SpanishMX
	}
	return tag
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
