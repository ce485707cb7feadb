package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. NAVIGATOR_SERVER_PORT.
const EnvPrefix = "NAVIGATOR"

// SetDefaults registers DefaultSettings on v so every key is known to
// AutomaticEnv even when no config file exists.
func SetDefaults(v *viper.Viper) {
	d := domain.DefaultSettings()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)

	v.SetDefault("repository.driver", d.Repository.Driver)
	v.SetDefault("repository.sqlite_path", d.Repository.SQLitePath)
	v.SetDefault("repository.postgres_host", "localhost")
	v.SetDefault("repository.postgres_port", 5432)
	v.SetDefault("repository.postgres_user", "")
	v.SetDefault("repository.postgres_password", "")
	v.SetDefault("repository.postgres_db", "navigator")
	v.SetDefault("repository.postgres_sslmode", "disable")
	v.SetDefault("repository.max_open_conns", 0)
	v.SetDefault("repository.max_idle_conns", 0)
	v.SetDefault("repository.conn_max_lifetime", "0s")

	v.SetDefault("cache.type", d.Cache.Type)
	v.SetDefault("cache.local_max_size", d.Cache.LocalMaxSize)
	v.SetDefault("cache.local_ttl", d.Cache.LocalTTL)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("catalog", d.CatalogPath)
}

// LoadSettings reads settings from cfgFile (or navigator.yaml in the standard
// locations), NAVIGATOR_* environment variables and any flags bound to v.
// A missing config file is not an error.
func LoadSettings(v *viper.Viper, cfgFile string) (*domain.Settings, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "navigator"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("navigator")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := ValidateSettings(&settings); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return &settings, nil
}

// ValidateSettings checks enumerated settings
func ValidateSettings(s *domain.Settings) error {
	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", s.Server.Port)
	}
	switch s.Repository.Driver {
	case "sqlite", "postgres", "none":
	default:
		return fmt.Errorf("unsupported repository driver: %s", s.Repository.Driver)
	}
	switch s.Cache.Type {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("unsupported cache type: %s", s.Cache.Type)
	}
	if _, err := ParseLogLevel(s.Logging.Level); err != nil {
		return err
	}
	switch s.Logging.Format {
	case "text", "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", s.Logging.Format)
	}
	return nil
}

// ParseLogLevel maps a level name onto slog
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// NewLogger builds a text or JSON slog logger writing to w
func NewLogger(cfg domain.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "console", "":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}
	return slog.New(handler), nil
}
