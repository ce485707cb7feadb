// Package domain defines the records exchanged by the navigator's calculators
// and the interfaces of its storage collaborators.
package domain

import (
	"context"
	"time"
)

// ProfileRepository persists financial profiles keyed by user id.
// The calculation engine never touches it.
type ProfileRepository interface {
	SaveProfile(ctx context.Context, userID string, profile *FinancialProfile) error
	// GetProfile returns ErrProfileNotFound when nothing is stored for userID.
	GetProfile(ctx context.Context, userID string) (*FinancialProfile, error)
	DeleteProfile(ctx context.Context, userID string) error
	ListUserIDs(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	// Driver is "sqlite", "postgres" or "none"
	Driver string `mapstructure:"driver" json:"driver"`

	SQLitePath string `mapstructure:"sqlite_path" json:"sqlitePath"`

	PostgresHost     string `mapstructure:"postgres_host" json:"postgresHost"`
	PostgresPort     int    `mapstructure:"postgres_port" json:"postgresPort"`
	PostgresUser     string `mapstructure:"postgres_user" json:"postgresUser"`
	PostgresPassword string `mapstructure:"postgres_password" json:"-"`
	PostgresDB       string `mapstructure:"postgres_db" json:"postgresDB"`
	PostgresSSLMode  string `mapstructure:"postgres_sslmode" json:"postgresSSLMode"`

	MaxOpenConns    int           `mapstructure:"max_open_conns" json:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" json:"connMaxLifetime"`
}
