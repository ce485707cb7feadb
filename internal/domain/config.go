package domain

// Settings holds the runtime configuration of the navigator binary.
type Settings struct {
	Server     ServerConfig     `mapstructure:"server" json:"server"`
	Repository RepositoryConfig `mapstructure:"repository" json:"repository"`
	Cache      CacheConfig      `mapstructure:"cache" json:"cache"`
	Logging    LoggingConfig    `mapstructure:"logging" json:"logging"`

	// CatalogPath points at a YAML vehicle catalog. Empty uses the bundled sample.
	CatalogPath string `mapstructure:"catalog" json:"catalog"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string `mapstructure:"host" json:"host"`
	Port         int    `mapstructure:"port" json:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout" json:"readTimeout"`   // seconds
	WriteTimeout int    `mapstructure:"write_timeout" json:"writeTimeout"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" json:"format"` // json, text
}

// DefaultSettings returns a single-node configuration: SQLite profiles and an in-process cache.
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
		},
		Repository: RepositoryConfig{
			Driver:     "sqlite",
			SQLitePath: "./navigator.db",
		},
		Cache: CacheConfig{
			Type:         "memory",
			LocalMaxSize: 1000,
			LocalTTL:     300,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
