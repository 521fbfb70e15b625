package config

import (
	"github.com/spf13/viper"
)

// Config holds the runtime configuration, loaded from environment variables.
type Config struct {
	DatabaseDSN string
	LogLevel    string
}

// Load reads the configuration from the environment with sensible defaults.
// DATABASE_DSN accepts either a PostgreSQL DSN or an SQLite path; the default
// keeps everything in memory so the catalog works out of the box.
func Load() *Config {
	v := viper.New()
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	return &Config{
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}
}
