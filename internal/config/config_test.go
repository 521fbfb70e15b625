package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DBow899/tdd-bdd-final-project/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "file::memory:?cache=shared", cfg.DatabaseDSN)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DSN", "host=127.0.0.1 user=postgres dbname=products port=5432 sslmode=disable")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load()

	assert.Equal(t, "host=127.0.0.1 user=postgres dbname=products port=5432 sslmode=disable", cfg.DatabaseDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}
