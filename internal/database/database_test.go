package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DBow899/tdd-bdd-final-project/internal/database"
	"github.com/DBow899/tdd-bdd-final-project/internal/models"
)

func TestConnectSQLite(t *testing.T) {
	db, err := database.Connect("file:connect_test?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", db.Name())
	assert.True(t, db.Migrator().HasTable(&models.Product{}))
}

func TestConnectBadPostgresDSN(t *testing.T) {
	// A postgres-shaped DSN pointing nowhere must surface the engine error.
	_, err := database.Connect("host=127.0.0.1 port=1 user=nobody dbname=nothing sslmode=disable connect_timeout=1", zap.NewNop())
	assert.Error(t, err)
}
