package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instrategy/salesflow/internal/infrastructure/config"
)

func TestNewDatabaseDefersConnection(t *testing.T) {
	// Port 1 is never listening; opening the handle must still succeed
	// because connectivity is only checked on first use
	cfg := &config.DatabaseConfig{
		Host:         "127.0.0.1",
		Port:         1,
		User:         "salesflow",
		Password:     "secret",
		DBName:       "salesflow",
		SSLMode:      "disable",
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	}

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, db.Ping())
}
