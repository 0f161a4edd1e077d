package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5433",
		User:     "shareit",
		Password: "secret",
		DBName:   "rentals",
		SSLMode:  "require",
	}

	assert.Equal(t, "postgres://shareit:secret@db:5433/rentals?sslmode=require", cfg.DSN())
}

func TestMigrationsAreEmbeddedInOrder(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())

		body, err := fs.ReadFile(migrations, "migrations/"+e.Name())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"), e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}

	assert.Equal(t, []string{"00001_init.sql", "00002_bookings.sql", "00003_comments.sql", "00004_requests.sql"}, names)
}
