package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPI_Defaults(t *testing.T) {
	cfg, err := LoadAPI("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.Storage)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "booking.events", cfg.KafkaTopic)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 10, cfg.DB.ConnectRetries)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadAPI_EnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"STORAGE=memory\nDB_HOST=db.internal\nKAFKA_BROKERS=k1:9092,k2:9092\nLOG_LEVEL=debug\n",
	), 0o600))

	t.Setenv("DB_HOST", "from-env")
	for _, k := range []string{"STORAGE", "KAFKA_BROKERS", "LOG_LEVEL"} {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range []string{"STORAGE", "KAFKA_BROKERS", "LOG_LEVEL"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := LoadAPI(envFile)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, "from-env", cfg.DB.Host)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadAPI_Errors(t *testing.T) {
	_, err := LoadAPI(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("STORAGE", "mongo")
	_, err = LoadAPI("")
	assert.ErrorContains(t, err, "unknown STORAGE")
}

func TestLoadGateway(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://api:9090")

	cfg, err := LoadGateway("")
	require.NoError(t, err)

	assert.Equal(t, "http://api:9090", cfg.BackendURL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
}
