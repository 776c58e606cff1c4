package config

import (
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "UPLOAD_DIR", "WORKER_NUMBER", "INTERVAL_IN_SEC", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 1, cfg.WorkerNumber)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, log.INFO, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "ledger")
	t.Setenv("DB_NAME", "ledger")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("WORKER_NUMBER", "4")
	t.Setenv("INTERVAL_IN_SEC", "10")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 4, cfg.WorkerNumber)
	assert.Equal(t, 10*time.Second, cfg.Interval)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)
	assert.Equal(t, "host=db port=5432 user=ledger dbname=ledger sslmode=disable password=secret", cfg.DBURI())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "WORKER_NUMBER", value: "zero"},
		{key: "WORKER_NUMBER", value: "-1"},
		{key: "INTERVAL_IN_SEC", value: "0"},
		{key: "LOG_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
