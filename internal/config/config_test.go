package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StavrosT-sys/Enhanced-Vocab112/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "file:vocab.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 7, cfg.DueWindowDays)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DUE_WINDOW_DAYS", "14")

	cfg := config.Load()

	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 14, cfg.DueWindowDays)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DUE_WINDOW_DAYS", "soon")

	cfg := config.Load()
	assert.Equal(t, 7, cfg.DueWindowDays)
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := config.Config{
		DBPath:        "",
		LogLevel:      "LOUD",
		DueWindowDays: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "DUE_WINDOW_DAYS")
}

func TestValidate_AcceptsLowercaseLevel(t *testing.T) {
	cfg := config.Config{
		DBPath:        "test.db",
		LogLevel:      "debug",
		DueWindowDays: 7,
	}
	assert.NoError(t, cfg.Validate())
}
