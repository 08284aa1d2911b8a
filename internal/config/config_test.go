package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("LOGLEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.DbPort)
	assert.Equal(t, "disable", cfg.DbSSLMode)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate_MissingDB(t *testing.T) {
	cfg := &Config{Port: "8080"}

	_, err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{
		Port:   "8080",
		DbHost: "localhost",
		DbUser: "blog",
		DbName: "blog",
	}

	warnings, err := cfg.Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestGetDSNSafe_HidesPassword(t *testing.T) {
	cfg := &Config{
		DbHost:    "localhost",
		DbPort:    "5432",
		DbUser:    "blog",
		DbPass:    "supersecret",
		DbName:    "blog",
		DbSSLMode: "disable",
	}

	safe := cfg.GetDSNSafe()
	assert.NotContains(t, safe, "supersecret")
	assert.Contains(t, safe, "***")

	full := cfg.GetDSN()
	assert.Contains(t, full, "supersecret")
}
