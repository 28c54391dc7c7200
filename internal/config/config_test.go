package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHECK_ACCESS_URL", "http://access-control:5000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "address-api", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Host)
	assert.Equal(t, 10*time.Second, cfg.CheckAccess.Timeout)
	assert.Equal(t, 10, cfg.AddressesPerPage)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CHECK_ACCESS_URL", "http://access-control:5000")
	t.Setenv("CHECK_ACCESS_TIMEOUT", "3s")
	t.Setenv("ADDRESS_LIMIT_PER_PAGE", "2")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://access-control:5000", cfg.CheckAccess.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.CheckAccess.Timeout)
	assert.Equal(t, 2, cfg.AddressesPerPage)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
}

func TestLoadRequiresCheckAccessURL(t *testing.T) {
	t.Setenv("CHECK_ACCESS_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	t.Setenv("CHECK_ACCESS_URL", "http://access-control:5000")
	t.Setenv("ADDRESS_LIMIT_PER_PAGE", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMalformedIntFallsBackToDefault(t *testing.T) {
	t.Setenv("CHECK_ACCESS_URL", "http://access-control:5000")
	t.Setenv("ADDRESS_LIMIT_PER_PAGE", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.AddressesPerPage)
}

func TestValidateProduction(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:              AppConfig{Environment: "production"},
			Database:         DatabaseConfig{Password: "secret"},
			CheckAccess:      CheckAccessConfig{BaseURL: "http://access-control:5000"},
			AddressesPerPage: 10,
			SecretKey:        "signing-key",
		}
	}

	assert.NoError(t, base().Validate())

	missingSecret := base()
	missingSecret.SecretKey = ""
	assert.Error(t, missingSecret.Validate())

	missingDBPassword := base()
	missingDBPassword.Database.Password = ""
	assert.Error(t, missingDBPassword.Validate())
}
