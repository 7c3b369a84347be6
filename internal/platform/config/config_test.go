package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "finance-ledger", cfg.JWTIssuer)
	assert.Equal(t, "60-M", cfg.RateLimit)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoadFrom_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("JWT_EXPIRY_DURATION", "15m")
	v.Set("API_KEYS", "alice=$2a$10$abc, bob=$2a$10$def ,broken")
	v.Set("IS_PRODUCTION", "true")

	cfg, err := loadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, map[string]string{"alice": "$2a$10$abc", "bob": "$2a$10$def"}, cfg.APIKeys)
}

func TestLoadFrom_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "bolt")
	v.Set("JWT_EXPIRY_DURATION", "soon")

	cfg, err := loadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}
