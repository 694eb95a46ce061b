// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Database.Host = "localhost"
	cfg.Database.Name = "storefront_db"
	cfg.Database.User = "storefront_user"
	cfg.Redis.Host = "localhost"
	cfg.Server.Port = "8080"
	cfg.Security.RateLimitWindow = time.Minute
	cfg.Security.RateLimitMax = 20
	cfg.Email.Provider = "simulate"
	return cfg
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"short jwt secret", func(c *Config) { c.JWT.Secret = "too-short" }},
		{"missing db host", func(c *Config) { c.Database.Host = "" }},
		{"missing db name", func(c *Config) { c.Database.Name = "" }},
		{"missing redis host", func(c *Config) { c.Redis.Host = "" }},
		{"missing port", func(c *Config) { c.Server.Port = "" }},
		{"zero rate limit window", func(c *Config) { c.Security.RateLimitWindow = 0 }},
		{"zero rate limit max", func(c *Config) { c.Security.RateLimitMax = 0 }},
		{"unknown email provider", func(c *Config) { c.Email.Provider = "carrier-pigeon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()

	cfg.App.Environment = "development"
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.App.Environment = "production"
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Port = "5432"
	cfg.Database.Password = "pw"
	cfg.Database.SSLMode = "disable"

	dsn := cfg.GetDatabaseDSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=storefront_db")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestGetRedisAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.Port = "6379"
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}
