package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		JWTSecret:  "test-secret",
		Port:       "3000",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "user",
		DBPassword: "password",
		DBName:     "juicebox",
		DBSSLMode:  "disable",
		Env:        "development",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, validTestConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default jwt secret", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		cfg.DBPassword = "sufficiently-strong"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		cfg.DBPassword = "sufficiently-strong"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default db password", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Env = "production"
		cfg.JWTSecret = strings.Repeat("s", 32)
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("valid production config", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Env = "production"
		cfg.JWTSecret = strings.Repeat("s", 32)
		cfg.DBPassword = "sufficiently-strong"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}
