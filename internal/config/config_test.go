package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	for _, key := range []string{
		"SERVER_PORT", "ENVIRONMENT", "FRONTEND_URL",
		"DB_HOST", "DB_PORT", "DB_CHANNEL_BINDING",
		"REDIS_HOST", "REDIS_DB",
		"JWT_EXPIRE_MINUTES",
		"OPENWEATHER_API_KEY", "OPENWEATHER_BASE_URL", "WEATHER_CACHE_TTL",
		"DOCUMENTS_BUCKET", "IMAGES_BUCKET", "GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "http://localhost:5173", cfg.Server.FrontendURL)
	assert.False(t, cfg.Server.IsProduction())

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)

	assert.Equal(t, "localhost:6379", cfg.Redis.Address())
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "test-secret", cfg.Auth.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenLifetime)

	assert.Empty(t, cfg.Weather.APIKey)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Weather.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Weather.CacheTTL)
}

func TestLoad_SecretKeyRequired(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("FRONTEND_URL", "https://vam-insurance.example.com")
	t.Setenv("JWT_EXPIRE_MINUTES", "60")
	t.Setenv("WEATHER_CACHE_TTL", "300")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, "https://vam-insurance.example.com", cfg.Server.FrontendURL)
	assert.Equal(t, time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, 5*time.Minute, cfg.Weather.CacheTTL)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("JWT_EXPIRE_MINUTES", "not-a-number")
	t.Setenv("REDIS_DB", "two")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenLifetime)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestConnectionString(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		DBName:   "insurance",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=insurance sslmode=disable",
		db.ConnectionString(),
	)

	db.ChannelBinding = "require"
	assert.Contains(t, db.ConnectionString(), "channel_binding=require")
}
