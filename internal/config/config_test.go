package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grampanchayat/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "gp_token", cfg.JWT.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.False(t, cfg.S3.Enabled)
	assert.Equal(t, config.AsOfNow, cfg.Assessment.DefaultAsOf)
	assert.True(t, cfg.Assessment.PinToNow())
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GP_DB_HOST", "db.internal")
	t.Setenv("GP_DB_PORT", "6543")
	t.Setenv("GP_S3_ENABLED", "true")
	t.Setenv("GP_ASSESSMENT_DEFAULT_AS_OF", "LATEST")
	t.Setenv("GP_CORS_ALLOWED_ORIGINS", " https://gp.example.org ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.S3.Enabled)
	assert.False(t, cfg.Assessment.PinToNow())
	assert.Equal(t, []string{"https://gp.example.org"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestLoad_RejectsUnknownAsOfMode(t *testing.T) {
	t.Setenv("GP_ASSESSMENT_DEFAULT_AS_OF", "yesterday")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", d.DSN())
}
