package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "sunday", cfg.Stats.WeekStart)
	assert.False(t, cfg.Tutor.FallbackOnError)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := "http:\n  addr: \":7070\"\ntutor:\n  fallback_on_error: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.True(t, cfg.Tutor.FallbackOnError)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SPARKLEARN_HTTP_ADDR", ":9999")
	t.Setenv("SPARKLEARN_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("SPARKLEARN_DB", "/tmp/spark.db")
	t.Setenv("SPARKLEARN_HTTP_CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "/tmp/spark.db", cfg.DB.Path)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DBPathEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := "db:\n  path: /data/from-file.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-file.db", cfg.DB.Path)

	t.Setenv("SPARKLEARN_DB", "/tmp/from-env.db")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DB.Path)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.True(t, errors.Is(cfg.Validate(), ErrMissingSecret))

	cfg.Auth.JWTSecret = "x"
	cfg.Stats.Timezone = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}

func TestStatsCalendar(t *testing.T) {
	cal, err := Stats{Timezone: "UTC", WeekStart: "monday"}.Calendar()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cal.Location)
	assert.Equal(t, time.Monday, cal.WeekStart)

	_, err = Stats{WeekStart: "funday"}.Calendar()
	assert.Error(t, err)
}
