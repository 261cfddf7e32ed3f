package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so the host environment does not leak in
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "VIEWS_DIR", "STATIC_DIR", "DATABASE_PATH", "LOG_LEVEL",
		"VIEW_CACHE", "LOG_PRETTY", "METRICS_ENABLED", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
	// Load also reads .env from the working directory
	chdir(t, t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "templates", cfg.ViewsDir)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.CacheViews())
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "goodhome.yaml")
	content := "port: \"9090\"\nenv: production\nviews_dir: views\nrequest_timeout: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "9191")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Port, "environment wins over the file")
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "views", cfg.ViewsDir)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.CacheViews())
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("LOG_LEVEL")

	require.NoError(t, os.WriteFile(".env", []byte("LOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidEnvValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad bool", "VIEW_CACHE", "maybe"},
		{"bad duration", "REQUEST_TIMEOUT", "soon"},
		{"bad port", "PORT", "http"},
		{"unknown env", "APP_ENV", "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCacheViews_ExplicitOverride(t *testing.T) {
	cfg := Default()
	cfg.Env = EnvProduction
	off := false
	cfg.ViewCache = &off

	assert.False(t, cfg.CacheViews())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.ShutdownTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Port = "70000"
	assert.Error(t, cfg.Validate())
}

// chdir changes the working directory for the test and restores it on cleanup
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
