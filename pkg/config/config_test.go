package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JOBPORTAL_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.APIPageSizeMax)
	assert.Equal(t, 86400, cfg.TokenTTL)
	assert.True(t, cfg.SignupEnabled)
	assert.True(t, cfg.RenderMarkdown)
	assert.Equal(t, 6, cfg.RecentJobsLimit)
	assert.Equal(t, "default", cfg.Source("token_ttl"))
	assert.Equal(t, 24*time.Hour, cfg.TokenLifetime())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOBPORTAL_CONFIG_PATH", dir)

	content := []byte(`
token_ttl: 3600
api_page_size_max: 25
trusted_proxies:
  - 10.0.0.0/8
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3600, cfg.TokenTTL)
	assert.Equal(t, "file", cfg.Source("token_ttl"))
	assert.Equal(t, 25, cfg.APIPageSizeMax)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
	// Untouched values stay at their defaults.
	assert.Equal(t, 6, cfg.RecentJobsLimit)
	assert.Equal(t, "default", cfg.Source("recent_jobs_limit"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOBPORTAL_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("token_ttl: 3600\n"), 0o644))

	t.Setenv("JOBPORTAL_TOKEN_TTL", "60")
	t.Setenv("JOBPORTAL_SIGNUP_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.TokenTTL)
	assert.Equal(t, "environment", cfg.Source("token_ttl"))
	assert.False(t, cfg.SignupEnabled)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOBPORTAL_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("token_ttl: [oops\n"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := newDefault()
	assert.NoError(t, cfg.Validate())

	cfg.TrustedProxies = []string{"not-a-cidr"}
	assert.Error(t, cfg.Validate())

	cfg = newDefault()
	cfg.APIPageSizeMax = 0
	assert.Error(t, cfg.Validate())

	cfg = newDefault()
	cfg.TokenTTL = -1
	assert.Error(t, cfg.Validate())
}

func TestIsTrustedProxy(t *testing.T) {
	cfg := newDefault()
	cfg.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.5"}

	assert.True(t, cfg.IsTrustedProxy("10.1.2.3"))
	assert.True(t, cfg.IsTrustedProxy("192.168.1.5"))
	assert.False(t, cfg.IsTrustedProxy("172.16.0.1"))
	assert.False(t, cfg.IsTrustedProxy("bogus"))
}
