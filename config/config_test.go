package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[workspace]
name = "acme"

[service]
base_url = "https://spec-engine.internal/"
timeout_seconds = 15

[export]
dir = "/tmp/exports"
filename = "acme-spec"

[logging]
debug = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.WorkspaceName())
	assert.Equal(t, "https://spec-engine.internal", cfg.ResolvedBaseURL(), "trailing slash trimmed")
	assert.Equal(t, 15*time.Second, cfg.ResolvedTimeout())
	assert.Equal(t, filepath.Join("/tmp/exports", "acme-spec.json"), cfg.ResolvedExportPath(), "json extension enforced")
	assert.True(t, cfg.Logging.Debug)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaults(t *testing.T) {
	var cfg Config

	assert.Equal(t, "http://localhost:8001", cfg.ResolvedBaseURL())
	assert.Equal(t, defaultTimeout, cfg.ResolvedTimeout())
	assert.Equal(t, "specification.json", cfg.ResolvedExportPath())
	assert.Equal(t, "specdash", cfg.WorkspaceName())
	assert.False(t, cfg.ResolvedShowPreview())
}

func TestBaseURLEnvOverride(t *testing.T) {
	t.Setenv("SPECDASH_SERVICE_URL", "http://staging:9000/")

	var cfg Config
	cfg.Service.BaseURL = "http://ignored:1"

	assert.Equal(t, "http://staging:9000", cfg.ResolvedBaseURL())
}

func TestResolvedThemeFillsDefaults(t *testing.T) {
	var cfg Config
	cfg.Theme.Accent = "99"

	theme := cfg.ResolvedTheme()

	assert.Equal(t, "99", theme.Accent, "user value kept")
	assert.NotEmpty(t, theme.Error)
	assert.NotEmpty(t, theme.SectionOpen)
	assert.NotEmpty(t, theme.StatusBarBG)
}
