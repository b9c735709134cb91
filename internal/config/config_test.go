package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "url: https://example.atlassian.net\nemail: user@example.com\ntoken: tok123\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.atlassian.net", cfg.URL)
	assert.Equal(t, "user@example.com", cfg.Email)
	assert.Equal(t, "tok123", cfg.Token)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "url: https://file.atlassian.net\nemail: file@example.com\ntoken: filetok\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	t.Setenv("JIRA_URL", "https://env.atlassian.net")
	t.Setenv("JIRA_TOKEN", "envtok")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.atlassian.net", cfg.URL)
	assert.Equal(t, "file@example.com", cfg.Email)
	assert.Equal(t, "envtok", cfg.Token)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JIRA_URL", "https://env.atlassian.net")
	t.Setenv("JIRA_EMAIL", "env@example.com")
	t.Setenv("JIRA_TOKEN", "envtok")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	full := Config{URL: "https://x", Email: "e@x", Token: "t"}
	assert.NoError(t, full.Validate())

	assert.Error(t, Config{Email: "e@x", Token: "t"}.Validate())
	assert.Error(t, Config{URL: "https://x", Token: "t"}.Validate())
	assert.Error(t, Config{URL: "https://x", Email: "e@x"}.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Config{URL: "https://x.atlassian.net", Email: "e@x.com", Token: "secret"}

	require.NoError(t, Save(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
