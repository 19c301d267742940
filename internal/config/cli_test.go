package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCLIConfigUsesJSBackend(t *testing.T) {
	cfg := DefaultCLIConfig()
	assert.Equal(t, "js", cfg.Backend)
	assert.False(t, cfg.NoInline)
	assert.False(t, cfg.NoTraces)
}

func TestLoadCLIConfigFullFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zincc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: cpp\nnoInline: true\nnoTraces: true\n"), 0o644))

	cfg, err := LoadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "cpp", cfg.Backend)
	assert.True(t, cfg.NoInline)
	assert.True(t, cfg.NoTraces)
}

func TestLoadCLIConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zincc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("noInline: true\n"), 0o644))

	cfg, err := LoadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "js", cfg.Backend, "unset fields keep DefaultCLIConfig's value")
	assert.True(t, cfg.NoInline)
	assert.False(t, cfg.NoTraces)
}

func TestLoadCLIConfigMissingFileReturnsDefaultsAndError(t *testing.T) {
	cfg, err := LoadCLIConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, DefaultCLIConfig(), cfg)
}

func TestLoadCLIConfigInvalidYAMLIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zincc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [this is not a string\n"), 0o644))

	_, err := LoadCLIConfig(path)
	require.Error(t, err)
}
