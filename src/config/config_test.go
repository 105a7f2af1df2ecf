package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir string, cfg Config) {
	t.Helper()
	contents, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), contents, 0o644))
}

func TestLoadConfigWithoutFileWritesNothing(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir, false)
	require.NoError(t, err)
	assert.False(t, cfg.ShowSummary())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadConfigMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")

	cfg, err := LoadConfig(dir, true)
	require.NoError(t, err)
	assert.False(t, cfg.ShowSummary())

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadConfigReadsExisting(t *testing.T) {
	dir := t.TempDir()
	summary := true
	writeConfig(t, dir, Config{Summary: &summary})

	cfg, err := LoadConfig(dir, true)
	require.NoError(t, err)
	assert.True(t, cfg.ShowSummary())
}

func TestLoadConfigFillsMissingFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{}\n"), 0o644))

	cfg, err := LoadConfig(dir, false)
	require.NoError(t, err)
	require.NotNil(t, cfg.Summary)
	assert.False(t, cfg.ShowSummary())
}
