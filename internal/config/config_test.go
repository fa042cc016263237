package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brickbooks.yaml")

	cfg := Default()
	cfg.API.BaseURL = "https://example.com/api"
	cfg.Advisor.Model = "gemini-2.5-pro"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:8001/api", cfg.API.BaseURL)
	assert.Equal(t, "development", cfg.Link.Environment)
	assert.NotEmpty(t, cfg.StateDir)
	assert.NotEmpty(t, cfg.Advisor.Model)
}
