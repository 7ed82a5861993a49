package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognos/internal/types"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("COGNOS_PROVIDER", "")
	t.Setenv("COGNOS_MODEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, string(types.ProviderGoogle), cfg.Provider)
	assert.NotEmpty(t, cfg.DataPath)
	assert.Equal(t, types.ProviderGoogle, cfg.Identity().Kind)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"provider": "openai", "model": "gpt-4o", "openai_api_key": "file-key"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("COGNOS_MODEL", "gpt-4o-mini")
	t.Setenv("COGNOS_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "env-key", cfg.OpenAIAPIKey, "environment beats the file")
	assert.Equal(t, "gpt-4o-mini", cfg.Model)

	id := cfg.Identity()
	assert.Equal(t, types.ProviderOpenAI, id.Kind)
	assert.Equal(t, "gpt-4o-mini", id.ModelID)
	assert.Equal(t, "env-key", cfg.Credential(types.ProviderOpenAI))
	assert.Empty(t, cfg.Credential(types.ProviderAnthropic))
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestIdentityFallsBackToGoogle(t *testing.T) {
	cfg := &Config{Provider: "mystery"}
	assert.Equal(t, types.ProviderGoogle, cfg.Identity().Kind)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := &Config{Provider: "google", Model: "gemini-2.5-pro"}
	require.NoError(t, cfg.Save(path))

	t.Setenv("COGNOS_MODEL", "")
	t.Setenv("COGNOS_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", loaded.Model)
}
