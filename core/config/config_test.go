package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearProviderEnv blanks every environment variable the config layer reads,
// so tests see only what they set themselves.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, names := range envNames {
		for _, name := range names {
			t.Setenv(name, "")
		}
	}
	for _, name := range baseURLEnvNames {
		t.Setenv(name, "")
	}
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "openai", NormalizeTag("OpenAI"))
	assert.Equal(t, "xai", NormalizeTag("x-ai"))
	assert.Equal(t, "xai", NormalizeTag("X-AI"))
	assert.Equal(t, "anthropic", NormalizeTag("anthropic"))
}

func TestIsKnownTag(t *testing.T) {
	for _, tag := range KnownTags {
		assert.True(t, IsKnownTag(tag), tag)
	}
	assert.False(t, IsKnownTag("mistral"))
	assert.False(t, IsKnownTag(""))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultQueryTimeout, cfg.QueryTimeout)
	assert.Len(t, cfg.Providers, len(KnownTags))
	assert.Equal(t, "https://api.openai.com/v1", cfg.Providers["openai"].BaseURL)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Providers["groq"].BaseURL)

	for tag, settings := range cfg.Providers {
		assert.Empty(t, settings.APIKey, tag)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	clearProviderEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultQueryTimeout, cfg.QueryTimeout)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	clearProviderEnv(t)

	path := filepath.Join(t.TempDir(), "council.yaml")
	data := []byte(`
query_timeout: 30s
providers:
  openai:
    api_key: file-key
    rate_limit: 120
  X-AI:
    base_url: https://proxy.example.com/v1
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.QueryTimeout)
	assert.Equal(t, "file-key", cfg.Providers["openai"].APIKey)
	assert.Equal(t, 120, cfg.Providers["openai"].RateLimit)
	// zero fields in the file keep the default
	assert.Equal(t, "https://api.openai.com/v1", cfg.Providers["openai"].BaseURL)
	// the alias key is folded into the canonical tag
	assert.Equal(t, "https://proxy.example.com/v1", cfg.Providers["xai"].BaseURL)
	_, exists := cfg.Providers["x-ai"]
	assert.False(t, exists)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("OPENAI_API_BASE_URL", "https://env.example.com/v1")

	path := filepath.Join(t.TempDir(), "council.yaml")
	data := []byte(`
providers:
  openai:
    api_key: file-key
    base_url: https://file.example.com/v1
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Providers["openai"].APIKey)
	assert.Equal(t, "https://env.example.com/v1", cfg.Providers["openai"].BaseURL)
}

func TestLoad_GoogleKeyFallback(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GOOGLE_API_KEY", "fallback-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fallback-key", cfg.Providers["google"].APIKey)

	// GEMINI_API_KEY takes priority when both are set.
	t.Setenv("GEMINI_API_KEY", "primary-key")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "primary-key", cfg.Providers["google"].APIKey)
}

func TestAvailable(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "key-a")
	t.Setenv("GROQ_API_KEY", "key-g")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"anthropic", "groq"}, cfg.Available())
	assert.True(t, cfg.IsConfigured("anthropic"))
	assert.False(t, cfg.IsConfigured("openai"))
}
