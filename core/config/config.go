package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultQueryTimeout bounds a single model query, including connection
// establishment, when the caller does not override it.
const DefaultQueryTimeout = 120 * time.Second

// KnownTags lists the provider tags with a registered adapter, in canonical
// order. Tags are compared after [NormalizeTag].
var KnownTags = []string{"openai", "anthropic", "google", "xai", "groq"}

// NormalizeTag lowercases a provider tag and applies the known alias
// rewrites. "x-ai" is the marketing spelling used in some model catalogs for
// the xai provider.
func NormalizeTag(tag string) string {
	tag = strings.ToLower(tag)
	if tag == "x-ai" {
		tag = "xai"
	}
	return tag
}

// IsKnownTag reports whether tag (already normalized) has a registered
// adapter.
func IsKnownTag(tag string) bool {
	for _, known := range KnownTags {
		if tag == known {
			return true
		}
	}
	return false
}

// ProviderSettings configures one provider adapter.
type ProviderSettings struct {
	APIKey    string        `yaml:"api_key"`
	BaseURL   string        `yaml:"base_url"`
	RateLimit int           `yaml:"rate_limit"` // requests per minute; 0 means unlimited
	Burst     int           `yaml:"burst"`      // rate limiter burst; defaults to 1 when RateLimit is set
	Timeout   time.Duration `yaml:"timeout"`    // per-query override; falls back to Config.QueryTimeout
}

// Config is the root configuration for the council gateway.
type Config struct {
	QueryTimeout time.Duration               `yaml:"query_timeout"`
	Providers    map[string]ProviderSettings `yaml:"providers"`
}

// Default returns a Config with the canonical endpoint for every known
// provider and no credentials.
func Default() *Config {
	return &Config{
		QueryTimeout: DefaultQueryTimeout,
		Providers: map[string]ProviderSettings{
			"openai":    {BaseURL: "https://api.openai.com/v1"},
			"anthropic": {BaseURL: "https://api.anthropic.com/v1"},
			"google":    {BaseURL: "https://generativelanguage.googleapis.com/v1beta"},
			"xai":       {BaseURL: "https://api.x.ai/v1"},
			"groq":      {BaseURL: "https://api.groq.com/openai/v1"},
		},
	}
}

// Load builds the effective configuration: defaults, overlaid with the YAML
// file at path when it exists, overlaid with environment variables. An empty
// path skips the file layer entirely; a missing file at a non-empty path is
// not an error so a checked-in default path can be used unconditionally.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := cfg.applyYAML(data); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyYAML overlays a YAML document onto the config. Provider keys are
// normalized so a file may spell the tag as "x-ai" or "OpenAI". Zero-valued
// fields in the file leave the current value untouched.
func (c *Config) applyYAML(data []byte) error {
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	if file.QueryTimeout > 0 {
		c.QueryTimeout = file.QueryTimeout
	}

	for tag, settings := range file.Providers {
		tag = NormalizeTag(tag)
		current := c.Providers[tag]
		if settings.APIKey != "" {
			current.APIKey = settings.APIKey
		}
		if settings.BaseURL != "" {
			current.BaseURL = settings.BaseURL
		}
		if settings.RateLimit > 0 {
			current.RateLimit = settings.RateLimit
		}
		if settings.Burst > 0 {
			current.Burst = settings.Burst
		}
		if settings.Timeout > 0 {
			current.Timeout = settings.Timeout
		}
		c.Providers[tag] = current
	}

	return nil
}

// envNames maps a provider tag to the environment variables consulted for
// its API key, in priority order. GOOGLE_API_KEY is accepted alongside
// GEMINI_API_KEY because both spellings are widespread.
var envNames = map[string][]string{
	"openai":    {"OPENAI_API_KEY"},
	"anthropic": {"ANTHROPIC_API_KEY"},
	"google":    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	"xai":       {"XAI_API_KEY"},
	"groq":      {"GROQ_API_KEY"},
}

// baseURLEnvNames maps a provider tag to its endpoint override variable.
var baseURLEnvNames = map[string]string{
	"openai":    "OPENAI_API_BASE_URL",
	"anthropic": "ANTHROPIC_API_BASE_URL",
	"google":    "GEMINI_API_BASE_URL",
	"xai":       "XAI_API_BASE_URL",
	"groq":      "GROQ_API_BASE_URL",
}

// applyEnv overlays environment variables onto the config. Environment
// values win over both defaults and the YAML file.
func (c *Config) applyEnv() {
	for _, tag := range KnownTags {
		current := c.Providers[tag]

		for _, name := range envNames[tag] {
			if value := os.Getenv(name); value != "" {
				current.APIKey = value
				break
			}
		}

		if value := os.Getenv(baseURLEnvNames[tag]); value != "" {
			current.BaseURL = value
		}

		c.Providers[tag] = current
	}
}

// IsConfigured reports whether the provider identified by tag (already
// normalized) has a credential.
func (c *Config) IsConfigured(tag string) bool {
	return c.Providers[tag].APIKey != ""
}

// Available returns the credentialed provider tags in canonical order.
// Callers typically use this to filter a model list down to the providers
// that can actually be queried.
func (c *Config) Available() []string {
	var available []string
	for _, tag := range KnownTags {
		if c.IsConfigured(tag) {
			available = append(available, tag)
		}
	}
	return available
}
