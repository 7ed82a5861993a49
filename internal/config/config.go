// Package config holds user configuration from ~/.cognos/config.json.
// Environment variables override the file so keys never need to live on
// disk.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cognos/internal/types"
)

// Config is the single source of truth for CLI configuration.
type Config struct {
	// Provider selection (google, openai, anthropic)
	Provider string `json:"provider,omitempty"`

	// API keys for each provider
	GeminiAPIKey    string `json:"gemini_api_key,omitempty"`
	OpenAIAPIKey    string `json:"openai_api_key,omitempty"`
	AnthropicAPIKey string `json:"anthropic_api_key,omitempty"`

	// Optional model override
	Model string `json:"model,omitempty"`

	// Path to the conversation database. Empty means <config dir>/cognos.db.
	DataPath string `json:"data_path,omitempty"`

	// Optional YAML file with persona overrides
	PersonaOverrides string `json:"persona_overrides,omitempty"`

	// Debug enables verbose logging
	Debug bool `json:"debug,omitempty"`
}

// DefaultDir returns the configuration directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cognos"
	}
	return filepath.Join(home, ".cognos")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.json")
}

// Load reads configuration from path and applies environment overrides.
// A missing file yields a usable default config.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	if cfg.Provider == "" {
		cfg.Provider = string(types.ProviderGoogle)
	}
	if cfg.DataPath == "" {
		cfg.DataPath = filepath.Join(DefaultDir(), "cognos.db")
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	} else if v := os.Getenv("GOOGLE_API_KEY"); v != "" && c.GeminiAPIKey == "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.AnthropicAPIKey = v
	}
	if v := os.Getenv("COGNOS_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("COGNOS_MODEL"); v != "" {
		c.Model = v
	}
	if os.Getenv("COGNOS_DEBUG") != "" {
		c.Debug = true
	}
}

// Save writes the config to path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Identity returns the provider identity the config selects.
func (c *Config) Identity() types.ProviderIdentity {
	kind := types.ProviderKind(c.Provider)
	switch kind {
	case types.ProviderGoogle, types.ProviderOpenAI, types.ProviderAnthropic:
	default:
		kind = types.ProviderGoogle
	}
	return types.ProviderIdentity{Kind: kind, ModelID: c.Model}
}

// Credential returns the API key for a provider kind.
func (c *Config) Credential(kind types.ProviderKind) string {
	switch kind {
	case types.ProviderGoogle:
		return c.GeminiAPIKey
	case types.ProviderOpenAI:
		return c.OpenAIAPIKey
	case types.ProviderAnthropic:
		return c.AnthropicAPIKey
	default:
		return ""
	}
}
