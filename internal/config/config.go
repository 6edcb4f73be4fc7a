// Package config provides environment-driven configuration for the resumai core.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the server and CLI need. All values come from the
// environment; a .env file is loaded by the entry point before parsing.
type Config struct {
	// Model provider
	Provider    string `env:"LLM_PROVIDER" envDefault:"deepseek"`
	DeepSeekKey string `env:"DEEPSEEK_API_KEY"`
	DeepSeekURL string `env:"DEEPSEEK_BASE_URL"`
	GeminiKey   string `env:"GEMINI_API_KEY"`

	// Mode-dependent model names (defaults follow the DeepSeek naming)
	StandardModel string `env:"STANDARD_MODEL"`
	ThinkingModel string `env:"THINKING_MODEL"`

	// Persistence: memory, bolt, or postgres
	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`
	BoltPath     string `env:"BOLT_PATH" envDefault:"data/resumai.bolt"`
	DatabaseURL  string `env:"DATABASE_URL"`

	// Server
	Port int `env:"PORT" envDefault:"8080"`

	// Reply language ("en" or "zh")
	Language string `env:"RESUMAI_LANG" envDefault:"en"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the env tags cannot express.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "memory", "bolt", "postgres":
	default:
		return fmt.Errorf("config error: unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.StoreBackend == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("config error: STORE_BACKEND=postgres requires DATABASE_URL")
	}

	switch c.Provider {
	case "deepseek", "gemini":
	default:
		return fmt.Errorf("config error: unknown LLM_PROVIDER %q", c.Provider)
	}

	switch c.Language {
	case "en", "zh":
	default:
		return fmt.Errorf("config error: unsupported RESUMAI_LANG %q", c.Language)
	}

	return nil
}

// APIKey returns the credential for the configured provider. An empty string
// means no credential is configured and the service runs on mock advice.
func (c *Config) APIKey() string {
	if c.Provider == "gemini" {
		return c.GeminiKey
	}
	return c.DeepSeekKey
}
