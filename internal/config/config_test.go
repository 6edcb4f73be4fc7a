package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "deepseek", cfg.Provider)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "gk")
	t.Setenv("STORE_BACKEND", "bolt")
	t.Setenv("BOLT_PATH", "/tmp/test.bolt")
	t.Setenv("PORT", "9000")
	t.Setenv("RESUMAI_LANG", "zh")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gk", cfg.APIKey())
	assert.Equal(t, "bolt", cfg.StoreBackend)
	assert.Equal(t, "/tmp/test.bolt", cfg.BoltPath)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "zh", cfg.Language)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.StoreBackend = "redis" }, wantErr: true},
		{name: "postgres without url", mutate: func(c *Config) { c.StoreBackend = "postgres" }, wantErr: true},
		{
			name: "postgres with url",
			mutate: func(c *Config) {
				c.StoreBackend = "postgres"
				c.DatabaseURL = "postgres://localhost/resumai"
			},
		},
		{name: "unknown provider", mutate: func(c *Config) { c.Provider = "mystery" }, wantErr: true},
		{name: "unsupported language", mutate: func(c *Config) { c.Language = "fr" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Provider: "deepseek", StoreBackend: "memory", Language: "en"}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAPIKey_FollowsProvider(t *testing.T) {
	cfg := &Config{Provider: "deepseek", DeepSeekKey: "dk", GeminiKey: "gk"}
	assert.Equal(t, "dk", cfg.APIKey())

	cfg.Provider = "gemini"
	assert.Equal(t, "gk", cfg.APIKey())
}
