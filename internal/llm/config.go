package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single provider call. Retries each get a fresh
	// budget. Zero disables the bound.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Rate limited
// calls are retried three times after waits of roughly 2s, 4s and 8s.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 4,
			InitialWait: 2 * time.Second,
			MaxWait:     8 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from SPARKLEARN_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.Provider, "SPARKLEARN_LLM_PROVIDER")

	setString(&cfg.Anthropic.APIKey, "SPARKLEARN_ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, "SPARKLEARN_ANTHROPIC_MODEL")

	setString(&cfg.OpenAI.APIKey, "SPARKLEARN_OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "SPARKLEARN_OPENAI_MODEL")
	setString(&cfg.OpenAI.BaseURL, "SPARKLEARN_OPENAI_BASE_URL")

	setString(&cfg.Gemini.APIKey, "SPARKLEARN_GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "SPARKLEARN_GEMINI_MODEL")

	setString(&cfg.OpenRouter.APIKey, "SPARKLEARN_OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, "SPARKLEARN_OPENROUTER_MODEL")

	if v := os.Getenv("SPARKLEARN_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// HasKey reports whether the selected provider has an API key.
func (c Config) HasKey() bool {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.APIKey != ""
	case "openai":
		return c.OpenAI.APIKey != ""
	case "gemini":
		return c.Gemini.APIKey != ""
	case "openrouter":
		return c.OpenRouter.APIKey != ""
	case "mock":
		return true
	}
	return false
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// ResolveConfig returns the env config when it carries a key for its
// provider, otherwise the first discovered standard key.
func ResolveConfig() Config {
	cfg := ConfigFromEnv()
	if cfg.HasKey() {
		return cfg
	}
	if found, ok := DiscoverConfig(); ok {
		found.Timeout = cfg.Timeout
		return found
	}
	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini", "openrouter":
		if !c.HasKey() {
			return fmt.Errorf("an API key is required for the %s provider (set SPARKLEARN_%s_API_KEY)", c.Provider, envName(c.Provider))
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func envName(provider string) string {
	switch provider {
	case "openai":
		return "OPENAI"
	case "anthropic":
		return "ANTHROPIC"
	case "openrouter":
		return "OPENROUTER"
	default:
		return "GEMINI"
	}
}
