package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/sparklearn/internal/logger"
	"github.com/abhisek/sparklearn/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry,
// logging and timeout middleware. eventRepo and log may be nil.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *logger.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → timeout → base
	bounded := WithTimeout(base, cfg.Timeout)
	logged := WithLogging(bounded, cfg.Provider, eventRepo, log)
	return WithRetry(logged, cfg.Retry, log), nil
}
