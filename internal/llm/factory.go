package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/wonderwhiz/internal/store"
)

// NewProvider creates a text Provider from configuration, wrapped with
// event logging. The provider itself never retries; callers that want
// resilience wrap their own calls with the retry package.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return WithLogging(base, eventRepo), nil
}

// NewImageProvider creates an ImageProvider from configuration, wrapped
// with event logging. Only the Gemini and OpenAI backends can render images.
func NewImageProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (ImageProvider, error) {
	var base ImageProvider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "mock":
		return &MockImageProvider{Ref: "data:image/png;base64,"}, nil
	default:
		return nil, fmt.Errorf("provider %q does not support image generation", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return WithImageLogging(base, eventRepo), nil
}

// NewProviderFromEnv builds a Provider using WONDERWHIZ_* env config,
// falling back to discovery of standard API key variables.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
