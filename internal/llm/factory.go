package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/careerwise/internal/store"
)

// Options carries the collaborators wired around every provider.
type Options struct {
	// Events receives one record per request. Optional.
	Events store.EventRepo
	// Logger receives request summaries. Optional.
	Logger *zap.Logger
}

// NewProvider creates a Provider from configuration, wrapped with the
// timeout and logging middleware. Requests are never retried.
func NewProvider(ctx context.Context, cfg Config, opts Options) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → logging → timeout → base
	bounded := WithTimeout(base, cfg.Timeout)
	return WithLogging(bounded, cfg.Provider, opts.Events, opts.Logger), nil
}

// NewProviderFromEnv configures a provider from the environment. An
// explicit CAREERWISE_LLM_PROVIDER wins; otherwise the default provider is
// used if its CAREERWISE_* key is set, and the standard vendor key
// variables are probed after that. Returns ErrNotConfigured when nothing
// is found.
func NewProviderFromEnv(ctx context.Context, opts Options) (Provider, Config, error) {
	cfg, explicit := ConfigFromEnv()
	if !explicit && !cfg.hasKey() {
		discovered, ok := DiscoverConfig(cfg)
		if !ok {
			return nil, cfg, ErrNotConfigured
		}
		cfg = discovered
	}

	p, err := NewProvider(ctx, cfg, opts)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
