package llm

import (
	"context"
	"errors"
	"fmt"
	"project-inquiry-backend/config"
	"project-inquiry-backend/pkg/logger"
	"time"
)

// Provider names accepted by LLM_PROVIDER
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

var (
	// ErrNotConfigured is returned when no provider credentials are set
	ErrNotConfigured = errors.New("text generation is not configured")
	// ErrEmptyCompletion is returned when the provider answers without text
	ErrEmptyCompletion = errors.New("no completion returned")
)

// Client generates a single completion from a system and a user prompt
type Client interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Provider() string
}

// NewFromConfig picks the provider named in the configuration. A provider
// without credentials yields a disabled client, so the service still starts
// and clients receive the fallback reply.
func NewFromConfig(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.LLMProvider {
	case ProviderOpenAI, "":
		if cfg.OpenAIAPIKey == "" {
			logger.Log.Warn("OPENAI_API_KEY not set - acknowledgements will use the fallback reply")
			return Disabled{}, nil
		}
		return NewOpenAIClientWithConfig(OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.LLMTimeout,
		}), nil
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			logger.Log.Warn("GEMINI_API_KEY not set - acknowledgements will use the fallback reply")
			return Disabled{}, nil
		}
		client, err := NewGeminiClient(ctx, GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.LLMTimeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderNone:
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

// Disabled always fails with ErrNotConfigured
type Disabled struct{}

func (Disabled) CompleteWithSystem(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Provider() string { return ProviderNone }

// withTimeout applies the client timeout when the caller set no deadline
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline || timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
