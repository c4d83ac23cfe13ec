package ai

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmptyCompletion = errors.New("provider returned an empty completion")
	ErrMissingAPIKey   = errors.New("api key is not set")
	ErrUnknownProvider = errors.New("unknown ai provider")
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// RemoteConfig selects and configures the remote provider.
type RemoteConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewRemoteProvider builds the provider named in cfg.
func NewRemoteProvider(ctx context.Context, cfg RemoteConfig) (Provider, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case ProviderGemini:
		return NewGeminiProvider(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
