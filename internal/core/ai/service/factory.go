package service

import (
	"context"
	"fmt"

	"recipe-transformer/internal/core/ai/gemini"
	"recipe-transformer/internal/core/ai/openai"
	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/infrastructure/config"
)

// NewProvider builds the configured provider, or returns nil when no API
// key is set.
func NewProvider(ctx context.Context, cfg config.AIConfig) (provider.Provider, error) {
	if !cfg.Configured() {
		return nil, nil
	}

	pcfg := provider.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
		BaseURL: cfg.BaseURL,
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, pcfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderOpenAI, "":
		return openai.NewClient(pcfg), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
