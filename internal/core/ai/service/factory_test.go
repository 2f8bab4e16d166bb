package service

import (
	"context"
	"testing"
	"time"

	"recipe-transformer/internal/core/ai/openai"
	"recipe-transformer/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, config.AIConfig{Provider: config.ProviderOpenAI})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, NewService(p).Available())

	p, err = NewProvider(ctx, config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "sk-test",
		Model:    "gpt-4o-mini",
		Timeout:  15 * time.Second,
	})
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, p)
	assert.Equal(t, "gpt-4o-mini", NewService(p).Model())

	_, err = NewProvider(ctx, config.AIConfig{Provider: "llama", APIKey: "k"})
	assert.Error(t, err)
}
