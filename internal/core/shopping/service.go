package shopping

import (
	"context"

	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/core/ai/service"
	"recipe-transformer/internal/pkg/common"

	"go.uber.org/zap"
)

// Service parses and merges shopping lists, preferring the model and
// falling back to the rule-based parser and merge engine.
type Service struct {
	ai Generator
}

// NewService creates the service. ai may be an unconfigured adapter.
func NewService(ai Generator) *Service {
	return &Service{ai: ai}
}

// Parse structures free-text ingredient lines.
func (s *Service) Parse(ctx context.Context, lines []string) ([]common.ShoppingItem, error) {
	if len(lines) == 0 {
		return nil, ErrNoIngredients
	}

	const operation = "shopping_parse"
	items, err := s.modelItems(ctx, operation, parsePrompt(lines))
	if err != nil {
		service.LogFallback(operation, err)
		return ParseFallback(lines), nil
	}
	return items, nil
}

// Merge consolidates the per-recipe lists into one.
func (s *Service) Merge(ctx context.Context, lists []RecipeItems) ([]common.ShoppingItem, error) {
	if len(lists) == 0 {
		return nil, ErrNoRecipes
	}

	flat := Flatten(lists)
	if len(flat) == 0 {
		return []common.ShoppingItem{}, nil
	}

	const operation = "shopping_merge"
	items, err := s.modelItems(ctx, operation, mergePrompt(flat))
	if err != nil {
		service.LogFallback(operation, err)
		items = Merge(flat)
	}

	common.LogDebug("Shopping lists merged",
		zap.Int("recipes", len(lists)),
		zap.Int("input_items", len(flat)),
		zap.Int("merged_items", len(items)),
	)
	return items, nil
}

func (s *Service) modelItems(ctx context.Context, operation string, req *provider.Request) ([]common.ShoppingItem, error) {
	if s.ai == nil || !s.ai.Available() {
		return nil, service.ErrNotConfigured
	}

	var res modelItems
	if err := s.ai.CompleteJSON(ctx, operation, req, &res); err != nil {
		return nil, err
	}
	if res.Items == nil {
		return nil, ErrMissingItems
	}
	return cleanItems(res.Items), nil
}
