package recipe

import (
	"context"
	"fmt"

	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/core/ai/service"
	"recipe-transformer/internal/pkg/common"

	"go.uber.org/zap"
)

// TransformService rewrites recipes with the model when it is available and
// with the rule-based transforms otherwise. Transform only fails for an
// unknown transform type.
type TransformService struct {
	ai Generator
}

// NewTransformService creates the service. ai may be an unconfigured adapter.
func NewTransformService(ai Generator) *TransformService {
	return &TransformService{ai: ai}
}

// Transform applies req.Type to req.Recipe.
func (s *TransformService) Transform(ctx context.Context, req TransformRequest) (common.Recipe, error) {
	var out common.Recipe
	switch req.Type {
	case TransformVegan:
		out = s.substitute(ctx, req.Recipe, VeganProfile)
	case TransformDiet:
		out = s.substitute(ctx, req.Recipe, DietProfile)
	case TransformPortion:
		target := req.TargetPortions
		if target <= 0 {
			target = 1
		}
		out = s.scale(ctx, req.Recipe, target, req.CurrentPortions)
	default:
		return common.Recipe{}, fmt.Errorf("%w: %q", ErrUnknownTransform, req.Type)
	}

	common.LogDebug("Recipe transformed",
		zap.String("type", string(req.Type)),
		zap.Int("ingredients", len(out.Ingredients)),
	)
	return out, nil
}

func (s *TransformService) substitute(ctx context.Context, r common.Recipe, p Profile) common.Recipe {
	operation := "transform_" + p.Name
	res, err := s.modelRecipe(ctx, operation, substitutePrompt(p, r), true)
	if err != nil {
		service.LogFallback(operation, err)
		return Substitute(r, p)
	}

	out := r.Clone()
	out.Title = res.Title
	if out.Title == "" {
		out.Title = r.Title + p.TitleSuffix
	}
	out.Ingredients = res.Ingredients
	out.Steps = res.Steps
	out.Keywords = common.WithKeyword(r.Keywords, p.Keyword)
	return out
}

func (s *TransformService) scale(ctx context.Context, r common.Recipe, target, current float64) common.Recipe {
	const operation = "transform_portion"
	source := ResolvePortions(r, current)
	if target == source {
		return ScalePortions(r, target, current)
	}

	res, err := s.modelRecipe(ctx, operation, portionPrompt(r, target, source), false)
	if err != nil {
		service.LogFallback(operation, err)
		return ScalePortions(r, target, current)
	}

	out := r.Clone()
	out.Title = res.Title
	if out.Title == "" {
		out.Title = PortionTitle(r.Title, target)
	}
	out.Ingredients = res.Ingredients
	out.Portions = target
	out.Keywords = common.WithKeyword(r.Keywords, PortionKeyword)
	return out
}

// modelRecipe asks the model for a recipe object. ingredients are always
// required, steps only when needSteps is set.
func (s *TransformService) modelRecipe(ctx context.Context, operation string, req *provider.Request, needSteps bool) (*modelRecipe, error) {
	if s.ai == nil || !s.ai.Available() {
		return nil, service.ErrNotConfigured
	}

	var res modelRecipe
	if err := s.ai.CompleteJSON(ctx, operation, req, &res); err != nil {
		return nil, err
	}
	if res.Ingredients == nil {
		return nil, fmt.Errorf("%w: ingredients", ErrMissingKey)
	}
	if needSteps && res.Steps == nil {
		return nil, fmt.Errorf("%w: steps", ErrMissingKey)
	}
	return &res, nil
}
