package shopping

import (
	"context"
	"errors"

	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/pkg/common"
)

var (
	ErrNoRecipes     = errors.New("no recipes to merge")
	ErrNoIngredients = errors.New("no ingredients to parse")
	ErrMissingItems  = errors.New("model reply missing items")
)

// RecipeItems is the shopping list contributed by one recipe.
type RecipeItems struct {
	Title string                `json:"title"`
	Items []common.ShoppingItem `json:"items"`
}

// FlattenedItem is one item tagged with the recipe it came from. It only
// exists for the duration of a merge.
type FlattenedItem struct {
	RecipeIndex int      `json:"recipe_index"`
	RecipeTitle string   `json:"recipe_title"`
	Name        string   `json:"name"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty"`
}

// Generator is the part of the model adapter the shopping service needs.
type Generator interface {
	Available() bool
	CompleteJSON(ctx context.Context, operation string, req *provider.Request, v interface{}) error
}

// modelItems is the JSON object the model is asked to return.
type modelItems struct {
	Items []common.ShoppingItem `json:"items"`
}
