package recipe

import (
	"errors"
	"fmt"
	"strings"

	"recipe-transformer/internal/pkg/common"
)

// TransformType selects how a recipe is rewritten.
type TransformType string

const (
	TransformVegan   TransformType = "vegan"
	TransformDiet    TransformType = "diet"
	TransformPortion TransformType = "portion"
)

var (
	ErrUnknownTransform = errors.New("unknown transform type")
	ErrEmptyQuestion    = errors.New("question is empty")
	// ErrMissingKey marks a model reply that parsed but lacks a required field.
	ErrMissingKey = errors.New("model reply missing required key")
)

// ParseTransformType validates a client supplied transform name.
func ParseTransformType(s string) (TransformType, error) {
	switch t := TransformType(strings.TrimSpace(s)); t {
	case TransformVegan, TransformDiet, TransformPortion:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransform, s)
	}
}

// TransformRequest is one transform call. Portion counts only apply to
// TransformPortion; zero means not supplied.
type TransformRequest struct {
	Recipe          common.Recipe
	Type            TransformType
	TargetPortions  float64
	CurrentPortions float64
}

// modelRecipe is the JSON object the model is asked to return.
type modelRecipe struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}
