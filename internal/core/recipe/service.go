package recipe

import (
	"context"

	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/core/ai/service"
)

// Generator is the part of the model adapter the recipe services need.
// *service.Service implements it.
type Generator interface {
	Available() bool
	Complete(ctx context.Context, operation string, req *provider.Request) (string, error)
	CompleteJSON(ctx context.Context, operation string, req *provider.Request, v interface{}) error
}

var _ Generator = (*service.Service)(nil)
