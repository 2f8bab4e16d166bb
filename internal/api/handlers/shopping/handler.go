package shopping

import (
	"errors"
	"net/http"

	"recipe-transformer/internal/api/middleware"
	shoppingService "recipe-transformer/internal/core/shopping"
	"recipe-transformer/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParseRequest is the body of POST /shopping/parse.
type ParseRequest struct {
	Ingredients []string `json:"ingredients"`
}

// MergeRequest is the body of POST /shopping/merge.
type MergeRequest struct {
	Recipes []shoppingService.RecipeItems `json:"recipes"`
}

// ItemsResponse carries a structured shopping list.
type ItemsResponse struct {
	Items []common.ShoppingItem `json:"items"`
}

// Handler serves the shopping list routes.
type Handler struct {
	service *shoppingService.Service
}

func NewHandler(service *shoppingService.Service) *Handler {
	return &Handler{service: service}
}

// HandleParse turns free-text ingredient lines into shopping items.
func (h *Handler) HandleParse(c *gin.Context) {
	var req ParseRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	items, err := h.service.Parse(c.Request.Context(), req.Ingredients)
	if err != nil {
		if errors.Is(err, shoppingService.ErrNoIngredients) {
			middleware.AbortWithError(c, common.NewInvalidArgument("Malzeme listesi gerekli", err))
			return
		}
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ItemsResponse{Items: items})
}

// HandleMerge consolidates the shopping lists of several recipes.
func (h *Handler) HandleMerge(c *gin.Context) {
	var req MergeRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	items, err := h.service.Merge(c.Request.Context(), req.Recipes)
	if err != nil {
		if errors.Is(err, shoppingService.ErrNoRecipes) {
			middleware.AbortWithError(c, common.NewInvalidArgument("Tarif listesi gerekli", err))
			return
		}
		middleware.AbortWithError(c, err)
		return
	}

	common.LogInfo("Shopping lists merged",
		zap.String("request_id", requestid.Get(c)),
		zap.Int("recipes", len(req.Recipes)),
		zap.Int("items", len(items)),
	)
	c.JSON(http.StatusOK, ItemsResponse{Items: items})
}
