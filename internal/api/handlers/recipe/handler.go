package recipe

import (
	"errors"
	"net/http"
	"strings"

	"recipe-transformer/internal/api/middleware"
	recipeService "recipe-transformer/internal/core/recipe"
	"recipe-transformer/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TransformRequest is the body of POST /recipes/transform.
type TransformRequest struct {
	Recipe          *common.Recipe `json:"recipe"`
	TransformType   string         `json:"transform_type"`
	TargetPortions  float64        `json:"target_portions,omitempty"`
	CurrentPortions float64        `json:"current_portions,omitempty"`
}

// TransformResponse wraps the rewritten recipe.
type TransformResponse struct {
	Success           bool          `json:"success"`
	TransformedRecipe common.Recipe `json:"transformed_recipe"`
}

// QuestionRequest is the body of POST /recipes/ask.
type QuestionRequest struct {
	Recipe   *common.Recipe `json:"recipe"`
	Question string         `json:"question"`
	ImageURL string         `json:"image_url,omitempty"`
}

// QuestionResponse carries the answer text.
type QuestionResponse struct {
	Answer string `json:"answer"`
}

// Handler serves the recipe routes.
type Handler struct {
	transforms *recipeService.TransformService
	questions  *recipeService.QuestionService
}

// NewHandler creates the recipe handler.
func NewHandler(transforms *recipeService.TransformService, questions *recipeService.QuestionService) *Handler {
	return &Handler{
		transforms: transforms,
		questions:  questions,
	}
}

// HandleTransform rewrites a recipe as vegan, diet or for a new serving count.
func (h *Handler) HandleTransform(c *gin.Context) {
	var req TransformRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	if req.Recipe == nil || strings.TrimSpace(req.TransformType) == "" {
		middleware.AbortWithError(c, common.NewInvalidArgument("Tarif ve dönüştürme tipi gerekli", nil))
		return
	}

	kind, err := recipeService.ParseTransformType(req.TransformType)
	if err != nil {
		middleware.AbortWithError(c, common.NewInvalidArgument("Geçersiz dönüştürme tipi", err))
		return
	}

	common.LogInfo("Transform request",
		zap.String("request_id", requestid.Get(c)),
		zap.String("transform_type", string(kind)),
		zap.Int("ingredients", len(req.Recipe.Ingredients)),
	)

	out, err := h.transforms.Transform(c.Request.Context(), recipeService.TransformRequest{
		Recipe:          *req.Recipe,
		Type:            kind,
		TargetPortions:  req.TargetPortions,
		CurrentPortions: req.CurrentPortions,
	})
	if err != nil {
		middleware.AbortWithError(c, common.NewInternal("Tarif dönüştürme hatası: "+err.Error(), err))
		return
	}

	c.JSON(http.StatusOK, TransformResponse{
		Success:           true,
		TransformedRecipe: out,
	})
}

// HandleQuestion answers a question about a recipe.
func (h *Handler) HandleQuestion(c *gin.Context) {
	var req QuestionRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	if req.Recipe == nil || strings.TrimSpace(req.Question) == "" {
		middleware.AbortWithError(c, common.NewInvalidArgument("Tarif ve soru gerekli", nil))
		return
	}

	answer, err := h.questions.Ask(c.Request.Context(), *req.Recipe, req.Question, req.ImageURL)
	if err != nil {
		if errors.Is(err, recipeService.ErrEmptyQuestion) {
			middleware.AbortWithError(c, common.NewInvalidArgument("Tarif ve soru gerekli", err))
			return
		}
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionResponse{Answer: answer})
}
