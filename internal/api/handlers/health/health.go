package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-transformer/internal/core/ai/queue"
	"recipe-transformer/internal/infrastructure/config"
	"recipe-transformer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	AI        AIStatus               `json:"ai"`
	Runtime   map[string]interface{} `json:"runtime"`
	Queue     *queue.Status          `json:"queue,omitempty"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// AIStatus tells whether requests reach a model or go straight to the
// rule-based fallbacks.
type AIStatus struct {
	Configured bool   `json:"configured"`
	Provider   string `json:"provider,omitempty"`
	Model      string `json:"model,omitempty"`
}

// ModelStatus is the part of the model adapter the health routes read.
type ModelStatus interface {
	Available() bool
	Model() string
}

// Dependencies is what the health handler reports on. Any field may be nil.
type Dependencies struct {
	AI    ModelStatus
	Queue *queue.Manager
	Cache interface{}
}

type statsReporter interface {
	GetStats() map[string]interface{}
}

// Handler serves the health routes.
type Handler struct {
	cfg  *config.Config
	deps Dependencies
}

func NewHandler(cfg *config.Config, deps Dependencies) *Handler {
	return &Handler{cfg: cfg, deps: deps}
}

func (h *Handler) aiStatus() AIStatus {
	if h.deps.AI == nil || !h.deps.AI.Available() {
		return AIStatus{}
	}
	return AIStatus{
		Configured: true,
		Provider:   h.cfg.AI.Provider,
		Model:      h.deps.AI.Model(),
	}
}

// HealthCheck reports version, model availability, runtime and queue state.
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.cfg.App.Version,
		AI:        h.aiStatus(),
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}
	if h.deps.Queue != nil {
		response.Queue = h.deps.Queue.GetQueueStatus()
	}
	if stats, ok := h.deps.Cache.(statsReporter); ok {
		response.Cache = stats.GetStats()
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck is always ready: without a model every operation still
// answers through its fallback.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ready",
		"ai_configured": h.aiStatus().Configured,
	})
}

// LivenessCheck reports that the process is serving.
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
