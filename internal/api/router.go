package api

import (
	"time"

	"recipe-transformer/internal/api/handlers/health"
	recipeHandler "recipe-transformer/internal/api/handlers/recipe"
	shoppingHandler "recipe-transformer/internal/api/handlers/shopping"
	"recipe-transformer/internal/api/middleware"
	"recipe-transformer/internal/core/ai/cache"
	"recipe-transformer/internal/core/ai/queue"
	"recipe-transformer/internal/core/ai/service"
	"recipe-transformer/internal/core/image"
	recipeService "recipe-transformer/internal/core/recipe"
	shoppingService "recipe-transformer/internal/core/shopping"
	"recipe-transformer/internal/infrastructure/config"
	"recipe-transformer/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the long-lived components built in main. Queue and Cache
// may be nil.
type Dependencies struct {
	AI    *service.Service
	Queue *queue.Manager
	Cache cache.Store
}

// SetupRouter builds the gin engine with middleware, health routes and the
// authenticated /api/v1 group.
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(common.GenerateUUID)))
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	router.Use(func(c *gin.Context) {
		c.Set(middleware.DebugKey, cfg.App.Debug)
		c.Next()
	})

	transformSvc := recipeService.NewTransformService(deps.AI)
	var questionOpts []recipeService.QuestionOption
	if cfg.AI.MaxImageBytes > 0 {
		questionOpts = append(questionOpts, recipeService.WithImagePreparer(image.NewService(cfg.AI.MaxImageBytes)))
	}
	questionSvc := recipeService.NewQuestionService(deps.AI, questionOpts...)
	shoppingSvc := shoppingService.NewService(deps.AI)

	healthHandler := health.NewHandler(cfg, health.Dependencies{
		AI:    deps.AI,
		Queue: deps.Queue,
		Cache: deps.Cache,
	})
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	api := router.Group("/api/v1")
	api.Use(middleware.Auth(middleware.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)))
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	{
		recipes := recipeHandler.NewHandler(transformSvc, questionSvc)
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.POST("/transform", recipes.HandleTransform)
			recipeGroup.POST("/ask", recipes.HandleQuestion)
		}

		shopping := shoppingHandler.NewHandler(shoppingSvc)
		shoppingGroup := api.Group("/shopping")
		{
			shoppingGroup.POST("/parse", shopping.HandleParse)
			shoppingGroup.POST("/merge", shopping.HandleMerge)
		}
	}

	common.LogInfo("Router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("ai_configured", deps.AI.Available()),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router
}
