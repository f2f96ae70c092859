package v1

import (
	"net/http"
	"time"

	"linkgen-gcc-backend/config"
	"linkgen-gcc-backend/internal/delivery/http/middleware"
	"linkgen-gcc-backend/internal/delivery/http/response"
	"linkgen-gcc-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AssistantUC domain.AssistantUsecase
	WizardUC    domain.ApplyWizardUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes (auth is a no-op when no secret is configured)
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config.APIJWTSecret))
	{
		NewStateHandler(protected, deps.AssistantUC)
		NewJobHandler(protected, deps.AssistantUC)
		NewAIHandler(protected, deps.AssistantUC, middleware.RateLimitMiddleware(middleware.AIRateLimitConfig()))
		NewAlertHandler(protected, deps.AssistantUC)
		NewProfileHandler(protected, deps.AssistantUC)
		NewIntegrationHandler(protected, deps.AssistantUC)
		NewApplicationHandler(protected, deps.AssistantUC, deps.WizardUC)
	}

	return r
}
