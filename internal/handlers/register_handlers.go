package handlers

import (
	"net/http"

	"github.com/SscSPs/money_records_app/cmd/docs"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/middleware"
	"github.com/SscSPs/money_records_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api/v1")

	// Public authentication routes, rate limited per client IP
	RegisterAuthRoutes(api, services.User, services.Token, cfg.JWTExpiryDuration, middleware.RateLimit(loginLimiter))

	// Everything else requires a bearer token
	setupAPIV1Routes(api, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the protected part of /api/v1 and delegates to specific entity route registrations
func setupAPIV1Routes(api *gin.RouterGroup, services *portssvc.ServiceContainer) {
	v1 := api.Group("", middleware.AuthMiddleware(services.Token))

	RegisterOrderRoutes(v1, services.Order, services.OrderQuery)
	RegisterAccountRoutes(v1, services.Account)
	RegisterCategoryRoutes(v1, services.Category)
	RegisterAssetRoutes(v1, services.Asset)
	RegisterBudgetRoutes(v1, services.Budget)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
