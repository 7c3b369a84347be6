package handlers

import (
	"fmt"

	"github.com/SscSPs/finance_ledger/cmd/docs"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/SscSPs/finance_ledger/internal/platform/config"
	"github.com/SscSPs/finance_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// posthogClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return fmt.Errorf("failed to register validators: %w", err)
		}
	}

	r.GET("/health", getHealth)

	if err := setupAPIV1Routes(r, cfg, services, posthogClient); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	// API keys first so a machine caller never needs a bearer token.
	v1 := r.Group("/api/v1",
		middleware.APIKeyAuth(services.APIKeys),
		middleware.OptionalAuth(services.TokenService),
	)

	if err := registerAuthRoutes(v1, services); err != nil {
		return fmt.Errorf("failed to register auth routes: %w", err)
	}

	mutationLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}
	mutation := []gin.HandlerFunc{
		middleware.RateLimit(mutationLimiter),
		middleware.PosthogMiddleware(posthogClient),
	}

	h := newLedgerHandler(services.Ledger)
	registerLedgerRoutes(v1, h, mutation...)

	owner := v1.Group("/users/:identity")
	registerAssetRoutes(owner, h, mutation...)
	registerTransactionRoutes(owner, h, mutation...)
	registerGoalRoutes(owner, h, mutation...)
	return nil
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
