package handlers

import (
	"net/http"

	"github.com/SscSPs/piecework_app/cmd/docs"
	portssvc "github.com/SscSPs/piecework_app/internal/core/ports/services"
	"github.com/SscSPs/piecework_app/internal/export"
	"github.com/SscSPs/piecework_app/internal/middleware"
	"github.com/SscSPs/piecework_app/internal/platform/config"
	"github.com/SscSPs/piecework_app/internal/utils"
	"github.com/SscSPs/piecework_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := registerAuthRoutes(r, services.Auth); err != nil {
		return err
	}

	setupAPIV1Routes(r, cfg, services, posthog)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(posthog))

	limits := pagination.Limits{Default: cfg.DefaultPageLimit, Max: cfg.MaxPageLimit}
	exportOptions := export.Options{
		CurrencySymbol: cfg.CurrencySymbol,
		Location:       cfg.Location,
	}

	registerUserRoutes(v1, services.Auth)
	registerCatalogRoutes(v1, services.Catalog)
	registerWorkerRoutes(v1, services.Worker)
	registerWorkRecordRoutes(v1, services.WorkRecord, services.Settlement, limits, posthog)
	registerReportRoutes(v1, services.Reporting, exportOptions, posthog)
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
