package handlers

import (
	"net/http"

	"github.com/SscSPs/workly_crm/cmd/docs"
	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/middleware"
	"github.com/SscSPs/workly_crm/internal/platform/config"
	"github.com/SscSPs/workly_crm/internal/platform/metrics"
	"github.com/SscSPs/workly_crm/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouterDeps carries the optional infrastructure the routes hook into.
// Nil members disable the corresponding feature.
type RouterDeps struct {
	Metrics      *metrics.Registry
	LoginLimiter *limiter.Limiter
	Posthog      *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	registerValidators()

	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.NoRoute(noRoute)

	setupAPIV1Routes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	var loginLimit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if deps.LoginLimiter != nil {
		loginLimit = middleware.RateLimit(deps.LoginLimiter)
	}

	companies := newCompanyHandler(services.Company, deps.Posthog)
	employees := newEmployeeHandler(services.Employee)

	public := r.Group("/api/v1")
	registerCompanyAuthRoutes(public, companies, loginLimit)
	registerEmployeeAuthRoutes(public, employees, loginLimit)

	// The employee service doubles as the principal loader for every protected route.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Token, services.Employee))
	if deps.Posthog != nil {
		v1.Use(middleware.PosthogMiddleware(deps.Posthog))
	}
	registerCompanyRoutes(v1, companies, cfg.AdminSharedSecret)
	registerEmployeeRoutes(v1, employees, cfg.AdminSharedSecret)
	registerTaskRoutes(v1, newTaskHandler(services.Task), cfg.AdminSharedSecret)
	registerMeetingRoutes(v1, newMeetingHandler(services.Meeting), cfg.AdminSharedSecret)
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
