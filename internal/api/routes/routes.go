package routes

import (
	"fmt"
	"net/http"

	"pokehub-backend/internal/api/handlers"
	"pokehub-backend/internal/api/middleware"
	"pokehub-backend/internal/auth"
	"pokehub-backend/internal/config"
	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/repository"
	"pokehub-backend/internal/service"
	"pokehub-backend/internal/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The registry
// is shared by the write path, the live editor and the readiness probe.
func SetupRoutes(db *gorm.DB, cfg *config.Config, registry *formats.Registry) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	verifier, err := auth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewAuthMiddleware(verifier)

	// Validation engine over the lazily loaded rule table
	engine := validation.NewEngine(nil, registry)

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, engine)
	validationService := service.NewValidationService(engine, registry)

	// Initialize handlers
	limiter := middleware.NewClientLimiter(cfg.ValidateRateLimit, cfg.ValidateRateBurst)
	healthHandler := handlers.NewHealthHandler(sqlDB, registry)
	teamHandler := handlers.NewTeamHandler(teamService)
	validationHandler := handlers.NewValidationHandler(validationService, limiter, cfg.AllowedOrigins)
	formatHandler := handlers.NewFormatHandler(validationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Live editor routes accept anonymous users
		validate := v1.Group("/teams/validate", authMiddleware.OptionalAuth(), middleware.RateLimit(limiter))
		{
			validate.POST("", validationHandler.ValidateTeam)
			validate.GET("/live", validationHandler.LiveValidation)
		}

		// Saved teams belong to the acting user
		teams := v1.Group("/teams", authMiddleware.RequireAuth())
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		// Format catalogue
		formatRoutes := v1.Group("/formats")
		{
			formatRoutes.GET("", formatHandler.ListFormats)
			formatRoutes.GET("/:id", formatHandler.GetFormat)
			formatRoutes.GET("/:id/audit", authMiddleware.RequireAuth(), teamHandler.AuditFormat)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
