package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/moodmeal/backend/internal/auth"
	"github.com/moodmeal/backend/internal/config"
	"github.com/moodmeal/backend/internal/database"
	"github.com/moodmeal/backend/internal/handlers"
	"github.com/moodmeal/backend/internal/logger"
	"github.com/moodmeal/backend/internal/middleware"
	"github.com/moodmeal/backend/internal/repository"
	"github.com/moodmeal/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting moodmeal api server",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port),
	)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodEntryRepository(db)
	moodRepo := repository.NewMoodEntryRepository(db)
	catalogRepo := repository.NewFoodCatalogRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens)
	foodService := service.NewFoodEntryService(foodRepo)
	moodService := service.NewMoodEntryService(moodRepo)
	catalogService := service.NewFoodCatalogService(catalogRepo)
	analyticsService := service.NewAnalyticsService(foodRepo, moodRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	foodHandler := handlers.NewFoodEntryHandler(foodService)
	moodHandler := handlers.NewMoodEntryHandler(moodService)
	catalogHandler := handlers.NewFoodCatalogHandler(catalogService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", middleware.RateLimitAuth(), authHandler.Register)
			authGroup.POST("/login", middleware.RateLimitAuth(), authHandler.Login)
			authGroup.GET("/me", middleware.Auth(tokens), authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.Auth(tokens))
		protected.Use(middleware.Idempotency(idempotencyRepo))
		{
			// Food entry routes
			protected.GET("/food-entries", foodHandler.ListEntries)
			protected.POST("/food-entries", foodHandler.CreateEntry)
			protected.GET("/food-entries/summary", foodHandler.Summary)
			protected.GET("/food-entries/:id", foodHandler.GetEntry)
			protected.PUT("/food-entries/:id", foodHandler.UpdateEntry)
			protected.DELETE("/food-entries/:id", foodHandler.DeleteEntry)

			// Mood entry routes
			protected.GET("/mood-entries", moodHandler.ListEntries)
			protected.POST("/mood-entries", moodHandler.CreateEntry)
			protected.GET("/mood-entries/summary", moodHandler.Summary)
			protected.GET("/mood-entries/:id", moodHandler.GetEntry)
			protected.PUT("/mood-entries/:id", moodHandler.UpdateEntry)
			protected.DELETE("/mood-entries/:id", moodHandler.DeleteEntry)

			// Food reference database
			protected.GET("/foods", catalogHandler.Search)
			protected.GET("/foods/:id", catalogHandler.GetItem)

			// Analytics routes
			protected.GET("/analytics/correlations", analyticsHandler.GetCorrelations)
			protected.GET("/analytics/trends", analyticsHandler.GetTrends)
			protected.GET("/analytics/insights", analyticsHandler.GetInsights)
			protected.GET("/analytics/export", analyticsHandler.Export)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
