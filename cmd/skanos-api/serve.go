package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/skanos/backend/internal/config"
	"github.com/skanos/backend/internal/handlers"
	"github.com/skanos/backend/internal/logger"
	"github.com/skanos/backend/internal/middleware"
	"github.com/skanos/backend/internal/repository"
	"github.com/skanos/backend/internal/service"
	"github.com/skanos/backend/pkg/supabase"
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
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting skanos api server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	eventRepo := repository.NewEventRepository(supabaseClient)
	entityRepo := repository.NewEntityRepository(supabaseClient)
	memoryRepo := repository.NewMemoryRepository(supabaseClient)
	quickNoteRepo := repository.NewQuickNoteRepository(supabaseClient)
	userRepo := repository.NewUserRepository(supabaseClient)
	pillarRepo := repository.NewPillarRepository(supabaseClient)

	// Initialize services
	eventService := service.NewEventService(eventRepo)
	captureService := service.NewCaptureService(quickNoteRepo, eventRepo)
	entityService := service.NewEntityService(entityRepo)
	memoryService := service.NewMemoryService(memoryRepo)
	healthService := service.NewHealthService(eventRepo, userRepo)
	wealthService := service.NewWealthService(eventRepo, userRepo)
	spiritualityService := service.NewSpiritualityService(eventRepo, userRepo)
	analyticsService := service.NewAnalyticsService(eventRepo)
	dashboardService := service.NewDashboardService(eventRepo, entityRepo, memoryRepo, pillarRepo)
	onboardingService := service.NewOnboardingService(userRepo)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService)
	captureHandler := handlers.NewCaptureHandler(captureService)
	entityHandler := handlers.NewEntityHandler(entityService)
	memoryHandler := handlers.NewMemoryHandler(memoryService)
	pillarsHandler := handlers.NewPillarsHandler(healthService, wealthService, spiritualityService, analyticsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit())

	// Health check and metrics
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Event routes
			protected.GET("/events", eventHandler.GetEvents)
			protected.POST("/events", eventHandler.CreateEvent)
			protected.GET("/events/today", eventHandler.GetTodayEvents)
			protected.GET("/events/:id", eventHandler.GetEvent)
			protected.PATCH("/events/:id", eventHandler.UpdateEvent)
			protected.DELETE("/events/:id", eventHandler.DeleteEvent)

			// Quick capture
			protected.POST("/capture", middleware.RateLimitCapture(), captureHandler.QuickCapture)
			protected.GET("/capture/inbox", captureHandler.GetInbox)

			// Entity routes
			protected.GET("/entities", entityHandler.GetEntities)
			protected.POST("/entities", entityHandler.CreateEntity)
			protected.GET("/entities/:id", entityHandler.GetEntity)

			// Memory routes
			protected.GET("/memories", memoryHandler.GetMemories)
			protected.POST("/memories", memoryHandler.CreateMemory)

			// Pillar dashboards
			protected.GET("/pillars/health/metrics", pillarsHandler.GetHealthMetrics)
			protected.GET("/pillars/wealth/metrics", pillarsHandler.GetWealthMetrics)
			protected.GET("/pillars/spirituality/metrics", pillarsHandler.GetSpiritualityMetrics)
			protected.GET("/analytics", pillarsHandler.GetAnalytics)

			// Landing page and onboarding
			protected.GET("/dashboard", dashboardHandler.GetDashboard)
			protected.GET("/onboarding/status", onboardingHandler.GetStatus)
			protected.PUT("/onboarding/goals", onboardingHandler.UpdateGoals)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
