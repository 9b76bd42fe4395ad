package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/wangari/glowdesk-api/internal/application/service"
	"github.com/wangari/glowdesk-api/internal/config"
	"github.com/wangari/glowdesk-api/internal/infrastructure/cache"
	"github.com/wangari/glowdesk-api/internal/infrastructure/database"
	"github.com/wangari/glowdesk-api/internal/infrastructure/repository"
	"github.com/wangari/glowdesk-api/internal/presentation/http/handler"
	"github.com/wangari/glowdesk-api/internal/presentation/http/routes"
	"github.com/wangari/glowdesk-api/pkg/logger"
	"github.com/wangari/glowdesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logger.Initialize(cfg.App.Env)
	defer logger.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize analytics cache (Redis when configured, in-memory otherwise)
	var analyticsCache cache.Cache
	if cfg.Redis.Enabled {
		analyticsCache, err = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis, falling back to in-memory cache: %v", err)
			analyticsCache = cache.NewMemoryCache()
		}
	} else {
		analyticsCache = cache.NewMemoryCache()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	salonRepo := repository.NewSalonRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewCachedAnalyticsRepository(
		repository.NewAnalyticsRepository(db),
		analyticsCache,
		cfg.Analytics.CacheTTL,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	salonService := service.NewSalonService(salonRepo)
	staffService := service.NewStaffService(staffRepo)
	catalogService := service.NewCatalogService(serviceRepo)
	customerService := service.NewCustomerService(customerRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, serviceRepo, staffRepo, customerRepo)
	reviewService := service.NewReviewService(reviewRepo, appointmentRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, salonRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Salon:       handler.NewSalonHandler(salonService),
		Staff:       handler.NewStaffHandler(staffService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Customer:    handler.NewCustomerHandler(customerService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Review:      handler.NewReviewHandler(reviewService),
		Analytics:   handler.NewAnalyticsHandler(analyticsService),
		Settings:    handler.NewSettingsHandler(settingsService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		SalonRepo:       salonRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
