package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wangari/glowdesk-api/internal/config"
	domainRepo "github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/internal/presentation/http/handler"
	"github.com/wangari/glowdesk-api/internal/presentation/http/middleware"
	"github.com/wangari/glowdesk-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Salon       *handler.SalonHandler
	Staff       *handler.StaffHandler
	Catalog     *handler.CatalogHandler
	Customer    *handler.CustomerHandler
	Appointment *handler.AppointmentHandler
	Review      *handler.ReviewHandler
	Analytics   *handler.AnalyticsHandler
	Settings    *handler.SettingsHandler
	User        *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	SalonRepo       domainRepo.SalonRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.Authenticate(deps.JWTManager))
		protected.Use(middleware.SalonMiddleware(deps.SalonRepo))

		// Per-salon rate limiter
		rateLimiter := middleware.NewSalonRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Salons
	registerSalonRoutes(protected, h)

	// Staff roster
	registerStaffRoutes(protected, h)

	// Service catalog
	registerCatalogRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Appointments
	registerAppointmentRoutes(protected, h, deps)

	// Reviews
	registerReviewRoutes(protected, h, deps)

	// Analytics
	registerAnalyticsRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)

	// Super Admin routes
	registerAdminRoutes(protected, h)
}

func registerSalonRoutes(protected *gin.RouterGroup, h *Handlers) {
	salons := protected.Group("/salons")
	{
		salons.GET("", h.Salon.ListSalons)
		salons.POST("", h.Salon.CreateSalon)
		salons.GET("/current", h.Salon.GetCurrentSalon)
		salons.PUT("/current", h.Salon.UpdateSalon)
		salons.GET("/current/members", h.Salon.ListMembers)
		salons.POST("/current/members", h.Salon.InviteMember)
		salons.PUT("/current/members/:user_id", h.Salon.UpdateMemberRole)
		salons.DELETE("/current/members/:user_id", h.Salon.RemoveMember)
	}
}

func registerStaffRoutes(protected *gin.RouterGroup, h *Handlers) {
	staff := protected.Group("/staff")
	staff.Use(middleware.RequirePermission("manage-staff"))
	{
		staff.GET("", h.Staff.List)
		staff.POST("", h.Staff.Create)
		staff.GET("/:id", h.Staff.Get)
		staff.PUT("/:id", h.Staff.Update)
		staff.DELETE("/:id", h.Staff.Delete)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	services := protected.Group("/services")
	services.Use(middleware.RequirePermission("manage-services"))
	{
		services.GET("", h.Catalog.List)
		services.POST("", h.Catalog.Create)
		services.POST("/import", h.Catalog.Import)
		services.GET("/:id", h.Catalog.Get)
		services.PUT("/:id", h.Catalog.Update)
		services.DELETE("/:id", h.Catalog.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerAppointmentRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	appointments := protected.Group("/appointments")
	appointments.Use(middleware.RequirePermission("manage-appointments"))
	{
		appointments.GET("", h.Appointment.List)
		// Booking uses idempotency middleware to prevent duplicates
		appointments.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Appointment.Create)
		appointments.GET("/upcoming", h.Appointment.GetUpcoming)
		appointments.GET("/:id", h.Appointment.Get)
		appointments.PUT("/:id/status", h.Appointment.UpdateStatus)
		appointments.POST("/:id/cancel", h.Appointment.Cancel)
		appointments.POST("/:id/reschedule", h.Appointment.Reschedule)
	}
}

func registerReviewRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	reviews := protected.Group("/reviews")
	{
		reviews.GET("", h.Review.List)
		// Clients may retry review submission; replay the stored response
		// when a key is supplied
		reviews.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Review.Create)
		reviews.GET("/:id", h.Review.Get)
		reviews.PUT("/:id/status", middleware.RequirePermission("manage-reviews"), h.Review.Moderate)
		reviews.DELETE("/:id", middleware.RequirePermission("manage-reviews"), h.Review.Delete)
	}
}

func registerAnalyticsRoutes(protected *gin.RouterGroup, h *Handlers) {
	analytics := protected.Group("/analytics")
	analytics.Use(middleware.RequireSalon())
	analytics.Use(middleware.RequirePermission("view-reports"))
	{
		analytics.GET("/dashboard", h.Analytics.GetDashboard)
		analytics.GET("/revenue", h.Analytics.GetRevenue)
		analytics.GET("/customers", h.Analytics.GetCustomerInsights)
		analytics.GET("/staff/:id", h.Analytics.GetStaffMetrics)
		analytics.GET("/performance", h.Analytics.GetPerformance)
		analytics.GET("/heatmap", h.Analytics.GetHeatmap)
		analytics.GET("/charts", h.Analytics.GetChart)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole("super-admin"))
	{
		admin.POST("/salons/assign-user", h.Salon.AssignUserToSalon)
	}
}
