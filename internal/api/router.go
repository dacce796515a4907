package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-api/internal/api/handler"
	"github.com/clientdesk/crm-api/internal/api/middleware"
	"github.com/clientdesk/crm-api/internal/core/domain"
	"github.com/clientdesk/crm-api/internal/core/service"
	"github.com/clientdesk/crm-api/internal/infrastructure/config"
	"github.com/clientdesk/crm-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))
	if len(cfg.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
		}))
	}

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userService := service.NewUserService(userRepo, log)
	customerService := service.NewCustomerService(customerRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	customerHandler := handler.NewCustomerHandler(customerService)
	healthHandler := handler.NewHealthHandler(db, cfg)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	adminOrViewer := middleware.RBAC(domain.RoleAdmin, domain.RoleViewer)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Status)
	e.GET("/health/live", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	auth := apiGroup.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- User management (admin only) ---
	users := apiGroup.Group("/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Customers (reads open to viewers, writes admin only) ---
	customers := apiGroup.Group("/customers", authRequired)
	customers.GET("", customerHandler.List, adminOrViewer)
	customers.GET("/:id", customerHandler.Get, adminOrViewer)
	customers.POST("", customerHandler.Create, adminOnly)
	customers.PUT("/:id", customerHandler.Update, adminOnly)
	customers.DELETE("/:id", customerHandler.Delete, adminOnly)

	return e
}
