package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maan-homes/accounts-api/internal/api/handler"
	"github.com/maan-homes/accounts-api/internal/api/middleware"
	"github.com/maan-homes/accounts-api/internal/core/ports"
	"github.com/maan-homes/accounts-api/internal/infrastructure/config"
)

// Deps carries the constructed services the router wires to routes.
type Deps struct {
	Users    ports.UserService
	Admins   ports.AdminService
	Sessions ports.SessionTokens
	Cookies  handler.CookiePolicy
	Mongo    *mongo.Database
	Redis    *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, deps Deps, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(deps.Users, deps.Cookies)
	adminHandler := handler.NewAdminHandler(deps.Admins, deps.Cookies, cfg.AdminKey)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	authGuard := middleware.Auth(deps.Sessions)

	apiGroup := e.Group("/api")

	// Public account routes.
	v1 := apiGroup.Group("/v1")
	v1.POST("/user/register", userHandler.Register)
	v1.POST("/user/login", userHandler.Login)
	v1.POST("/user/forgot", userHandler.ForgotPassword)
	v1.POST("/user/reset/:token", userHandler.ResetPassword)
	v1.POST("/admin/register", adminHandler.Register)
	v1.POST("/admin/login", adminHandler.Login)

	// Session-guarded user routes.
	v2 := apiGroup.Group("/v2", authGuard)
	v2.PATCH("/user/update/:id", userHandler.Update)
	v2.DELETE("/user/delete/:id", userHandler.Delete)
	v2.GET("/user/logout", userHandler.Logout)
	v2.GET("/user/me", userHandler.Me)

	// Admin-gated routes.
	v3 := apiGroup.Group("/v3", authGuard, middleware.AdminOnly())
	v3.GET("/admin/me", adminHandler.Me)
	v3.PATCH("/admin/update/:id", adminHandler.Update)
	v3.DELETE("/admin/delete/:id", adminHandler.Delete)
	v3.GET("/admin/logout", adminHandler.Logout)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
