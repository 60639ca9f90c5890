package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/realtyhub/marketplace-api/internal/api/handler"
	"github.com/realtyhub/marketplace-api/internal/api/middleware"
	"github.com/realtyhub/marketplace-api/internal/core/ports"
)

// Services bundles the wired core services the router depends on.
type Services struct {
	Auth ports.AuthService
	Role ports.RoleService
	User ports.UserService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, svc Services, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("realty"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	roleHandler := handler.NewRoleHandler(svc.Role)
	userHandler := handler.NewUserHandler(svc.User)

	authn := middleware.Authenticate(svc.Auth)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/auth/me", authHandler.Me, authn)

	// --- Role lifecycle routes ---
	// Reads need a subadmin-tier principal; mutations need the explicit
	// roles.manage permission on top of that. The service adds the
	// superadmin-only rules for system-role targets.
	roles := e.Group("/v1/roles", authn, middleware.RequireSubAdmin())
	roles.GET("", roleHandler.List)
	roles.GET("/:id", roleHandler.Get)
	roles.POST("", roleHandler.Create, middleware.RequirePermission("roles.manage"))
	roles.PUT("/:id", roleHandler.Update, middleware.RequirePermission("roles.manage"))
	roles.PATCH("/:id/toggle", roleHandler.ToggleActive, middleware.RequirePermission("roles.manage"))
	roles.DELETE("/:id", roleHandler.Delete, middleware.RequirePermission("roles.manage"))

	// --- User admin routes ---
	users := e.Group("/v1/users", authn)
	users.GET("", userHandler.List, middleware.RequirePermission("users.view"))
	users.DELETE("/:id", userHandler.Delete, middleware.RequirePermission("users.delete"))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
