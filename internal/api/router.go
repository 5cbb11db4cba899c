package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/quickserve/ordering-system/docs"
	"github.com/quickserve/ordering-system/internal/api/handler"
	"github.com/quickserve/ordering-system/internal/api/middleware"
	"github.com/quickserve/ordering-system/internal/core/ports"
	"github.com/quickserve/ordering-system/internal/core/service"
	mongodb "github.com/quickserve/ordering-system/internal/infrastructure/db/mongo"
	redisdb "github.com/quickserve/ordering-system/internal/infrastructure/db/redis"
	"github.com/quickserve/ordering-system/internal/pkg/config"
)

// Deps carries the externally constructed dependencies the router wires
// handlers around.
type Deps struct {
	Config    *config.Config
	DB        *mongo.Database
	Redis     *redis.Client
	AuditSink ports.AuditSink
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ordering"))

	// --- Dependencies ---
	hasher := service.NewPasswordHasher(d.Config.BcryptCost)
	issuer := service.NewTokenIssuer(d.Config.JWTSecret, d.Config.JWTTTL)
	throttle := redisdb.NewLoginThrottle(d.Redis, d.Config.LoginMaxFailures)

	employeeRepo := mongodb.NewEmployeeRepository(d.DB)
	authService := service.NewAuthService(employeeRepo, hasher, issuer, throttle, d.Logger)
	employeeService := service.NewEmployeeService(employeeRepo, hasher, d.AuditSink, d.Config.DefaultPassword, d.Logger)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	authRequired := middleware.Auth(issuer)

	// --- Admin employee routes ---
	admin := e.Group("/admin/employee")
	admin.POST("/login", authHandler.Login)
	admin.POST("/logout", authHandler.Logout, authRequired)
	admin.POST("", employeeHandler.Create, authRequired)
	admin.GET("/page", employeeHandler.Page, authRequired)
	admin.POST("/status/:status", employeeHandler.SetStatus, authRequired)
	admin.GET("/:id", employeeHandler.GetByID, authRequired)
	admin.PUT("", employeeHandler.Update, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
