package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zottaemp/timeclock-api/internal/api/handler"
	"github.com/zottaemp/timeclock-api/internal/api/middleware"
	"github.com/zottaemp/timeclock-api/internal/core/domain"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
	"github.com/zottaemp/timeclock-api/internal/core/service"
)

// Dependencies carries everything the router needs to assemble the service
// graph. Entries is a port rather than a concrete repository because the
// work-entry backend is selected by configuration (Mongo or flat file).
type Dependencies struct {
	Entries   ports.WorkEntryRepository
	Users     ports.UserRepository
	Pending   ports.PendingUpdateStore
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timeclock"))

	// --- Services ---
	authService := service.NewAuthService(deps.Users, deps.JWTSecret, 24*time.Hour)
	sessionService := service.NewSessionService(deps.Entries, deps.Logger)
	reportService := service.NewReportService(deps.Entries, deps.Users, deps.Logger)
	employeeService := service.NewEmployeeService(deps.Users, deps.Logger)
	adminService := service.NewAdminCredentialService(deps.Users, deps.Pending, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	reportHandler := handler.NewReportHandler(reportService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	adminHandler := handler.NewAdminHandler(adminService)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))

	work := v1.Group("/work", middleware.RBAC(domain.RoleEmployee))
	work.POST("/start", sessionHandler.Start)
	work.POST("/:entry_id/end", sessionHandler.End)
	work.GET("/history", sessionHandler.History)

	admin := v1.Group("", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/work/entries", sessionHandler.ListAll)
	admin.GET("/work/entries/:entry_id", sessionHandler.Get)
	admin.POST("/reports/wages", reportHandler.Wages)

	admin.GET("/employees", employeeHandler.List)
	admin.POST("/employees", employeeHandler.Add)
	admin.GET("/employees/filter", employeeHandler.Filter)
	admin.GET("/employees/:id", employeeHandler.Get)
	admin.PUT("/employees/:id", employeeHandler.Update)
	admin.DELETE("/employees/:id", employeeHandler.Delete)

	admin.POST("/admin/credentials/initiate", adminHandler.Initiate)
	admin.POST("/admin/credentials/confirm", adminHandler.Confirm)

	return e
}
