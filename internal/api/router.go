package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/betrybe/agrix/internal/api/handler"
	"github.com/betrybe/agrix/internal/api/middleware"
	"github.com/betrybe/agrix/internal/core/domain"
	"github.com/betrybe/agrix/internal/core/ports"
	"github.com/betrybe/agrix/internal/core/service"
)

// Dependencies carries everything the router needs. Repositories are
// interfaces so tests can wire in-memory stubs.
type Dependencies struct {
	Persons     ports.PersonRepository
	Farms       ports.FarmRepository
	Crops       ports.CropRepository
	Fertilizers ports.FertilizerRepository
	Tokens      ports.TokenService
	Limiter     ports.LoginLimiter  // optional: nil disables login throttling
	Audit       ports.AuditRecorder // optional: nil disables the audit trail
	Health      handler.HealthChecks
	Logger      zerolog.Logger
	// Registerer/Gatherer default to the global Prometheus registry; tests
	// pass a private registry to avoid duplicate registration.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route policy: POST /persons and POST /auth/login are public (along with
// the health and metrics probes); everything else requires a valid token,
// with GET /farms open to all three roles and GET /crops restricted to
// ADMIN and MANAGER.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "agrix",
		Registerer: registerer,
	}))

	// The identity filter runs once per request, before any policy check.
	e.Use(middleware.Identity(deps.Tokens, deps.Persons))
	if deps.Audit != nil {
		e.Use(middleware.Audit(deps.Audit))
	}

	// --- Services and handlers ---
	authService := service.NewAuthService(deps.Persons, deps.Tokens, deps.Limiter, deps.Logger)
	personService := service.NewPersonService(deps.Persons, deps.Logger)
	farmService := service.NewFarmService(deps.Farms, deps.Crops, deps.Logger)
	cropService := service.NewCropService(deps.Crops, deps.Fertilizers, deps.Logger)
	fertilizerService := service.NewFertilizerService(deps.Fertilizers, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	personHandler := handler.NewPersonHandler(personService)
	farmHandler := handler.NewFarmHandler(farmService)
	cropHandler := handler.NewCropHandler(cropService)
	fertilizerHandler := handler.NewFertilizerHandler(fertilizerService)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/persons", personHandler.Create)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Health)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	// --- Farms ---
	farms := e.Group("/farms")
	farms.POST("", farmHandler.Create, middleware.RequireAuth())
	farms.GET("", farmHandler.List, middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager, domain.RoleUser))
	farms.GET("/:farmId", farmHandler.Get, middleware.RequireAuth())
	farms.POST("/:farmId/crops", farmHandler.CreateCrop, middleware.RequireAuth())
	farms.GET("/:farmId/crops", farmHandler.ListCrops, middleware.RequireAuth())

	// --- Crops ---
	crops := e.Group("/crops")
	crops.GET("", cropHandler.List, middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager))
	crops.GET("/search", cropHandler.Search, middleware.RequireAuth())
	crops.GET("/:cropId", cropHandler.Get, middleware.RequireAuth())
	crops.POST("/:cropId/fertilizers/:fertilizerId", cropHandler.AddFertilizer, middleware.RequireAuth())
	crops.GET("/:cropId/fertilizers", cropHandler.ListFertilizers, middleware.RequireAuth())

	// --- Fertilizers ---
	fertilizers := e.Group("/fertilizers", middleware.RequireAuth())
	fertilizers.POST("", fertilizerHandler.Create)
	fertilizers.GET("", fertilizerHandler.List)
	fertilizers.GET("/:fertilizerId", fertilizerHandler.Get)

	return e
}
