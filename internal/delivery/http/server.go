package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smartproperty-service/internal/config"
	"github.com/smartproperty-service/internal/delivery/http/handler"
	"github.com/smartproperty-service/internal/delivery/http/middleware"
	"github.com/smartproperty-service/internal/observability"
	"github.com/smartproperty-service/internal/pkg/errors"
	"github.com/smartproperty-service/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, состояние которой попадает в /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handlers - обработчики маршрутов API
type Handlers struct {
	Climate   *handler.ClimateHandler
	Pricing   *handler.PricingHandler
	Property  *handler.PropertyHandler
	Analytics *handler.AnalyticsHandler
	Map       *handler.MapHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	metrics  *observability.Metrics
	handlers Handlers
	health   map[string]HealthChecker
}

// NewServer - создание нового HTTP сервера.
// health - необязательные зависимости (postgres, redis) по имени.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Metrics,
	handlers Handlers,
	health map[string]HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "SmartProperty Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		metrics:  metrics,
		handlers: handlers,
		health:   health,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger, s.metrics))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthCheck)

	// Climate
	climate := api.Group("/climate")
	climate.Get("/scores", s.handlers.Climate.GetScores)
	climate.Post("/scores/batch", s.handlers.Climate.GetScoresBatch)
	climate.Get("/risk-layers", s.handlers.Climate.GetRiskLayers)
	api.Get("/layers/:indicator", s.handlers.Climate.GetLayer)

	// Pricing
	api.Post("/price/predict", s.handlers.Pricing.Predict)

	// Properties: статические пути регистрируются раньше /:id
	properties := api.Group("/properties")
	properties.Get("/", s.handlers.Property.List)
	properties.Get("/compare", s.handlers.Property.Compare)
	properties.Get("/recommend", s.handlers.Property.Recommend)
	properties.Get("/:id", s.handlers.Property.Get)

	// Analytics
	analytics := api.Group("/analytics")
	analytics.Get("/price-by-district", s.handlers.Analytics.PriceByDistrict)
	analytics.Get("/climate-by-district", s.handlers.Analytics.ClimateByDistrict)
	analytics.Get("/dashboard-summary", s.handlers.Analytics.DashboardSummary)

	// Basemap proxy
	mapGroup := api.Group("/map")
	mapGroup.Get("/style", s.handlers.Map.GetStyle)
	mapGroup.Get("/resources/*", s.handlers.Map.GetResource)
}

// healthCheck - состояние сервиса и необязательных зависимостей
func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	deps := make(map[string]string, len(s.health))
	for name, checker := range s.health {
		if err := checker.Health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "unhealthy"
			status = "degraded"
			continue
		}
		deps[name] = "healthy"
	}

	return c.JSON(fiber.Map{
		"status":       status,
		"time":         time.Now(),
		"dependencies": deps,
	})
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, 405, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			code := "INTERNAL_SERVER_ERROR"
			switch e.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusBadRequest:
				code = "INVALID_REQUEST"
			}
			return utils.SendError(c, errors.New(code, e.Message, e.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
