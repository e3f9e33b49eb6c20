package main

// @title SmartProperty Service API
// @version 1.0.0
// @description Сервис аналитики недвижимости: климатические оценки точек (LST, NDVI, UTFVI, UHI),
// @description оценка стоимости объектов, аналитика по объектам и прокси подложки карты MAPID.
// @description
// @description Основные возможности:
// @description - Климатические оценки точки по слоям зон с синтетическим заполнением пропусков
// @description - Оценка стоимости внешней моделью или эвристикой
// @description - Список, сравнение и рекомендации объектов
// @description - Аналитика по районам

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/smartproperty-service/docs/swagger"
	"github.com/smartproperty-service/internal/climate"
	"github.com/smartproperty-service/internal/config"
	httpDelivery "github.com/smartproperty-service/internal/delivery/http"
	"github.com/smartproperty-service/internal/delivery/http/handler"
	"github.com/smartproperty-service/internal/domain/repository"
	"github.com/smartproperty-service/internal/infrastructure/mapid"
	"github.com/smartproperty-service/internal/infrastructure/pricemodel"
	"github.com/smartproperty-service/internal/observability"
	"github.com/smartproperty-service/internal/pkg/logger"
	"github.com/smartproperty-service/internal/repository/cache"
	"github.com/smartproperty-service/internal/repository/geojson"
	"github.com/smartproperty-service/internal/repository/memory"
	"github.com/smartproperty-service/internal/repository/postgres"
	"github.com/smartproperty-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SmartProperty Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("geometry_engine", cfg.Climate.GeometryEngine),
		zap.Bool("database_enabled", cfg.Database.Enabled),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	metrics := observability.NewMetrics()
	health := make(map[string]httpDelivery.HealthChecker)

	// 3. Optional PostgreSQL
	var propertyRepo repository.PropertyRepository
	var db *postgres.DB
	if cfg.Database.Enabled {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		propertyRepo = postgres.NewPropertyRepository(db)
		health["postgres"] = db
		log.Info("PostgreSQL connected")
	} else {
		propertyRepo = memory.NewPropertyRepository(memory.SeedProperties(), log)
		log.Info("Database disabled, using in-memory listings")
	}

	// 4. Optional Redis
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		health["redis"] = redisClient
		log.Info("Redis connected")
	} else {
		log.Info("Redis disabled, climate scores are not cached")
	}

	// 5. Climate pipeline
	catalog := geojson.NewZoneCatalog(cfg.Climate.DataDir, metrics, log)
	if cfg.Climate.Preload {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		loaded := catalog.Preload(ctx)
		cancel()
		log.Info("Zone layers preloaded", zap.Int("layers", loaded))
	}

	resolver := climate.NewResolver(cfg.Climate.GeometryEngine)
	log.Info("Zone resolver selected", zap.String("resolver", resolver.Name()))

	// 6. External clients
	priceModel := pricemodel.NewClient(&cfg.PriceModel, metrics, log)
	if priceModel == nil {
		log.Info("Price model URL not set, using heuristic pricing")
	}
	basemap := mapid.NewMapIDClient(&cfg.MapID, log)

	// 7. Initialize Use Cases
	climateUC := usecase.NewClimateUseCase(catalog, resolver, cacheRepo, metrics, log, cfg.Cache.ClimateCacheTTL)
	pricingUC := usecase.NewPricingUseCase(climateUC, priceModel, metrics, log)
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, log)
	analyticsUC := usecase.NewAnalyticsUseCase(propertyRepo, climateUC, clockwork.NewRealClock(), log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, metrics, httpDelivery.Handlers{
		Climate:   handler.NewClimateHandler(climateUC, log),
		Pricing:   handler.NewPricingHandler(pricingUC, log),
		Property:  handler.NewPropertyHandler(propertyUC, log),
		Analytics: handler.NewAnalyticsHandler(analyticsUC, log),
		Map:       handler.NewMapHandler(basemap, log),
	}, health)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
