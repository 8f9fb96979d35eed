package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bizpulse/storesim/internal/config"
	"github.com/bizpulse/storesim/internal/database"
	"github.com/bizpulse/storesim/internal/handler"
	"github.com/bizpulse/storesim/internal/middleware"
	"github.com/bizpulse/storesim/internal/repository"
	"github.com/bizpulse/storesim/internal/service"
	"github.com/bizpulse/storesim/internal/sim"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool)
	router.GET("/health", healthHandler.Health)

	setupAPIRoutes(router, pool, cfg.SimSeed)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// simSeed of zero means seed from the wall clock. A fixed seed makes
// entire simulation runs reproducible, which the integration tests and
// demo environments rely on.
func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, simSeed int64) {
	if simSeed == 0 {
		simSeed = time.Now().UnixNano()
	}

	storeRepo := repository.NewStoreRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	strategyRepo := repository.NewStrategyRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	txnRepo := repository.NewTransactionRepository(pool)

	generator := sim.NewGenerator(rand.New(rand.NewSource(simSeed)))
	engine := sim.NewEngine(rand.New(rand.NewSource(simSeed + 1)))

	storeService := service.NewStoreService(storeRepo)
	productService := service.NewProductService(storeRepo, productRepo)
	strategyService := service.NewStrategyService(storeRepo, strategyRepo)
	customerService := service.NewCustomerService(storeRepo, customerRepo, generator)
	simulationService := service.NewSimulationService(storeRepo, customerRepo, productRepo, strategyRepo, txnRepo, engine)
	analyticsService := service.NewAnalyticsService(storeRepo, txnRepo)
	reportService := service.NewReportService(storeRepo, analyticsService, customerService)

	storeHandler := handler.NewStoreHandler(storeService)
	productHandler := handler.NewProductHandler(productService)
	strategyHandler := handler.NewStrategyHandler(strategyService)
	customerHandler := handler.NewCustomerHandler(customerService)
	simulationHandler := handler.NewSimulationHandler(simulationService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	reportHandler := handler.NewReportHandler(reportService)

	api := router.Group("/api/v1")
	{
		api.POST("/stores", storeHandler.Create)
		api.GET("/stores/:id", storeHandler.Get)
		api.DELETE("/stores/:id", storeHandler.Delete)

		store := api.Group("/stores/:id")
		{
			store.POST("/products", productHandler.Create)
			store.GET("/products", productHandler.List)
			store.DELETE("/products/:productId", productHandler.Delete)

			store.POST("/strategies", strategyHandler.Create)
			store.GET("/strategies", strategyHandler.List)
			store.PATCH("/strategies/:strategyId", strategyHandler.Update)
			store.DELETE("/strategies/:strategyId", strategyHandler.Delete)

			store.POST("/customers/generate", customerHandler.Generate)
			store.GET("/customers", customerHandler.List)
			store.GET("/customers/analytics", customerHandler.Analytics)

			store.POST("/simulate", simulationHandler.Simulate)
			store.GET("/analytics", analyticsHandler.Get)
			store.GET("/report", reportHandler.Get)
		}
	}
}
