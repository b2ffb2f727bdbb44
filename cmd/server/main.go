package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/tradebook/internal/adapter/http"
	"github.com/iho/tradebook/internal/adapter/http/handler"
	"github.com/iho/tradebook/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/tradebook/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/tradebook/internal/adapter/repository/redis"
	"github.com/iho/tradebook/internal/infrastructure/config"
	"github.com/iho/tradebook/internal/infrastructure/metrics"
	"github.com/iho/tradebook/internal/infrastructure/postgres"
	"github.com/iho/tradebook/internal/infrastructure/redis"
	"github.com/iho/tradebook/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	agentRepo := postgresRepo.NewAgentRepository(pool)
	supplierRepo := postgresRepo.NewSupplierRepository(pool)
	bankRepo := postgresRepo.NewBankAccountRepository(pool)
	billRepo := postgresRepo.NewBillRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	settlementRepo := postgresRepo.NewSettlementRepository(pool)
	txnRepo := postgresRepo.NewSupplierTransactionRepository(pool)
	overviewRepo := postgresRepo.NewOverviewRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log.Logger)

	// Initialize use cases
	customerUC := usecase.NewCustomerUseCase(txManager, customerRepo, billRepo, paymentRepo, txnRepo, bankRepo, idGen, m)
	agentUC := usecase.NewAgentUseCase(txManager, agentRepo, paymentRepo, settlementRepo, idGen, m)
	supplierUC := usecase.NewSupplierUseCase(txManager, supplierRepo, txnRepo, paymentRepo, idGen, m)
	bankUC := usecase.NewBankAccountUseCase(bankRepo, idGen)
	billUC := usecase.NewBillUseCase(billRepo, idGen)
	paymentUC := usecase.NewPaymentUseCase(txManager, paymentRepo, bankRepo, idGen, retrier, log.Logger, m)
	settlementUC := usecase.NewSettlementUseCase(settlementRepo, idGen)
	txnUC := usecase.NewSupplierTransactionUseCase(txnRepo, idGen)
	overviewUC := usecase.NewOverviewUseCase(overviewRepo, cache, cfg.OverviewCacheTTL, log.Logger)

	// Rate limiter with periodic cleanup
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go func() {
			ticker := time.NewTicker(time.Hour)
			defer ticker.Stop()
			for range ticker.C {
				rateLimiter.CleanupLimiters()
			}
		}()
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:            handler.NewCustomerHandler(customerUC),
		AgentHandler:               handler.NewAgentHandler(agentUC),
		SupplierHandler:            handler.NewSupplierHandler(supplierUC),
		BankAccountHandler:         handler.NewBankAccountHandler(bankUC),
		BillHandler:                handler.NewBillHandler(billUC),
		PaymentHandler:             handler.NewPaymentHandler(paymentUC),
		SettlementHandler:          handler.NewSettlementHandler(settlementUC),
		SupplierTransactionHandler: handler.NewSupplierTransactionHandler(txnUC),
		OverviewHandler:            handler.NewOverviewHandler(overviewUC),
		HealthHandler:              handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:           idempotencyStore,
		RateLimiter:                rateLimiter,
		Logger:                     log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
