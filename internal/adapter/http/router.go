package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/tradebook/internal/adapter/http/handler"
	"github.com/iho/tradebook/internal/adapter/http/middleware"
	"github.com/iho/tradebook/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler            *handler.CustomerHandler
	AgentHandler               *handler.AgentHandler
	SupplierHandler            *handler.SupplierHandler
	BankAccountHandler         *handler.BankAccountHandler
	BillHandler                *handler.BillHandler
	PaymentHandler             *handler.PaymentHandler
	SettlementHandler          *handler.SettlementHandler
	SupplierTransactionHandler *handler.SupplierTransactionHandler
	OverviewHandler            *handler.OverviewHandler
	HealthHandler              *handler.HealthHandler
	IdempotencyStore           usecase.IdempotencyStore
	RateLimiter                *middleware.RateLimiter
	Logger                     zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Customers
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", cfg.CustomerHandler.Create)
			r.Get("/", cfg.CustomerHandler.List)
			r.Get("/{id}", cfg.CustomerHandler.GetStatement)
			r.Put("/{id}", cfg.CustomerHandler.Update)
			r.Delete("/{id}", cfg.CustomerHandler.Delete)
		})

		// Agents
		r.Route("/agents", func(r chi.Router) {
			r.Post("/", cfg.AgentHandler.Create)
			r.Get("/", cfg.AgentHandler.List)
			r.Get("/{id}", cfg.AgentHandler.GetStatement)
			r.Put("/{id}", cfg.AgentHandler.Update)
			r.Delete("/{id}", cfg.AgentHandler.Delete)
		})

		// Suppliers
		r.Route("/suppliers", func(r chi.Router) {
			r.Post("/", cfg.SupplierHandler.Create)
			r.Get("/", cfg.SupplierHandler.List)
			r.Get("/{id}", cfg.SupplierHandler.GetStatement)
			r.Put("/{id}", cfg.SupplierHandler.Update)
			r.Delete("/{id}", cfg.SupplierHandler.Delete)
		})

		// Bank accounts
		r.Route("/bank-accounts", func(r chi.Router) {
			r.Post("/", cfg.BankAccountHandler.Create)
			r.Get("/", cfg.BankAccountHandler.List)
			r.Get("/{id}", cfg.BankAccountHandler.Get)
			r.Put("/{id}", cfg.BankAccountHandler.Update)
			r.Delete("/{id}", cfg.BankAccountHandler.Delete)
		})

		// Bills
		r.Route("/bills", func(r chi.Router) {
			r.Post("/", cfg.BillHandler.Create)
			r.Put("/{id}", cfg.BillHandler.Update)
			r.Delete("/{id}", cfg.BillHandler.Delete)
		})

		// Payments
		r.Route("/payments", func(r chi.Router) {
			r.Post("/", cfg.PaymentHandler.Create)
			r.Get("/{id}", cfg.PaymentHandler.Get)
			r.Put("/{id}", cfg.PaymentHandler.Update)
			r.Delete("/{id}", cfg.PaymentHandler.Delete)
		})

		// Agent settlements
		r.Route("/settlements", func(r chi.Router) {
			r.Post("/", cfg.SettlementHandler.Create)
			r.Put("/{id}", cfg.SettlementHandler.Update)
			r.Delete("/{id}", cfg.SettlementHandler.Delete)
		})

		// Supplier transactions
		r.Route("/supplier-transactions", func(r chi.Router) {
			r.Post("/", cfg.SupplierTransactionHandler.Create)
			r.Put("/{id}", cfg.SupplierTransactionHandler.Update)
			r.Delete("/{id}", cfg.SupplierTransactionHandler.Delete)
		})

		// Dashboard overview
		r.Get("/overview", cfg.OverviewHandler.Get)
	})

	return r
}
