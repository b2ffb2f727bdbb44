package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/tradebook/internal/adapter/http/handler"
	apimiddleware "github.com/iho/tradebook/internal/adapter/http/middleware"
	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"name":"Ahmed Trading LLC"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /api/v1/customers/",
		"GET /api/v1/customers/",
		"GET /api/v1/customers/{id}",
		"DELETE /api/v1/customers/{id}",
		"POST /api/v1/agents/",
		"POST /api/v1/suppliers/",
		"POST /api/v1/bank-accounts/",
		"POST /api/v1/bills/",
		"POST /api/v1/payments/",
		"PUT /api/v1/payments/{id}",
		"POST /api/v1/settlements/",
		"POST /api/v1/supplier-transactions/",
		"GET /api/v1/overview",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		CustomerHandler:            handler.NewCustomerHandler(&stubCustomerService{}),
		AgentHandler:               &handler.AgentHandler{},
		SupplierHandler:            &handler.SupplierHandler{},
		BankAccountHandler:         &handler.BankAccountHandler{},
		BillHandler:                &handler.BillHandler{},
		PaymentHandler:             &handler.PaymentHandler{},
		SettlementHandler:          &handler.SettlementHandler{},
		SupplierTransactionHandler: &handler.SupplierTransactionHandler{},
		OverviewHandler:            &handler.OverviewHandler{},
		HealthHandler:              &handler.HealthHandler{},
		Logger:                     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubCustomerService struct{}

func (stubCustomerService) CreateCustomer(ctx context.Context, input usecase.CustomerInput) (*domain.Customer, error) {
	return &domain.Customer{ID: "cust", Name: input.Name}, nil
}

func (stubCustomerService) UpdateCustomer(ctx context.Context, id string, input usecase.CustomerInput) error {
	return nil
}

func (stubCustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return nil
}

func (stubCustomerService) ListCustomers(ctx context.Context, limit, offset int) ([]*domain.CustomerWithBalance, error) {
	return []*domain.CustomerWithBalance{}, nil
}

func (stubCustomerService) GetCustomerStatement(ctx context.Context, id string) (*domain.CustomerStatement, error) {
	return &domain.CustomerStatement{Customer: &domain.Customer{ID: id}}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
