package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/tradebook/internal/adapter/http"
	"github.com/iho/tradebook/internal/adapter/http/handler"
	"github.com/iho/tradebook/internal/adapter/repository/postgres"
	"github.com/iho/tradebook/internal/usecase"
	"github.com/iho/tradebook/tests/testutil"
)

// newTestServer wires the full HTTP stack against a real database,
// without Redis: no idempotency, no overview cache, no rate limiter.
func newTestServer(t *testing.T, pool *pgxpool.Pool) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()

	txManager := postgres.NewTxManager(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	agentRepo := postgres.NewAgentRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	bankRepo := postgres.NewBankAccountRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	settlementRepo := postgres.NewSettlementRepository(pool)
	txnRepo := postgres.NewSupplierTransactionRepository(pool)
	overviewRepo := postgres.NewOverviewRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier(logger)

	customerUC := usecase.NewCustomerUseCase(txManager, customerRepo, billRepo, paymentRepo, txnRepo, bankRepo, idGen, nil)
	agentUC := usecase.NewAgentUseCase(txManager, agentRepo, paymentRepo, settlementRepo, idGen, nil)
	supplierUC := usecase.NewSupplierUseCase(txManager, supplierRepo, txnRepo, paymentRepo, idGen, nil)
	bankUC := usecase.NewBankAccountUseCase(bankRepo, idGen)
	billUC := usecase.NewBillUseCase(billRepo, idGen)
	paymentUC := usecase.NewPaymentUseCase(txManager, paymentRepo, bankRepo, idGen, retrier, logger, nil)
	settlementUC := usecase.NewSettlementUseCase(settlementRepo, idGen)
	txnUC := usecase.NewSupplierTransactionUseCase(txnRepo, idGen)
	overviewUC := usecase.NewOverviewUseCase(overviewRepo, nil, 0, logger)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		CustomerHandler:            handler.NewCustomerHandler(customerUC),
		AgentHandler:               handler.NewAgentHandler(agentUC),
		SupplierHandler:            handler.NewSupplierHandler(supplierUC),
		BankAccountHandler:         handler.NewBankAccountHandler(bankUC),
		BillHandler:                handler.NewBillHandler(billUC),
		PaymentHandler:             handler.NewPaymentHandler(paymentUC),
		SettlementHandler:          handler.NewSettlementHandler(settlementUC),
		SupplierTransactionHandler: handler.NewSupplierTransactionHandler(txnUC),
		OverviewHandler:            handler.NewOverviewHandler(overviewUC),
		HealthHandler:              handler.NewHealthHandler(pool, nil),
		Logger:                     logger,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func setupSuite(t *testing.T) (*httptest.Server, *testutil.TestDB) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(context.Background())

	return newTestServer(t, testDB.Pool), testDB
}

// doJSON issues a request with a JSON body and decodes the JSON response
// into out (which may be nil).
func doJSON(t *testing.T, client *http.Client, method, url string, body any, out any) int {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &reqBody)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}

	return resp.StatusCode
}
