package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/adapter/http/dto"
)

func TestAgentStatementFlow(t *testing.T) {
	server, _ := setupSuite(t)
	client := server.Client()

	var agent dto.AgentResponse
	status := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/agents", map[string]any{
		"name": "Wang Wei",
		"type": "usdt",
	}, &agent)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 creating agent, got %d", status)
	}

	// Omitted rates fall back to the standard conversion defaults.
	if !agent.USDTRate.Equal(decimal.NewFromFloat(3.67)) {
		t.Errorf("expected default usdt rate 3.67, got %s", agent.USDTRate)
	}
	if !agent.DHSRate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected default dhs rate 1, got %s", agent.DHSRate)
	}

	doJSON(t, client, http.MethodPost, server.URL+"/api/v1/payments", map[string]any{
		"agent_id": agent.ID,
		"amount":   "500",
	}, nil)

	doJSON(t, client, http.MethodPost, server.URL+"/api/v1/settlements", map[string]any{
		"agent_id":        agent.ID,
		"settlement_date": time.Now().UTC().Format(time.RFC3339),
		"amount":          "150",
		"type":            "received",
	}, nil)

	// A "paid" settlement does not reduce the pending balance.
	doJSON(t, client, http.MethodPost, server.URL+"/api/v1/settlements", map[string]any{
		"agent_id":        agent.ID,
		"settlement_date": time.Now().UTC().Format(time.RFC3339),
		"amount":          "999",
		"type":            "paid",
	}, nil)

	var statement dto.AgentStatementResponse
	status = doJSON(t, client, http.MethodGet, server.URL+"/api/v1/agents/"+agent.ID, nil, &statement)
	if status != http.StatusOK {
		t.Fatalf("expected 200 fetching agent statement, got %d", status)
	}

	if !statement.Summary.TotalReceived.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected total received 500, got %s", statement.Summary.TotalReceived)
	}
	if !statement.Summary.PendingBalance.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected pending balance 350, got %s", statement.Summary.PendingBalance)
	}
}

func TestSupplierStatementAndOverview(t *testing.T) {
	server, _ := setupSuite(t)
	client := server.Client()

	var supplier dto.SupplierResponse
	status := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/suppliers", map[string]any{
		"name":             "Guangzhou Wholesale Co",
		"rmb_to_usdt_rate": "7.2",
	}, &supplier)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 creating supplier, got %d", status)
	}

	doJSON(t, client, http.MethodPost, server.URL+"/api/v1/supplier-transactions", map[string]any{
		"supplier_id":      supplier.ID,
		"transaction_date": time.Now().UTC().Format(time.RFC3339),
		"rmb_amount":       "7200",
		"usdt_rate":        "7.2",
		"calculated_usdt":  "1000",
		"type":             "supplier_to_me",
	}, nil)

	doJSON(t, client, http.MethodPost, server.URL+"/api/v1/supplier-transactions", map[string]any{
		"supplier_id":      supplier.ID,
		"transaction_date": time.Now().UTC().Format(time.RFC3339),
		"rmb_amount":       "2880",
		"usdt_rate":        "7.2",
		"calculated_usdt":  "400",
		"type":             "me_to_supplier",
	}, nil)

	var statement dto.SupplierStatementResponse
	status = doJSON(t, client, http.MethodGet, server.URL+"/api/v1/suppliers/"+supplier.ID, nil, &statement)
	if status != http.StatusOK {
		t.Fatalf("expected 200 fetching supplier statement, got %d", status)
	}

	if !statement.Summary.NetBalance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected net balance 600, got %s", statement.Summary.NetBalance)
	}
	if len(statement.Transactions) != 2 {
		t.Errorf("expected 2 transactions, got %d", len(statement.Transactions))
	}

	var overview dto.OverviewResponse
	status = doJSON(t, client, http.MethodGet, server.URL+"/api/v1/overview", nil, &overview)
	if status != http.StatusOK {
		t.Fatalf("expected 200 fetching overview, got %d", status)
	}

	if overview.Suppliers.Count != 1 {
		t.Errorf("expected 1 supplier in overview, got %d", overview.Suppliers.Count)
	}
	if !overview.Suppliers.TotalBalance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected supplier total balance 600, got %s", overview.Suppliers.TotalBalance)
	}
}

func TestSupplierCascadeDeleteUnlinksPayments(t *testing.T) {
	server, _ := setupSuite(t)
	client := server.Client()

	var supplier dto.SupplierResponse
	status := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/suppliers", map[string]any{
		"name": "Yiwu Exports",
	}, &supplier)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 creating supplier, got %d", status)
	}

	var payment dto.PaymentResponse
	status = doJSON(t, client, http.MethodPost, server.URL+"/api/v1/payments", map[string]any{
		"supplier_id": supplier.ID,
		"amount":      "250",
	}, &payment)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 creating payment, got %d", status)
	}

	status = doJSON(t, client, http.MethodDelete, server.URL+"/api/v1/suppliers/"+supplier.ID, nil, nil)
	if status != http.StatusOK && status != http.StatusNoContent {
		t.Fatalf("expected success deleting referenced supplier, got %d", status)
	}

	// The payment survives the cascade with its supplier link cleared.
	var orphaned dto.PaymentResponse
	status = doJSON(t, client, http.MethodGet, server.URL+"/api/v1/payments/"+payment.ID, nil, &orphaned)
	if status != http.StatusOK {
		t.Fatalf("expected 200 fetching payment after cascade, got %d", status)
	}
	if orphaned.SupplierID != nil {
		t.Errorf("expected payment supplier link cleared, got %s", *orphaned.SupplierID)
	}

	status = doJSON(t, client, http.MethodGet, server.URL+"/api/v1/suppliers/"+supplier.ID, nil, nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 fetching deleted supplier, got %d", status)
	}
}
