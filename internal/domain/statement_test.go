package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewCustomerSummary(t *testing.T) {
	bills := []*Bill{
		{TotalBill: dec("1000")},
		{TotalBill: dec("250.50")},
	}
	payments := []*PaymentDetail{
		{Payment: Payment{Amount: dec("300"), Type: PaymentTypeCustomer}},
		{Payment: Payment{Amount: dec("100"), Type: PaymentTypeOther}}, // excluded
	}
	txns := []*SupplierTransactionDetail{
		{SupplierTransaction: SupplierTransaction{CalculatedUSDT: dec("200"), Type: TransactionSupplierToMe}},
		{SupplierTransaction: SupplierTransaction{CalculatedUSDT: dec("999"), Type: TransactionMeToSupplier}}, // excluded
	}

	s := NewCustomerSummary(bills, payments, txns)

	if !s.TotalBilled.Equal(dec("1250.50")) {
		t.Errorf("TotalBilled = %s, want 1250.50", s.TotalBilled)
	}
	if !s.TotalPaid.Equal(dec("300")) {
		t.Errorf("TotalPaid = %s, want 300", s.TotalPaid)
	}
	if !s.SupplierPaid.Equal(dec("200")) {
		t.Errorf("SupplierPaid = %s, want 200", s.SupplierPaid)
	}
	if !s.Balance.Equal(dec("750.50")) {
		t.Errorf("Balance = %s, want 750.50", s.Balance)
	}
}

func TestNewCustomerSummary_EmptySet(t *testing.T) {
	s := NewCustomerSummary(nil, nil, nil)
	if !s.Balance.IsZero() {
		t.Errorf("empty event set should yield zero balance, got %s", s.Balance)
	}
}

func TestNewAgentSummary(t *testing.T) {
	payments := []*PaymentDetail{
		{Payment: Payment{Amount: dec("500")}},
		{Payment: Payment{Amount: dec("250")}},
	}
	settlements := []*AgentSettlement{
		{Amount: dec("400"), Type: SettlementTypeReceived},
		{Amount: dec("10000"), Type: SettlementTypePaid}, // paid leg is ignored
	}

	s := NewAgentSummary(payments, settlements)

	if !s.TotalReceived.Equal(dec("750")) {
		t.Errorf("TotalReceived = %s, want 750", s.TotalReceived)
	}
	if !s.TotalSettled.Equal(dec("400")) {
		t.Errorf("TotalSettled = %s, want 400", s.TotalSettled)
	}
	if !s.PendingBalance.Equal(dec("350")) {
		t.Errorf("PendingBalance = %s, want 350", s.PendingBalance)
	}
}

func TestNewAgentSummary_NoActivity(t *testing.T) {
	s := NewAgentSummary(nil, nil)
	if !s.PendingBalance.IsZero() {
		t.Errorf("agent with no activity should have zero pending balance, got %s", s.PendingBalance)
	}
}

func TestNewSupplierSummary(t *testing.T) {
	txns := []*SupplierTransactionDetail{
		{SupplierTransaction: SupplierTransaction{
			Type: TransactionSupplierToMe, RMBAmount: dec("7200"), CalculatedUSDT: dec("1000"),
		}},
		{SupplierTransaction: SupplierTransaction{
			Type: TransactionMeToSupplier, RMBAmount: dec("3600"), CalculatedUSDT: dec("500"),
		}},
	}

	s := NewSupplierSummary(txns)

	if !s.TotalRMBReceived.Equal(dec("7200")) {
		t.Errorf("TotalRMBReceived = %s, want 7200", s.TotalRMBReceived)
	}
	if !s.TotalUSDTPaid.Equal(dec("500")) {
		t.Errorf("TotalUSDTPaid = %s, want 500", s.TotalUSDTPaid)
	}
	if !s.NetBalance.Equal(dec("500")) {
		t.Errorf("NetBalance = %s, want 500 (1000 - 500 in USDT)", s.NetBalance)
	}
}
