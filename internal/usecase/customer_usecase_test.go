package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
	"github.com/iho/tradebook/internal/usecase/mocks"
)

func TestCustomerUseCase_CreateCustomer(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CustomerInput
		expectError bool
	}{
		{
			name:  "valid customer",
			input: usecase.CustomerInput{Name: "Ahmed Trading LLC", Phone: "+971501234567"},
		},
		{
			name:        "empty name rejected",
			input:       usecase.CustomerInput{Name: "   "},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewCustomerUseCase(
				&mocks.MockTransactionManager{},
				&mocks.MockCustomerRepository{},
				&mocks.MockBillRepository{},
				&mocks.MockPaymentRepository{},
				&mocks.MockSupplierTransactionRepository{},
				&mocks.MockBankAccountRepository{},
				&mocks.MockIDGenerator{},
				nil,
			)

			customer, err := uc.CreateCustomer(context.Background(), tt.input)

			if tt.expectError {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if customer.ID == "" {
				t.Error("expected generated ID")
			}
		})
	}
}

func TestCustomerUseCase_GetCustomerStatement(t *testing.T) {
	customerRepo := &mocks.MockCustomerRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: "Ahmed Trading LLC"}, nil
		},
	}
	billRepo := &mocks.MockBillRepository{
		ListByCustomerFunc: func(ctx context.Context, customerID string) ([]*domain.Bill, error) {
			return []*domain.Bill{
				{TotalBill: decimal.NewFromInt(1000)},
				{TotalBill: decimal.NewFromInt(500)},
			}, nil
		},
	}
	paymentRepo := &mocks.MockPaymentRepository{
		ListDetailsByCustomerFunc: func(ctx context.Context, customerID string) ([]*domain.PaymentDetail, error) {
			return []*domain.PaymentDetail{
				{Payment: domain.Payment{Amount: decimal.NewFromInt(300), Type: domain.PaymentTypeCustomer}},
				{Payment: domain.Payment{Amount: decimal.NewFromInt(50), Type: domain.PaymentTypeOther}},
			}, nil
		},
	}
	txnRepo := &mocks.MockSupplierTransactionRepository{
		ListDetailsByCustomerFunc: func(ctx context.Context, customerID string) ([]*domain.SupplierTransactionDetail, error) {
			return []*domain.SupplierTransactionDetail{
				{SupplierTransaction: domain.SupplierTransaction{CalculatedUSDT: decimal.NewFromInt(200), Type: domain.TransactionSupplierToMe}},
				{SupplierTransaction: domain.SupplierTransaction{CalculatedUSDT: decimal.NewFromInt(999), Type: domain.TransactionMeToSupplier}},
			}, nil
		},
	}

	uc := usecase.NewCustomerUseCase(
		&mocks.MockTransactionManager{},
		customerRepo,
		billRepo,
		paymentRepo,
		txnRepo,
		&mocks.MockBankAccountRepository{},
		&mocks.MockIDGenerator{},
		nil,
	)

	stmt, err := uc.GetCustomerStatement(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1500 billed - 300 customer payments - 200 supplier_to_me = 1000.
	// The "other" payment and the me_to_supplier transaction stay out.
	if !stmt.Summary.TotalBilled.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("TotalBilled = %s, want 1500", stmt.Summary.TotalBilled)
	}
	if !stmt.Summary.TotalPaid.Equal(decimal.NewFromInt(300)) {
		t.Errorf("TotalPaid = %s, want 300", stmt.Summary.TotalPaid)
	}
	if !stmt.Summary.SupplierPaid.Equal(decimal.NewFromInt(200)) {
		t.Errorf("SupplierPaid = %s, want 200", stmt.Summary.SupplierPaid)
	}
	if !stmt.Summary.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Balance = %s, want 1000", stmt.Summary.Balance)
	}
}

func TestCustomerUseCase_GetCustomerStatement_NotFound(t *testing.T) {
	uc := usecase.NewCustomerUseCase(
		&mocks.MockTransactionManager{},
		&mocks.MockCustomerRepository{},
		&mocks.MockBillRepository{},
		&mocks.MockPaymentRepository{},
		&mocks.MockSupplierTransactionRepository{},
		&mocks.MockBankAccountRepository{},
		&mocks.MockIDGenerator{},
		nil,
	)

	_, err := uc.GetCustomerStatement(context.Background(), "missing")
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerUseCase_DeleteCustomer(t *testing.T) {
	var order []string
	txMgr := &mocks.MockTransactionManager{}

	uc := usecase.NewCustomerUseCase(
		txMgr,
		&mocks.MockCustomerRepository{
			DeleteFunc: func(ctx context.Context, tx usecase.Transaction, id string) error {
				order = append(order, "customer")
				return nil
			},
		},
		&mocks.MockBillRepository{
			DeleteByCustomerFunc: func(ctx context.Context, tx usecase.Transaction, customerID string) error {
				order = append(order, "bills")
				return nil
			},
		},
		&mocks.MockPaymentRepository{
			DeleteByCustomerFunc: func(ctx context.Context, tx usecase.Transaction, customerID string) error {
				order = append(order, "payments")
				return nil
			},
		},
		&mocks.MockSupplierTransactionRepository{
			ClearCustomerFunc: func(ctx context.Context, tx usecase.Transaction, customerID string) error {
				order = append(order, "unlink_transactions")
				return nil
			},
		},
		&mocks.MockBankAccountRepository{
			ReverseCustomerPaymentsFunc: func(ctx context.Context, tx usecase.Transaction, customerID string) error {
				order = append(order, "reverse_balances")
				return nil
			},
		},
		&mocks.MockIDGenerator{},
		nil,
	)

	if err := uc.DeleteCustomer(context.Background(), "cust-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"reverse_balances", "bills", "payments", "unlink_transactions", "customer"}
	if len(order) != len(want) {
		t.Fatalf("steps = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("steps = %v, want %v", order, want)
		}
	}
	if !txMgr.Tx.Committed {
		t.Error("cascade was not committed")
	}
}

func TestCustomerUseCase_DeleteCustomer_RollsBackOnFailure(t *testing.T) {
	txMgr := &mocks.MockTransactionManager{}
	deletedCustomer := false

	uc := usecase.NewCustomerUseCase(
		txMgr,
		&mocks.MockCustomerRepository{
			DeleteFunc: func(ctx context.Context, tx usecase.Transaction, id string) error {
				deletedCustomer = true
				return nil
			},
		},
		&mocks.MockBillRepository{},
		&mocks.MockPaymentRepository{
			DeleteByCustomerFunc: func(ctx context.Context, tx usecase.Transaction, customerID string) error {
				return errors.New("deadlock detected")
			},
		},
		&mocks.MockSupplierTransactionRepository{},
		&mocks.MockBankAccountRepository{},
		&mocks.MockIDGenerator{},
		nil,
	)

	if err := uc.DeleteCustomer(context.Background(), "cust-1"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if deletedCustomer {
		t.Error("customer delete must not run after an earlier step fails")
	}
	if !txMgr.Tx.RolledBack {
		t.Error("transaction was not rolled back")
	}
}
