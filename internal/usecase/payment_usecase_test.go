package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
	"github.com/iho/tradebook/internal/usecase/mocks"
)

func strPtr(s string) *string { return &s }

// balanceBook tracks per-account deltas applied through the bank repo mock,
// so tests can assert the net effect of a lifecycle operation.
type balanceBook map[string]decimal.Decimal

func (b balanceBook) apply(id string, delta decimal.Decimal) {
	b[id] = b[id].Add(delta)
}

func newBankRepoMock(book balanceBook) *mocks.MockBankAccountRepository {
	return &mocks.MockBankAccountRepository{
		AdjustBalanceFunc: func(ctx context.Context, id string, delta decimal.Decimal) error {
			book.apply(id, delta)
			return nil
		},
		AdjustBalanceTxFunc: func(ctx context.Context, tx usecase.Transaction, id string, delta decimal.Decimal) error {
			book.apply(id, delta)
			return nil
		},
	}
}

func TestPaymentUseCase_CreatePayment(t *testing.T) {
	tests := []struct {
		name           string
		input          usecase.PaymentInput
		adjustErr      error
		expectError    bool
		expectAdjusted bool
		expectDelta    decimal.Decimal
	}{
		{
			name: "credits linked bank account",
			input: usecase.PaymentInput{
				CustomerID:    strPtr("cust-1"),
				BankAccountID: strPtr("bank-1"),
				Amount:        decimal.NewFromInt(500),
			},
			expectAdjusted: true,
			expectDelta:    decimal.NewFromInt(500),
		},
		{
			name: "no bank account means no adjustment",
			input: usecase.PaymentInput{
				CustomerID: strPtr("cust-1"),
				Amount:     decimal.NewFromInt(500),
			},
			expectAdjusted: true,
			expectDelta:    decimal.Zero,
		},
		{
			name: "adjustment failure is reported, not fatal",
			input: usecase.PaymentInput{
				CustomerID:    strPtr("cust-1"),
				BankAccountID: strPtr("bank-1"),
				Amount:        decimal.NewFromInt(500),
			},
			adjustErr:      errors.New("connection reset"),
			expectAdjusted: false,
			expectDelta:    decimal.Zero,
		},
		{
			name: "rejects unknown currency",
			input: usecase.PaymentInput{
				CustomerID: strPtr("cust-1"),
				Amount:     decimal.NewFromInt(500),
				Currency:   "EUR",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := balanceBook{}
			bankRepo := newBankRepoMock(book)
			if tt.adjustErr != nil {
				bankRepo.AdjustBalanceFunc = func(ctx context.Context, id string, delta decimal.Decimal) error {
					return tt.adjustErr
				}
			}

			uc := usecase.NewPaymentUseCase(
				&mocks.MockTransactionManager{},
				&mocks.MockPaymentRepository{},
				bankRepo,
				&mocks.MockIDGenerator{},
				&mocks.MockRetrier{},
				zerolog.Nop(),
				nil,
			)

			result, err := uc.CreatePayment(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.BalanceAdjusted != tt.expectAdjusted {
				t.Errorf("BalanceAdjusted = %v, want %v", result.BalanceAdjusted, tt.expectAdjusted)
			}
			if !book["bank-1"].Equal(tt.expectDelta) {
				t.Errorf("bank-1 delta = %s, want %s", book["bank-1"], tt.expectDelta)
			}
		})
	}
}

func TestPaymentUseCase_CreatePayment_Defaults(t *testing.T) {
	var created *domain.Payment
	paymentRepo := &mocks.MockPaymentRepository{
		CreateFunc: func(ctx context.Context, payment *domain.Payment) error {
			created = payment
			return nil
		},
	}

	uc := usecase.NewPaymentUseCase(
		&mocks.MockTransactionManager{},
		paymentRepo,
		&mocks.MockBankAccountRepository{},
		&mocks.MockIDGenerator{},
		&mocks.MockRetrier{},
		zerolog.Nop(),
		nil,
	)

	_, err := uc.CreatePayment(context.Background(), usecase.PaymentInput{
		CustomerID: strPtr("cust-1"),
		Amount:     decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Currency != "AED" {
		t.Errorf("currency = %q, want AED", created.Currency)
	}
	if created.Type != domain.PaymentTypeCustomer {
		t.Errorf("type = %q, want %q", created.Type, domain.PaymentTypeCustomer)
	}
	if created.PaymentDate.IsZero() {
		t.Error("payment date not defaulted")
	}
}

func TestPaymentUseCase_UpdatePayment(t *testing.T) {
	prev := &domain.Payment{
		ID:            "pay-1",
		CustomerID:    strPtr("cust-1"),
		BankAccountID: strPtr("bank-A"),
		Amount:        decimal.NewFromInt(100),
		Currency:      "AED",
		Type:          domain.PaymentTypeCustomer,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name         string
		input        usecase.PaymentInput
		expectDeltas balanceBook
	}{
		{
			name: "same account amount change nets the difference",
			input: usecase.PaymentInput{
				CustomerID:    strPtr("cust-1"),
				BankAccountID: strPtr("bank-A"),
				Amount:        decimal.NewFromInt(160),
			},
			expectDeltas: balanceBook{
				"bank-A": decimal.NewFromInt(60),
			},
		},
		{
			name: "re-pointing moves the full amount between accounts",
			input: usecase.PaymentInput{
				CustomerID:    strPtr("cust-1"),
				BankAccountID: strPtr("bank-B"),
				Amount:        decimal.NewFromInt(60),
			},
			expectDeltas: balanceBook{
				"bank-A": decimal.NewFromInt(-100),
				"bank-B": decimal.NewFromInt(60),
			},
		},
		{
			name: "unlinking only reverses the old effect",
			input: usecase.PaymentInput{
				CustomerID: strPtr("cust-1"),
				Amount:     decimal.NewFromInt(60),
			},
			expectDeltas: balanceBook{
				"bank-A": decimal.NewFromInt(-100),
			},
		},
		{
			name: "unchanged payment nets to zero",
			input: usecase.PaymentInput{
				CustomerID:    strPtr("cust-1"),
				BankAccountID: strPtr("bank-A"),
				Amount:        decimal.NewFromInt(100),
			},
			expectDeltas: balanceBook{
				"bank-A": decimal.Zero,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := balanceBook{}
			txMgr := &mocks.MockTransactionManager{}
			paymentRepo := &mocks.MockPaymentRepository{
				GetByIDForUpdateFunc: func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Payment, error) {
					cp := *prev
					return &cp, nil
				},
			}

			uc := usecase.NewPaymentUseCase(
				txMgr,
				paymentRepo,
				newBankRepoMock(book),
				&mocks.MockIDGenerator{},
				&mocks.MockRetrier{},
				zerolog.Nop(),
				nil,
			)

			result, err := uc.UpdatePayment(context.Background(), "pay-1", tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.BalanceAdjusted {
				t.Error("expected BalanceAdjusted true on committed update")
			}
			if !txMgr.Tx.Committed {
				t.Error("transaction was not committed")
			}
			if result.Payment.CreatedAt != prev.CreatedAt {
				t.Error("update must preserve the original creation time")
			}

			for id, want := range tt.expectDeltas {
				if !book[id].Equal(want) {
					t.Errorf("account %s delta = %s, want %s", id, book[id], want)
				}
			}
		})
	}
}

func TestPaymentUseCase_UpdatePayment_NotFound(t *testing.T) {
	txMgr := &mocks.MockTransactionManager{}
	uc := usecase.NewPaymentUseCase(
		txMgr,
		&mocks.MockPaymentRepository{},
		&mocks.MockBankAccountRepository{},
		&mocks.MockIDGenerator{},
		&mocks.MockRetrier{},
		zerolog.Nop(),
		nil,
	)

	_, err := uc.UpdatePayment(context.Background(), "missing", usecase.PaymentInput{
		Amount: decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Errorf("expected ErrPaymentNotFound, got %v", err)
	}
	if !txMgr.Tx.RolledBack {
		t.Error("transaction was not rolled back")
	}
}

func TestPaymentUseCase_DeletePayment(t *testing.T) {
	t.Run("reverses balance and removes row", func(t *testing.T) {
		book := balanceBook{}
		deleted := false
		txMgr := &mocks.MockTransactionManager{}
		paymentRepo := &mocks.MockPaymentRepository{
			GetByIDForUpdateFunc: func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Payment, error) {
				return &domain.Payment{
					ID:            id,
					BankAccountID: strPtr("bank-A"),
					Amount:        decimal.NewFromInt(250),
				}, nil
			},
			DeleteFunc: func(ctx context.Context, tx usecase.Transaction, id string) error {
				deleted = true
				return nil
			},
		}

		uc := usecase.NewPaymentUseCase(
			txMgr,
			paymentRepo,
			newBankRepoMock(book),
			&mocks.MockIDGenerator{},
			&mocks.MockRetrier{},
			zerolog.Nop(),
			nil,
		)

		if err := uc.DeletePayment(context.Background(), "pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Error("payment row was not deleted")
		}
		if !book["bank-A"].Equal(decimal.NewFromInt(-250)) {
			t.Errorf("bank-A delta = %s, want -250", book["bank-A"])
		}
		if !txMgr.Tx.Committed {
			t.Error("transaction was not committed")
		}
	})

	t.Run("deleting a missing payment is a no-op", func(t *testing.T) {
		adjusted := false
		bankRepo := &mocks.MockBankAccountRepository{
			AdjustBalanceTxFunc: func(ctx context.Context, tx usecase.Transaction, id string, delta decimal.Decimal) error {
				adjusted = true
				return nil
			},
		}

		uc := usecase.NewPaymentUseCase(
			&mocks.MockTransactionManager{},
			&mocks.MockPaymentRepository{},
			bankRepo,
			&mocks.MockIDGenerator{},
			&mocks.MockRetrier{},
			zerolog.Nop(),
			nil,
		)

		if err := uc.DeletePayment(context.Background(), "missing"); err != nil {
			t.Fatalf("expected no-op, got error: %v", err)
		}
		if adjusted {
			t.Error("no balance should move for a missing payment")
		}
	})
}
