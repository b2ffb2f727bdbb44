package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/infrastructure/metrics"
)

// PaymentUseCase orchestrates the payment lifecycle and keeps the cached
// bank account balances consistent with the payment records.
//
// Invariant: for every currently-existing payment with a bank account set,
// exactly one net adjustment of its amount has been applied to that
// account's balance. Updates and deletes run as a single database
// transaction; the create-side adjustment is best effort (the payment row
// is authoritative, drift is observable via metrics and recoverable by
// recomputing the sum of payments).
type PaymentUseCase struct {
	txManager   TransactionManager
	paymentRepo PaymentRepository
	bankRepo    BankAccountRepository
	idGen       IDGenerator
	retrier     Retrier
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewPaymentUseCase creates a new PaymentUseCase. metrics may be nil.
func NewPaymentUseCase(
	txManager TransactionManager,
	paymentRepo PaymentRepository,
	bankRepo BankAccountRepository,
	idGen IDGenerator,
	retrier Retrier,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager:   txManager,
		paymentRepo: paymentRepo,
		bankRepo:    bankRepo,
		idGen:       idGen,
		retrier:     retrier,
		logger:      logger,
		metrics:     m,
	}
}

// PaymentInput carries the flat field set of a payment write.
type PaymentInput struct {
	CustomerID    *string
	AgentID       *string
	SupplierID    *string
	BankAccountID *string
	PaymentDate   time.Time
	Amount        decimal.Decimal
	Currency      string
	Type          domain.PaymentType
	AgentRate     *decimal.Decimal
	Notes         string
}

// PaymentResult distinguishes the authoritative payment write from the
// secondary balance adjustment, so callers can reconcile drift instead of
// silently losing it.
type PaymentResult struct {
	Payment *domain.Payment
	// BalanceAdjusted is false only when a bank account was referenced
	// and its balance adjustment failed after the payment row was
	// already persisted.
	BalanceAdjusted bool
}

func (in *PaymentInput) applyDefaults() {
	if in.Currency == "" {
		in.Currency = "AED"
	}
	if in.Type == "" {
		in.Type = domain.PaymentTypeCustomer
	}
	if in.PaymentDate.IsZero() {
		in.PaymentDate = time.Now().UTC()
	}
}

func (in *PaymentInput) validate() error {
	in.Currency = domain.NormalizeCurrency(in.Currency)
	if err := domain.ValidateCurrency(in.Currency); err != nil {
		return err
	}

	return domain.ValidatePaymentType(in.Type)
}

// CreatePayment persists a payment and, when a bank account is referenced,
// credits its balance. The balance step is best effort: a failure is logged
// and reported in the result, never surfaced as a write failure.
func (uc *PaymentUseCase) CreatePayment(ctx context.Context, input PaymentInput) (*PaymentResult, error) {
	input.applyDefaults()
	if err := input.validate(); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:            uc.idGen.Generate(),
		CustomerID:    input.CustomerID,
		AgentID:       input.AgentID,
		SupplierID:    input.SupplierID,
		BankAccountID: input.BankAccountID,
		PaymentDate:   input.PaymentDate,
		Amount:        input.Amount,
		Currency:      input.Currency,
		Type:          input.Type,
		AgentRate:     input.AgentRate,
		Notes:         input.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	result := &PaymentResult{Payment: payment, BalanceAdjusted: true}

	if payment.BankAccountID != nil {
		err := uc.retrier.Retry(ctx, func() error {
			return uc.bankRepo.AdjustBalance(ctx, *payment.BankAccountID, payment.Amount)
		})
		if err != nil {
			// The payment row is authoritative; the cached balance
			// drifts until reconciled from the payment sum.
			result.BalanceAdjusted = false
			uc.logger.Error().
				Err(err).
				Str("payment_id", payment.ID).
				Str("bank_account_id", *payment.BankAccountID).
				Str("amount", payment.Amount.String()).
				Msg("bank balance adjustment failed after payment create")

			if uc.metrics != nil {
				uc.metrics.BalanceAdjustmentFailures.Inc()
			}
		} else if uc.metrics != nil {
			uc.metrics.BalanceAdjustments.Inc()
		}
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsCreated.Inc()
	}

	return result, nil
}

// UpdatePayment overwrites a payment and re-points its balance effect.
// The prior state is re-read under a row lock rather than trusted from the
// caller, and the whole protocol commits atomically. The reversal and the
// new credit stay two separate adjustments even when the account is
// unchanged, so the net effect is balance += (new - old).
func (uc *PaymentUseCase) UpdatePayment(ctx context.Context, id string, input PaymentInput) (*PaymentResult, error) {
	input.applyDefaults()
	if err := input.validate(); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	prev, err := uc.paymentRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	// Step 1: reverse the previous effect.
	if prev.BankAccountID != nil {
		if err := uc.bankRepo.AdjustBalanceTx(ctx, tx, *prev.BankAccountID, prev.Amount.Neg()); err != nil {
			return nil, err
		}
	}

	// Step 2: overwrite the payment row.
	payment := &domain.Payment{
		ID:            id,
		CustomerID:    input.CustomerID,
		AgentID:       input.AgentID,
		SupplierID:    input.SupplierID,
		BankAccountID: input.BankAccountID,
		PaymentDate:   input.PaymentDate,
		Amount:        input.Amount,
		Currency:      input.Currency,
		Type:          input.Type,
		AgentRate:     input.AgentRate,
		Notes:         input.Notes,
		CreatedAt:     prev.CreatedAt,
	}
	if err := uc.paymentRepo.Update(ctx, tx, payment); err != nil {
		return nil, err
	}

	// Step 3: apply the new effect.
	if payment.BankAccountID != nil {
		if err := uc.bankRepo.AdjustBalanceTx(ctx, tx, *payment.BankAccountID, payment.Amount); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsUpdated.Inc()
	}

	return &PaymentResult{Payment: payment, BalanceAdjusted: true}, nil
}

// DeletePayment reverses a payment's balance effect and removes the row.
// Deleting a payment that does not exist is a graceful no-op: there is
// nothing to reverse and nothing to remove.
func (uc *PaymentUseCase) DeletePayment(ctx context.Context, id string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	prev, err := uc.paymentRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return nil
		}

		return err
	}

	if prev.BankAccountID != nil {
		if err := uc.bankRepo.AdjustBalanceTx(ctx, tx, *prev.BankAccountID, prev.Amount.Neg()); err != nil {
			return err
		}
	}

	if err := uc.paymentRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsDeleted.Inc()
	}

	return nil
}

// GetPayment retrieves a payment by ID.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}
