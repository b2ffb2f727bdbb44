package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
)

// SupplierTransactionUseCase records supplier transactions. CalculatedUSDT
// is stored exactly as supplied; recomputing it from rmb_amount and
// usdt_rate is outside the engine's trust boundary.
type SupplierTransactionUseCase struct {
	txnRepo SupplierTransactionRepository
	idGen   IDGenerator
}

// NewSupplierTransactionUseCase creates a new SupplierTransactionUseCase.
func NewSupplierTransactionUseCase(txnRepo SupplierTransactionRepository, idGen IDGenerator) *SupplierTransactionUseCase {
	return &SupplierTransactionUseCase{
		txnRepo: txnRepo,
		idGen:   idGen,
	}
}

// SupplierTransactionInput carries the flat field set of a transaction write.
type SupplierTransactionInput struct {
	SupplierID      *string
	CustomerID      *string
	TransactionDate time.Time
	RMBAmount       decimal.Decimal
	USDTRate        decimal.Decimal
	CalculatedUSDT  decimal.Decimal
	Type            domain.TransactionType
	Notes           string
}

// CreateTransaction records a new supplier transaction.
func (uc *SupplierTransactionUseCase) CreateTransaction(ctx context.Context, input SupplierTransactionInput) (*domain.SupplierTransaction, error) {
	if err := domain.ValidateTransactionType(input.Type); err != nil {
		return nil, err
	}

	if input.TransactionDate.IsZero() {
		input.TransactionDate = time.Now().UTC()
	}

	txn := &domain.SupplierTransaction{
		ID:              uc.idGen.Generate(),
		SupplierID:      input.SupplierID,
		CustomerID:      input.CustomerID,
		TransactionDate: input.TransactionDate,
		RMBAmount:       input.RMBAmount,
		USDTRate:        input.USDTRate,
		CalculatedUSDT:  input.CalculatedUSDT,
		Type:            input.Type,
		Notes:           input.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	if err := uc.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// UpdateTransaction overwrites a supplier transaction. Updating a
// transaction that does not exist is a no-op.
func (uc *SupplierTransactionUseCase) UpdateTransaction(ctx context.Context, id string, input SupplierTransactionInput) error {
	if err := domain.ValidateTransactionType(input.Type); err != nil {
		return err
	}

	return uc.txnRepo.Update(ctx, &domain.SupplierTransaction{
		ID:              id,
		SupplierID:      input.SupplierID,
		CustomerID:      input.CustomerID,
		TransactionDate: input.TransactionDate,
		RMBAmount:       input.RMBAmount,
		USDTRate:        input.USDTRate,
		CalculatedUSDT:  input.CalculatedUSDT,
		Type:            input.Type,
		Notes:           input.Notes,
	})
}

// DeleteTransaction removes a supplier transaction.
func (uc *SupplierTransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	return uc.txnRepo.Delete(ctx, id)
}
