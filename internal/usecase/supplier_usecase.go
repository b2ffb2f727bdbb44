package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/infrastructure/metrics"
)

var defaultRMBToUSDTRate = decimal.NewFromFloat(7.2)

// SupplierUseCase handles supplier business logic.
type SupplierUseCase struct {
	txManager    TransactionManager
	supplierRepo SupplierRepository
	txnRepo      SupplierTransactionRepository
	paymentRepo  PaymentRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewSupplierUseCase creates a new SupplierUseCase. metrics may be nil.
func NewSupplierUseCase(
	txManager TransactionManager,
	supplierRepo SupplierRepository,
	txnRepo SupplierTransactionRepository,
	paymentRepo PaymentRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
) *SupplierUseCase {
	return &SupplierUseCase{
		txManager:    txManager,
		supplierRepo: supplierRepo,
		txnRepo:      txnRepo,
		paymentRepo:  paymentRepo,
		idGen:        idGen,
		metrics:      m,
	}
}

// SupplierInput carries the flat field set of a supplier write.
type SupplierInput struct {
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	RMBToUSDTRate decimal.Decimal
}

func (in *SupplierInput) validate() error {
	if err := domain.ValidateName(in.Name); err != nil {
		return err
	}

	return domain.ValidateRate(in.RMBToUSDTRate)
}

// CreateSupplier creates a new supplier, defaulting an omitted rate.
func (uc *SupplierUseCase) CreateSupplier(ctx context.Context, input SupplierInput) (*domain.Supplier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if input.RMBToUSDTRate.IsZero() {
		input.RMBToUSDTRate = defaultRMBToUSDTRate
	}

	supplier := &domain.Supplier{
		ID:            uc.idGen.Generate(),
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		RMBToUSDTRate: input.RMBToUSDTRate,
		CreatedAt:     time.Now().UTC(),
	}

	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// UpdateSupplier overwrites a supplier's fields. Updating a supplier that
// does not exist is a no-op.
func (uc *SupplierUseCase) UpdateSupplier(ctx context.Context, id string, input SupplierInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	return uc.supplierRepo.Update(ctx, &domain.Supplier{
		ID:            id,
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		RMBToUSDTRate: input.RMBToUSDTRate,
	})
}

// DeleteSupplier removes a supplier and its transactions in one transaction.
// Payments that reference the supplier survive with the link cleared, the
// same way agent deletion leaves its payments behind.
func (uc *SupplierUseCase) DeleteSupplier(ctx context.Context, id string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.paymentRepo.ClearSupplier(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.txnRepo.DeleteBySupplier(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.supplierRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.CascadeDeletes.WithLabelValues("supplier").Inc()
	}

	return nil
}

// ListSuppliers lists suppliers with their derived net balances.
func (uc *SupplierUseCase) ListSuppliers(ctx context.Context, limit, offset int) ([]*domain.SupplierWithBalance, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.supplierRepo.ListWithBalances(ctx, limit, offset)
}

// GetSupplierStatement returns a supplier with its transactions, plus the
// net balance folded from those rows.
func (uc *SupplierUseCase) GetSupplierStatement(ctx context.Context, id string) (*domain.SupplierStatement, error) {
	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	txns, err := uc.txnRepo.ListDetailsBySupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.SupplierStatement{
		Supplier:     supplier,
		Transactions: txns,
		Summary:      domain.NewSupplierSummary(txns),
	}, nil
}
