package usecase

import (
	"context"
	"time"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/infrastructure/metrics"
)

// CustomerUseCase handles customer business logic, including the derived
// balance statement and the referential cleanup on delete.
type CustomerUseCase struct {
	txManager    TransactionManager
	customerRepo CustomerRepository
	billRepo     BillRepository
	paymentRepo  PaymentRepository
	txnRepo      SupplierTransactionRepository
	bankRepo     BankAccountRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewCustomerUseCase creates a new CustomerUseCase. metrics may be nil.
func NewCustomerUseCase(
	txManager TransactionManager,
	customerRepo CustomerRepository,
	billRepo BillRepository,
	paymentRepo PaymentRepository,
	txnRepo SupplierTransactionRepository,
	bankRepo BankAccountRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
) *CustomerUseCase {
	return &CustomerUseCase{
		txManager:    txManager,
		customerRepo: customerRepo,
		billRepo:     billRepo,
		paymentRepo:  paymentRepo,
		txnRepo:      txnRepo,
		bankRepo:     bankRepo,
		idGen:        idGen,
		metrics:      m,
	}
}

// CustomerInput carries the flat field set of a customer write.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CreateCustomer creates a new customer.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CustomerInput) (*domain.Customer, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// UpdateCustomer overwrites a customer's fields. Updating a customer that
// does not exist is a no-op.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, input CustomerInput) error {
	if err := domain.ValidateName(input.Name); err != nil {
		return err
	}

	return uc.customerRepo.Update(ctx, &domain.Customer{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
}

// DeleteCustomer removes a customer and its dependent records in one
// transaction: bank balances of its payments are reversed, its bills and
// payments are deleted, and its supplier transactions are unlinked rather
// than removed, since they retain meaning relative to the supplier.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.bankRepo.ReverseCustomerPayments(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.billRepo.DeleteByCustomer(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.paymentRepo.DeleteByCustomer(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.txnRepo.ClearCustomer(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.customerRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.CascadeDeletes.WithLabelValues("customer").Inc()
	}

	return nil
}

// ListCustomers lists customers with their derived balances.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, limit, offset int) ([]*domain.CustomerWithBalance, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.customerRepo.ListWithBalances(ctx, limit, offset)
}

// GetCustomerStatement returns a customer with its bills, payments, and
// supplier transactions, plus the balance folded from those rows.
func (uc *CustomerUseCase) GetCustomerStatement(ctx context.Context, id string) (*domain.CustomerStatement, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bills, err := uc.billRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.ListDetailsByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	txns, err := uc.txnRepo.ListDetailsByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.CustomerStatement{
		Customer:             customer,
		Bills:                bills,
		Payments:             payments,
		SupplierTransactions: txns,
		Summary:              domain.NewCustomerSummary(bills, payments, txns),
	}, nil
}
