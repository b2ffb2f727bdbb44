package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, tx Transaction, id string) error
	ListWithBalances(ctx context.Context, limit, offset int) ([]*domain.CustomerWithBalance, error)
}

// AgentRepository defines data access for agents.
type AgentRepository interface {
	Create(ctx context.Context, agent *domain.Agent) error
	GetByID(ctx context.Context, id string) (*domain.Agent, error)
	Update(ctx context.Context, agent *domain.Agent) error
	Delete(ctx context.Context, tx Transaction, id string) error
	ListWithBalances(ctx context.Context, limit, offset int) ([]*domain.AgentWithBalance, error)
}

// SupplierRepository defines data access for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, tx Transaction, id string) error
	ListWithBalances(ctx context.Context, limit, offset int) ([]*domain.SupplierWithBalance, error)
}

// BankAccountRepository defines data access for bank accounts, including
// the cached-balance adjustments driven by the payment lifecycle.
type BankAccountRepository interface {
	Create(ctx context.Context, account *domain.BankAccount) error
	GetByID(ctx context.Context, id string) (*domain.BankAccount, error)
	Update(ctx context.Context, account *domain.BankAccount) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error)
	// AdjustBalance applies balance += delta outside any transaction.
	// Adjusting a missing account is a no-op, not an error.
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error
	// AdjustBalanceTx applies balance += delta inside tx.
	AdjustBalanceTx(ctx context.Context, tx Transaction, id string, delta decimal.Decimal) error
	// ReverseCustomerPayments subtracts every bank-linked payment of the
	// customer from its account balance, ahead of a cascade delete.
	ReverseCustomerPayments(ctx context.Context, tx Transaction, customerID string) error
}

// BillRepository defines data access for bills.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	Update(ctx context.Context, bill *domain.Bill) error
	Delete(ctx context.Context, id string) error
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Bill, error)
	DeleteByCustomer(ctx context.Context, tx Transaction, customerID string) error
}

// PaymentRepository defines data access for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Payment, error)
	Update(ctx context.Context, tx Transaction, payment *domain.Payment) error
	Delete(ctx context.Context, tx Transaction, id string) error
	ListDetailsByCustomer(ctx context.Context, customerID string) ([]*domain.PaymentDetail, error)
	ListDetailsByAgent(ctx context.Context, agentID string) ([]*domain.PaymentDetail, error)
	DeleteByCustomer(ctx context.Context, tx Transaction, customerID string) error
	ClearAgent(ctx context.Context, tx Transaction, agentID string) error
	ClearSupplier(ctx context.Context, tx Transaction, supplierID string) error
}

// SettlementRepository defines data access for agent settlements.
type SettlementRepository interface {
	Create(ctx context.Context, settlement *domain.AgentSettlement) error
	Update(ctx context.Context, settlement *domain.AgentSettlement) error
	Delete(ctx context.Context, id string) error
	ListByAgent(ctx context.Context, agentID string) ([]*domain.AgentSettlement, error)
	DeleteByAgent(ctx context.Context, tx Transaction, agentID string) error
}

// SupplierTransactionRepository defines data access for supplier transactions.
type SupplierTransactionRepository interface {
	Create(ctx context.Context, txn *domain.SupplierTransaction) error
	Update(ctx context.Context, txn *domain.SupplierTransaction) error
	Delete(ctx context.Context, id string) error
	ListDetailsBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierTransactionDetail, error)
	ListDetailsByCustomer(ctx context.Context, customerID string) ([]*domain.SupplierTransactionDetail, error)
	ClearCustomer(ctx context.Context, tx Transaction, customerID string) error
	DeleteBySupplier(ctx context.Context, tx Transaction, supplierID string) error
}

// OverviewRepository derives the system-wide position.
type OverviewRepository interface {
	GetOverview(ctx context.Context) (*domain.Overview, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient persistence errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
