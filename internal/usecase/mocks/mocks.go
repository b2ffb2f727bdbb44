// Package mocks provides hand-written test doubles for the usecase
// interfaces. Each mock exposes function fields; unset fields return
// zero values so tests only wire the calls they care about.
package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
)

// MockCustomerRepository mocks usecase.CustomerRepository.
type MockCustomerRepository struct {
	CreateFunc           func(ctx context.Context, customer *domain.Customer) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Customer, error)
	UpdateFunc           func(ctx context.Context, customer *domain.Customer) error
	DeleteFunc           func(ctx context.Context, tx usecase.Transaction, id string) error
	ListWithBalancesFunc func(ctx context.Context, limit, offset int) ([]*domain.CustomerWithBalance, error)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, customer)
	}
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockCustomerRepository) ListWithBalances(ctx context.Context, limit, offset int) ([]*domain.CustomerWithBalance, error) {
	if m.ListWithBalancesFunc != nil {
		return m.ListWithBalancesFunc(ctx, limit, offset)
	}
	return nil, nil
}

// MockAgentRepository mocks usecase.AgentRepository.
type MockAgentRepository struct {
	CreateFunc           func(ctx context.Context, agent *domain.Agent) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Agent, error)
	UpdateFunc           func(ctx context.Context, agent *domain.Agent) error
	DeleteFunc           func(ctx context.Context, tx usecase.Transaction, id string) error
	ListWithBalancesFunc func(ctx context.Context, limit, offset int) ([]*domain.AgentWithBalance, error)
}

func (m *MockAgentRepository) Create(ctx context.Context, agent *domain.Agent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, agent)
	}
	return nil
}

func (m *MockAgentRepository) GetByID(ctx context.Context, id string) (*domain.Agent, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrAgentNotFound
}

func (m *MockAgentRepository) Update(ctx context.Context, agent *domain.Agent) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, agent)
	}
	return nil
}

func (m *MockAgentRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockAgentRepository) ListWithBalances(ctx context.Context, limit, offset int) ([]*domain.AgentWithBalance, error) {
	if m.ListWithBalancesFunc != nil {
		return m.ListWithBalancesFunc(ctx, limit, offset)
	}
	return nil, nil
}

// MockSupplierRepository mocks usecase.SupplierRepository.
type MockSupplierRepository struct {
	CreateFunc           func(ctx context.Context, supplier *domain.Supplier) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Supplier, error)
	UpdateFunc           func(ctx context.Context, supplier *domain.Supplier) error
	DeleteFunc           func(ctx context.Context, tx usecase.Transaction, id string) error
	ListWithBalancesFunc func(ctx context.Context, limit, offset int) ([]*domain.SupplierWithBalance, error)
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, supplier)
	}
	return nil
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrSupplierNotFound
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, supplier)
	}
	return nil
}

func (m *MockSupplierRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockSupplierRepository) ListWithBalances(ctx context.Context, limit, offset int) ([]*domain.SupplierWithBalance, error) {
	if m.ListWithBalancesFunc != nil {
		return m.ListWithBalancesFunc(ctx, limit, offset)
	}
	return nil, nil
}

// MockBankAccountRepository mocks usecase.BankAccountRepository.
type MockBankAccountRepository struct {
	CreateFunc                  func(ctx context.Context, account *domain.BankAccount) error
	GetByIDFunc                 func(ctx context.Context, id string) (*domain.BankAccount, error)
	UpdateFunc                  func(ctx context.Context, account *domain.BankAccount) error
	DeleteFunc                  func(ctx context.Context, id string) error
	ListFunc                    func(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error)
	AdjustBalanceFunc           func(ctx context.Context, id string, delta decimal.Decimal) error
	AdjustBalanceTxFunc         func(ctx context.Context, tx usecase.Transaction, id string, delta decimal.Decimal) error
	ReverseCustomerPaymentsFunc func(ctx context.Context, tx usecase.Transaction, customerID string) error
}

func (m *MockBankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *MockBankAccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrBankAccountNotFound
}

func (m *MockBankAccountRepository) Update(ctx context.Context, account *domain.BankAccount) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return nil
}

func (m *MockBankAccountRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBankAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockBankAccountRepository) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	if m.AdjustBalanceFunc != nil {
		return m.AdjustBalanceFunc(ctx, id, delta)
	}
	return nil
}

func (m *MockBankAccountRepository) AdjustBalanceTx(ctx context.Context, tx usecase.Transaction, id string, delta decimal.Decimal) error {
	if m.AdjustBalanceTxFunc != nil {
		return m.AdjustBalanceTxFunc(ctx, tx, id, delta)
	}
	return nil
}

func (m *MockBankAccountRepository) ReverseCustomerPayments(ctx context.Context, tx usecase.Transaction, customerID string) error {
	if m.ReverseCustomerPaymentsFunc != nil {
		return m.ReverseCustomerPaymentsFunc(ctx, tx, customerID)
	}
	return nil
}

// MockBillRepository mocks usecase.BillRepository.
type MockBillRepository struct {
	CreateFunc           func(ctx context.Context, bill *domain.Bill) error
	UpdateFunc           func(ctx context.Context, bill *domain.Bill) error
	DeleteFunc           func(ctx context.Context, id string) error
	ListByCustomerFunc   func(ctx context.Context, customerID string) ([]*domain.Bill, error)
	DeleteByCustomerFunc func(ctx context.Context, tx usecase.Transaction, customerID string) error
}

func (m *MockBillRepository) Create(ctx context.Context, bill *domain.Bill) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bill)
	}
	return nil
}

func (m *MockBillRepository) Update(ctx context.Context, bill *domain.Bill) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, bill)
	}
	return nil
}

func (m *MockBillRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBillRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Bill, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockBillRepository) DeleteByCustomer(ctx context.Context, tx usecase.Transaction, customerID string) error {
	if m.DeleteByCustomerFunc != nil {
		return m.DeleteByCustomerFunc(ctx, tx, customerID)
	}
	return nil
}

// MockPaymentRepository mocks usecase.PaymentRepository.
type MockPaymentRepository struct {
	CreateFunc                func(ctx context.Context, payment *domain.Payment) error
	GetByIDFunc               func(ctx context.Context, id string) (*domain.Payment, error)
	GetByIDForUpdateFunc      func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Payment, error)
	UpdateFunc                func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
	DeleteFunc                func(ctx context.Context, tx usecase.Transaction, id string) error
	ListDetailsByCustomerFunc func(ctx context.Context, customerID string) ([]*domain.PaymentDetail, error)
	ListDetailsByAgentFunc    func(ctx context.Context, agentID string) ([]*domain.PaymentDetail, error)
	DeleteByCustomerFunc      func(ctx context.Context, tx usecase.Transaction, customerID string) error
	ClearAgentFunc            func(ctx context.Context, tx usecase.Transaction, agentID string) error
	ClearSupplierFunc         func(ctx context.Context, tx usecase.Transaction, supplierID string) error
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Payment, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) Update(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockPaymentRepository) ListDetailsByCustomer(ctx context.Context, customerID string) ([]*domain.PaymentDetail, error) {
	if m.ListDetailsByCustomerFunc != nil {
		return m.ListDetailsByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) ListDetailsByAgent(ctx context.Context, agentID string) ([]*domain.PaymentDetail, error) {
	if m.ListDetailsByAgentFunc != nil {
		return m.ListDetailsByAgentFunc(ctx, agentID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) DeleteByCustomer(ctx context.Context, tx usecase.Transaction, customerID string) error {
	if m.DeleteByCustomerFunc != nil {
		return m.DeleteByCustomerFunc(ctx, tx, customerID)
	}
	return nil
}

func (m *MockPaymentRepository) ClearAgent(ctx context.Context, tx usecase.Transaction, agentID string) error {
	if m.ClearAgentFunc != nil {
		return m.ClearAgentFunc(ctx, tx, agentID)
	}
	return nil
}

func (m *MockPaymentRepository) ClearSupplier(ctx context.Context, tx usecase.Transaction, supplierID string) error {
	if m.ClearSupplierFunc != nil {
		return m.ClearSupplierFunc(ctx, tx, supplierID)
	}
	return nil
}

// MockSettlementRepository mocks usecase.SettlementRepository.
type MockSettlementRepository struct {
	CreateFunc        func(ctx context.Context, settlement *domain.AgentSettlement) error
	UpdateFunc        func(ctx context.Context, settlement *domain.AgentSettlement) error
	DeleteFunc        func(ctx context.Context, id string) error
	ListByAgentFunc   func(ctx context.Context, agentID string) ([]*domain.AgentSettlement, error)
	DeleteByAgentFunc func(ctx context.Context, tx usecase.Transaction, agentID string) error
}

func (m *MockSettlementRepository) Create(ctx context.Context, settlement *domain.AgentSettlement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, settlement)
	}
	return nil
}

func (m *MockSettlementRepository) Update(ctx context.Context, settlement *domain.AgentSettlement) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, settlement)
	}
	return nil
}

func (m *MockSettlementRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockSettlementRepository) ListByAgent(ctx context.Context, agentID string) ([]*domain.AgentSettlement, error) {
	if m.ListByAgentFunc != nil {
		return m.ListByAgentFunc(ctx, agentID)
	}
	return nil, nil
}

func (m *MockSettlementRepository) DeleteByAgent(ctx context.Context, tx usecase.Transaction, agentID string) error {
	if m.DeleteByAgentFunc != nil {
		return m.DeleteByAgentFunc(ctx, tx, agentID)
	}
	return nil
}

// MockSupplierTransactionRepository mocks usecase.SupplierTransactionRepository.
type MockSupplierTransactionRepository struct {
	CreateFunc                func(ctx context.Context, txn *domain.SupplierTransaction) error
	UpdateFunc                func(ctx context.Context, txn *domain.SupplierTransaction) error
	DeleteFunc                func(ctx context.Context, id string) error
	ListDetailsBySupplierFunc func(ctx context.Context, supplierID string) ([]*domain.SupplierTransactionDetail, error)
	ListDetailsByCustomerFunc func(ctx context.Context, customerID string) ([]*domain.SupplierTransactionDetail, error)
	ClearCustomerFunc         func(ctx context.Context, tx usecase.Transaction, customerID string) error
	DeleteBySupplierFunc      func(ctx context.Context, tx usecase.Transaction, supplierID string) error
}

func (m *MockSupplierTransactionRepository) Create(ctx context.Context, txn *domain.SupplierTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, txn)
	}
	return nil
}

func (m *MockSupplierTransactionRepository) Update(ctx context.Context, txn *domain.SupplierTransaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, txn)
	}
	return nil
}

func (m *MockSupplierTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockSupplierTransactionRepository) ListDetailsBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierTransactionDetail, error) {
	if m.ListDetailsBySupplierFunc != nil {
		return m.ListDetailsBySupplierFunc(ctx, supplierID)
	}
	return nil, nil
}

func (m *MockSupplierTransactionRepository) ListDetailsByCustomer(ctx context.Context, customerID string) ([]*domain.SupplierTransactionDetail, error) {
	if m.ListDetailsByCustomerFunc != nil {
		return m.ListDetailsByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockSupplierTransactionRepository) ClearCustomer(ctx context.Context, tx usecase.Transaction, customerID string) error {
	if m.ClearCustomerFunc != nil {
		return m.ClearCustomerFunc(ctx, tx, customerID)
	}
	return nil
}

func (m *MockSupplierTransactionRepository) DeleteBySupplier(ctx context.Context, tx usecase.Transaction, supplierID string) error {
	if m.DeleteBySupplierFunc != nil {
		return m.DeleteBySupplierFunc(ctx, tx, supplierID)
	}
	return nil
}

// MockOverviewRepository mocks usecase.OverviewRepository.
type MockOverviewRepository struct {
	GetOverviewFunc func(ctx context.Context) (*domain.Overview, error)
}

func (m *MockOverviewRepository) GetOverview(ctx context.Context) (*domain.Overview, error) {
	if m.GetOverviewFunc != nil {
		return m.GetOverviewFunc(ctx)
	}
	return &domain.Overview{}, nil
}

// MockTransaction mocks usecase.Transaction and records its outcome.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	m.Committed = true
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if !m.Committed {
		m.RolledBack = true
	}
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager mocks usecase.TransactionManager. If BeginFunc is
// unset it hands out Tx, creating one on first use.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
	Tx        *MockTransaction
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	if m.Tx == nil {
		m.Tx = &MockTransaction{}
	}
	return m.Tx, nil
}

// MockIDGenerator mocks usecase.IDGenerator with a fixed ID.
type MockIDGenerator struct {
	ID string
}

func (m *MockIDGenerator) Generate() string {
	if m.ID != "" {
		return m.ID
	}
	return "01HTEST0000000000000000000"
}

// MockRetrier mocks usecase.Retrier by invoking the operation once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache mocks usecase.Cache over an in-memory map.
type MockCache struct {
	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error

	Data map[string][]byte
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	if m.Data != nil {
		return m.Data[key], nil
	}
	return nil, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	if m.Data == nil {
		m.Data = make(map[string][]byte)
	}
	m.Data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	if m.Data != nil {
		delete(m.Data, key)
	}
	return nil
}

// MockIdempotencyStore mocks usecase.IdempotencyStore over an in-memory map.
type MockIdempotencyStore struct {
	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error

	Data map[string][]byte
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	if m.Data == nil {
		m.Data = make(map[string][]byte)
	}
	if existing, ok := m.Data[key]; ok {
		return true, existing, nil
	}
	m.Data[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	if m.Data == nil {
		m.Data = make(map[string][]byte)
	}
	m.Data[key] = response
	return nil
}
