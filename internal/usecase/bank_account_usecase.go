package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
)

// BankAccountUseCase handles bank account business logic. The balance
// field set here is the out-of-band administrative override; routine
// balance movement happens only through the payment lifecycle.
type BankAccountUseCase struct {
	bankRepo BankAccountRepository
	idGen    IDGenerator
}

// NewBankAccountUseCase creates a new BankAccountUseCase.
func NewBankAccountUseCase(bankRepo BankAccountRepository, idGen IDGenerator) *BankAccountUseCase {
	return &BankAccountUseCase{
		bankRepo: bankRepo,
		idGen:    idGen,
	}
}

// BankAccountInput carries the flat field set of a bank account write.
type BankAccountInput struct {
	AccountName   string
	BankName      string
	AccountNumber string
	Currency      string
	Balance       decimal.Decimal
}

func (in *BankAccountInput) validate() error {
	if err := domain.ValidateName(in.AccountName); err != nil {
		return err
	}

	in.Currency = domain.NormalizeCurrency(in.Currency)

	return domain.ValidateCurrency(in.Currency)
}

// CreateBankAccount creates a new bank account.
func (uc *BankAccountUseCase) CreateBankAccount(ctx context.Context, input BankAccountInput) (*domain.BankAccount, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.BankAccount{
		ID:            uc.idGen.Generate(),
		AccountName:   input.AccountName,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		Currency:      input.Currency,
		Balance:       input.Balance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.bankRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetBankAccount retrieves a bank account by ID.
func (uc *BankAccountUseCase) GetBankAccount(ctx context.Context, id string) (*domain.BankAccount, error) {
	return uc.bankRepo.GetByID(ctx, id)
}

// UpdateBankAccount overwrites a bank account, balance included. Updating
// an account that does not exist is a no-op.
func (uc *BankAccountUseCase) UpdateBankAccount(ctx context.Context, id string, input BankAccountInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	return uc.bankRepo.Update(ctx, &domain.BankAccount{
		ID:            id,
		AccountName:   input.AccountName,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		Currency:      input.Currency,
		Balance:       input.Balance,
		UpdatedAt:     time.Now().UTC(),
	})
}

// DeleteBankAccount removes a bank account.
func (uc *BankAccountUseCase) DeleteBankAccount(ctx context.Context, id string) error {
	return uc.bankRepo.Delete(ctx, id)
}

// ListBankAccounts lists bank accounts.
func (uc *BankAccountUseCase) ListBankAccounts(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.bankRepo.List(ctx, limit, offset)
}
