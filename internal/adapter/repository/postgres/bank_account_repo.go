package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
)

// BankAccountRepository implements usecase.BankAccountRepository. The
// balance column is a cached aggregate maintained by relative adjustments;
// it is never recomputed on read.
type BankAccountRepository struct {
	pool *pgxpool.Pool
}

// NewBankAccountRepository creates a new BankAccountRepository.
func NewBankAccountRepository(pool *pgxpool.Pool) *BankAccountRepository {
	return &BankAccountRepository{pool: pool}
}

// Create inserts a new bank account.
func (r *BankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (id, account_name, bank_name, account_number, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.AccountName,
		account.BankName,
		account.AccountNumber,
		account.Currency,
		decimalToNumeric(account.Balance),
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// GetByID retrieves a bank account by ID.
func (r *BankAccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	query := `
		SELECT id, account_name, bank_name, account_number, currency, balance, created_at, updated_at
		FROM bank_accounts
		WHERE id = $1
	`

	var account domain.BankAccount
	var balance pgtype.Numeric

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.AccountName,
		&account.BankName,
		&account.AccountNumber,
		&account.Currency,
		&balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBankAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	account.Balance = numericToDecimal(balance)

	return &account, nil
}

// Update overwrites a bank account, balance included. This is the
// administrative override path.
func (r *BankAccountRepository) Update(ctx context.Context, account *domain.BankAccount) error {
	query := `
		UPDATE bank_accounts
		SET account_name = $2, bank_name = $3, account_number = $4, currency = $5, balance = $6, updated_at = $7
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.AccountName,
		account.BankName,
		account.AccountNumber,
		account.Currency,
		decimalToNumeric(account.Balance),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// Delete removes a bank account. Payments keep their bank_account_id
// reference cleared by the schema's ON DELETE SET NULL.
func (r *BankAccountRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)

	return err
}

// List lists bank accounts with pagination.
func (r *BankAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error) {
	query := `
		SELECT id, account_name, bank_name, account_number, currency, balance, created_at, updated_at
		FROM bank_accounts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.BankAccount
	for rows.Next() {
		var account domain.BankAccount
		var balance pgtype.Numeric

		err := rows.Scan(
			&account.ID,
			&account.AccountName,
			&account.BankName,
			&account.AccountNumber,
			&account.Currency,
			&balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		account.Balance = numericToDecimal(balance)

		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}

const adjustBalanceQuery = `
	UPDATE bank_accounts
	SET balance = balance + $2, updated_at = NOW()
	WHERE id = $1
`

// AdjustBalance applies balance += delta as a single relative update.
// Adjusting a missing account matches zero rows and is not an error.
func (r *BankAccountRepository) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	_, err := r.pool.Exec(ctx, adjustBalanceQuery, id, decimalToNumeric(delta))

	return err
}

// AdjustBalanceTx applies balance += delta inside tx.
func (r *BankAccountRepository) AdjustBalanceTx(ctx context.Context, tx usecase.Transaction, id string, delta decimal.Decimal) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, adjustBalanceQuery, id, decimalToNumeric(delta))

	return err
}

// ReverseCustomerPayments subtracts every bank-linked payment of the
// customer from its account balance, ahead of deleting those payments.
func (r *BankAccountRepository) ReverseCustomerPayments(ctx context.Context, tx usecase.Transaction, customerID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE bank_accounts ba
		SET balance = ba.balance - p.total, updated_at = NOW()
		FROM (
			SELECT bank_account_id, SUM(amount) AS total
			FROM payments
			WHERE customer_id = $1 AND bank_account_id IS NOT NULL
			GROUP BY bank_account_id
		) p
		WHERE ba.id = p.bank_account_id
	`

	_, err := pgxTx.Exec(ctx, query, customerID)

	return err
}
