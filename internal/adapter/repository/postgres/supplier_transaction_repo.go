package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
)

// SupplierTransactionRepository implements usecase.SupplierTransactionRepository.
type SupplierTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierTransactionRepository creates a new SupplierTransactionRepository.
func NewSupplierTransactionRepository(pool *pgxpool.Pool) *SupplierTransactionRepository {
	return &SupplierTransactionRepository{pool: pool}
}

// Create inserts a new supplier transaction.
func (r *SupplierTransactionRepository) Create(ctx context.Context, txn *domain.SupplierTransaction) error {
	query := `
		INSERT INTO supplier_transactions (id, supplier_id, customer_id, transaction_date, rmb_amount, usdt_rate, calculated_usdt, type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		txn.ID,
		txn.SupplierID,
		txn.CustomerID,
		timeToPgTimestamptz(txn.TransactionDate),
		decimalToNumeric(txn.RMBAmount),
		decimalToNumeric(txn.USDTRate),
		decimalToNumeric(txn.CalculatedUSDT),
		string(txn.Type),
		txn.Notes,
		timeToPgTimestamptz(txn.CreatedAt),
	)

	return err
}

// Update overwrites a supplier transaction.
func (r *SupplierTransactionRepository) Update(ctx context.Context, txn *domain.SupplierTransaction) error {
	query := `
		UPDATE supplier_transactions
		SET supplier_id = $2, customer_id = $3, transaction_date = $4, rmb_amount = $5,
			usdt_rate = $6, calculated_usdt = $7, type = $8, notes = $9
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		txn.ID,
		txn.SupplierID,
		txn.CustomerID,
		timeToPgTimestamptz(txn.TransactionDate),
		decimalToNumeric(txn.RMBAmount),
		decimalToNumeric(txn.USDTRate),
		decimalToNumeric(txn.CalculatedUSDT),
		string(txn.Type),
		txn.Notes,
	)

	return err
}

// Delete removes a supplier transaction.
func (r *SupplierTransactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM supplier_transactions WHERE id = $1`, id)

	return err
}

const supplierTransactionDetailQuery = `
	SELECT
		st.id, st.supplier_id, st.customer_id, st.transaction_date,
		st.rmb_amount, st.usdt_rate, st.calculated_usdt, st.type, st.notes, st.created_at,
		COALESCE(s.name, ''), COALESCE(c.name, '')
	FROM supplier_transactions st
	LEFT JOIN suppliers s ON s.id = st.supplier_id
	LEFT JOIN customers c ON c.id = st.customer_id
`

func (r *SupplierTransactionRepository) listDetails(ctx context.Context, where string, arg any) ([]*domain.SupplierTransactionDetail, error) {
	query := supplierTransactionDetailQuery + where + ` ORDER BY st.transaction_date DESC`

	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*domain.SupplierTransactionDetail
	for rows.Next() {
		var d domain.SupplierTransactionDetail
		var rmbAmount, usdtRate, calculatedUSDT pgtype.Numeric

		err := rows.Scan(
			&d.ID,
			&d.SupplierID,
			&d.CustomerID,
			&d.TransactionDate,
			&rmbAmount,
			&usdtRate,
			&calculatedUSDT,
			&d.Type,
			&d.Notes,
			&d.CreatedAt,
			&d.SupplierName,
			&d.CustomerName,
		)
		if err != nil {
			return nil, err
		}

		d.RMBAmount = numericToDecimal(rmbAmount)
		d.USDTRate = numericToDecimal(usdtRate)
		d.CalculatedUSDT = numericToDecimal(calculatedUSDT)

		details = append(details, &d)
	}

	return details, rows.Err()
}

// ListDetailsBySupplier lists a supplier's transactions with display names.
func (r *SupplierTransactionRepository) ListDetailsBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierTransactionDetail, error) {
	return r.listDetails(ctx, ` WHERE st.supplier_id = $1`, supplierID)
}

// ListDetailsByCustomer lists a customer's transactions with display names.
func (r *SupplierTransactionRepository) ListDetailsByCustomer(ctx context.Context, customerID string) ([]*domain.SupplierTransactionDetail, error) {
	return r.listDetails(ctx, ` WHERE st.customer_id = $1`, customerID)
}

// ClearCustomer unlinks a customer from its supplier transactions inside a
// cascade transaction. The transactions keep their supplier meaning.
func (r *SupplierTransactionRepository) ClearCustomer(ctx context.Context, tx usecase.Transaction, customerID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `UPDATE supplier_transactions SET customer_id = NULL WHERE customer_id = $1`, customerID)

	return err
}

// DeleteBySupplier removes all of a supplier's transactions inside a
// cascade transaction.
func (r *SupplierTransactionRepository) DeleteBySupplier(ctx context.Context, tx usecase.Transaction, supplierID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM supplier_transactions WHERE supplier_id = $1`, supplierID)

	return err
}
