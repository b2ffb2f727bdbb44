package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
)

// BillRepository implements usecase.BillRepository.
type BillRepository struct {
	pool *pgxpool.Pool
}

// NewBillRepository creates a new BillRepository.
func NewBillRepository(pool *pgxpool.Pool) *BillRepository {
	return &BillRepository{pool: pool}
}

// Create inserts a new bill.
func (r *BillRepository) Create(ctx context.Context, bill *domain.Bill) error {
	query := `
		INSERT INTO bills (id, customer_id, agent_id, bill_date, amount, selling_price, total_bill, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		bill.ID,
		bill.CustomerID,
		bill.AgentID,
		timeToPgTimestamptz(bill.BillDate),
		decimalToNumeric(bill.Amount),
		decimalToNumeric(bill.SellingPrice),
		decimalToNumeric(bill.TotalBill),
		timeToPgTimestamptz(bill.CreatedAt),
	)

	return err
}

// Update overwrites a bill's own fields; party links stay fixed.
func (r *BillRepository) Update(ctx context.Context, bill *domain.Bill) error {
	query := `
		UPDATE bills
		SET bill_date = $2, amount = $3, selling_price = $4, total_bill = $5
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		bill.ID,
		timeToPgTimestamptz(bill.BillDate),
		decimalToNumeric(bill.Amount),
		decimalToNumeric(bill.SellingPrice),
		decimalToNumeric(bill.TotalBill),
	)

	return err
}

// Delete removes a bill.
func (r *BillRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)

	return err
}

// ListByCustomer lists a customer's bills, newest bill date first.
func (r *BillRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Bill, error) {
	query := `
		SELECT id, customer_id, agent_id, bill_date, amount, selling_price, total_bill, created_at
		FROM bills
		WHERE customer_id = $1
		ORDER BY bill_date DESC
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*domain.Bill
	for rows.Next() {
		var bill domain.Bill
		var amount, sellingPrice, totalBill pgtype.Numeric

		err := rows.Scan(
			&bill.ID,
			&bill.CustomerID,
			&bill.AgentID,
			&bill.BillDate,
			&amount,
			&sellingPrice,
			&totalBill,
			&bill.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		bill.Amount = numericToDecimal(amount)
		bill.SellingPrice = numericToDecimal(sellingPrice)
		bill.TotalBill = numericToDecimal(totalBill)

		bills = append(bills, &bill)
	}

	return bills, rows.Err()
}

// DeleteByCustomer removes all of a customer's bills inside a cascade
// transaction.
func (r *BillRepository) DeleteByCustomer(ctx context.Context, tx usecase.Transaction, customerID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM bills WHERE customer_id = $1`, customerID)

	return err
}
