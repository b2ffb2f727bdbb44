package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
)

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		timeToPgTimestamptz(customer.CreatedAt),
	)

	return err
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `
		SELECT id, name, email, phone, address, created_at
		FROM customers
		WHERE id = $1
	`

	var customer domain.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

// Update overwrites a customer's fields.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, address = $5
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
	)

	return err
}

// Delete removes a customer inside a cascade transaction.
func (r *CustomerRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)

	return err
}

// ListWithBalances lists customers with balances derived in SQL: total
// billed minus customer payments minus supplier_to_me transactions linked
// to the customer. Customers with no rows aggregate to zero.
func (r *CustomerRepository) ListWithBalances(ctx context.Context, limit, offset int) ([]*domain.CustomerWithBalance, error) {
	query := `
		SELECT
			c.id, c.name, c.email, c.phone, c.address, c.created_at,
			COALESCE((SELECT SUM(b.total_bill) FROM bills b WHERE b.customer_id = c.id), 0) AS total_billed,
			COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.customer_id = c.id AND p.type = 'customer_payment'), 0) AS total_paid,
			COALESCE((SELECT SUM(st.calculated_usdt) FROM supplier_transactions st WHERE st.customer_id = c.id AND st.type = 'supplier_to_me'), 0) AS supplier_paid
		FROM customers c
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.CustomerWithBalance
	for rows.Next() {
		var c domain.CustomerWithBalance
		var totalBilled, totalPaid, supplierPaid pgtype.Numeric

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Phone,
			&c.Address,
			&c.CreatedAt,
			&totalBilled,
			&totalPaid,
			&supplierPaid,
		)
		if err != nil {
			return nil, err
		}

		c.TotalBilled = numericToDecimal(totalBilled)
		c.TotalPaid = numericToDecimal(totalPaid)
		c.SupplierPaid = numericToDecimal(supplierPaid)
		c.Balance = c.TotalBilled.Sub(c.TotalPaid).Sub(c.SupplierPaid)

		customers = append(customers, &c)
	}

	return customers, rows.Err()
}
