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

// SupplierRepository implements usecase.SupplierRepository.
type SupplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository creates a new SupplierRepository.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{pool: pool}
}

// Create inserts a new supplier.
func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_person, phone, email, rmb_to_usdt_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.ContactPerson,
		supplier.Phone,
		supplier.Email,
		decimalToNumeric(supplier.RMBToUSDTRate),
		timeToPgTimestamptz(supplier.CreatedAt),
	)

	return err
}

// GetByID retrieves a supplier by ID.
func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	query := `
		SELECT id, name, contact_person, phone, email, rmb_to_usdt_rate, created_at
		FROM suppliers
		WHERE id = $1
	`

	var supplier domain.Supplier
	var rate pgtype.Numeric

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.ContactPerson,
		&supplier.Phone,
		&supplier.Email,
		&rate,
		&supplier.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}

	supplier.RMBToUSDTRate = numericToDecimal(rate)

	return &supplier, nil
}

// Update overwrites a supplier's fields.
func (r *SupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_person = $3, phone = $4, email = $5, rmb_to_usdt_rate = $6
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.ContactPerson,
		supplier.Phone,
		supplier.Email,
		decimalToNumeric(supplier.RMBToUSDTRate),
	)

	return err
}

// Delete removes a supplier inside a cascade transaction.
func (r *SupplierRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)

	return err
}

// ListWithBalances lists suppliers with net balances derived in SQL:
// calculated USDT received minus calculated USDT paid.
func (r *SupplierRepository) ListWithBalances(ctx context.Context, limit, offset int) ([]*domain.SupplierWithBalance, error) {
	query := `
		SELECT
			s.id, s.name, s.contact_person, s.phone, s.email, s.rmb_to_usdt_rate, s.created_at,
			COALESCE((SELECT SUM(st.calculated_usdt) FROM supplier_transactions st WHERE st.supplier_id = s.id AND st.type = 'supplier_to_me'), 0) AS total_usdt_received,
			COALESCE((SELECT SUM(st.calculated_usdt) FROM supplier_transactions st WHERE st.supplier_id = s.id AND st.type = 'me_to_supplier'), 0) AS total_usdt_paid
		FROM suppliers s
		ORDER BY s.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*domain.SupplierWithBalance
	for rows.Next() {
		var s domain.SupplierWithBalance
		var rate, received, paid pgtype.Numeric

		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.ContactPerson,
			&s.Phone,
			&s.Email,
			&rate,
			&s.CreatedAt,
			&received,
			&paid,
		)
		if err != nil {
			return nil, err
		}

		s.RMBToUSDTRate = numericToDecimal(rate)
		s.TotalUSDTReceived = numericToDecimal(received)
		s.TotalUSDTPaid = numericToDecimal(paid)
		s.NetBalance = s.TotalUSDTReceived.Sub(s.TotalUSDTPaid)

		suppliers = append(suppliers, &s)
	}

	return suppliers, rows.Err()
}
