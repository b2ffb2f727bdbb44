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

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create inserts a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, customer_id, agent_id, supplier_id, bank_account_id, payment_date, amount, currency, type, agent_rate, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		payment.ID,
		payment.CustomerID,
		payment.AgentID,
		payment.SupplierID,
		payment.BankAccountID,
		timeToPgTimestamptz(payment.PaymentDate),
		decimalToNumeric(payment.Amount),
		payment.Currency,
		string(payment.Type),
		decimalPtrToNumeric(payment.AgentRate),
		payment.Notes,
		timeToPgTimestamptz(payment.CreatedAt),
	)

	return err
}

const paymentColumns = `id, customer_id, agent_id, supplier_id, bank_account_id, payment_date, amount, currency, type, agent_rate, notes, created_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	var amount, agentRate pgtype.Numeric

	err := row.Scan(
		&payment.ID,
		&payment.CustomerID,
		&payment.AgentID,
		&payment.SupplierID,
		&payment.BankAccountID,
		&payment.PaymentDate,
		&amount,
		&payment.Currency,
		&payment.Type,
		&agentRate,
		&payment.Notes,
		&payment.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}

	payment.Amount = numericToDecimal(amount)
	payment.AgentRate = numericToDecimalPtr(agentRate)

	return &payment, nil
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	return scanPayment(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a payment by ID with a FOR UPDATE lock, so the
// lifecycle protocol reverses the row state it is about to overwrite.
func (r *PaymentRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Payment, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`

	return scanPayment(pgxTx.QueryRow(ctx, query, id))
}

// Update overwrites a payment row inside the lifecycle transaction.
func (r *PaymentRepository) Update(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE payments
		SET customer_id = $2, agent_id = $3, supplier_id = $4, bank_account_id = $5,
			payment_date = $6, amount = $7, currency = $8, type = $9, agent_rate = $10, notes = $11
		WHERE id = $1
	`

	_, err := pgxTx.Exec(ctx, query,
		payment.ID,
		payment.CustomerID,
		payment.AgentID,
		payment.SupplierID,
		payment.BankAccountID,
		timeToPgTimestamptz(payment.PaymentDate),
		decimalToNumeric(payment.Amount),
		payment.Currency,
		string(payment.Type),
		decimalPtrToNumeric(payment.AgentRate),
		payment.Notes,
	)

	return err
}

// Delete removes a payment row inside the lifecycle transaction.
func (r *PaymentRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)

	return err
}

const paymentDetailQuery = `
	SELECT
		p.id, p.customer_id, p.agent_id, p.supplier_id, p.bank_account_id,
		p.payment_date, p.amount, p.currency, p.type, p.agent_rate, p.notes, p.created_at,
		COALESCE(c.name, ''), COALESCE(a.name, ''), COALESCE(a.type, ''),
		COALESCE(ba.account_name, ''), COALESCE(ba.bank_name, ''), COALESCE(ba.currency, '')
	FROM payments p
	LEFT JOIN customers c ON c.id = p.customer_id
	LEFT JOIN agents a ON a.id = p.agent_id
	LEFT JOIN bank_accounts ba ON ba.id = p.bank_account_id
`

func (r *PaymentRepository) listDetails(ctx context.Context, where string, arg any) ([]*domain.PaymentDetail, error) {
	query := paymentDetailQuery + where + ` ORDER BY p.payment_date DESC`

	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*domain.PaymentDetail
	for rows.Next() {
		var d domain.PaymentDetail
		var amount, agentRate pgtype.Numeric

		err := rows.Scan(
			&d.ID,
			&d.CustomerID,
			&d.AgentID,
			&d.SupplierID,
			&d.BankAccountID,
			&d.PaymentDate,
			&amount,
			&d.Currency,
			&d.Type,
			&agentRate,
			&d.Notes,
			&d.CreatedAt,
			&d.CustomerName,
			&d.AgentName,
			&d.AgentType,
			&d.BankAccountName,
			&d.BankName,
			&d.BankCurrency,
		)
		if err != nil {
			return nil, err
		}

		d.Amount = numericToDecimal(amount)
		d.AgentRate = numericToDecimalPtr(agentRate)

		details = append(details, &d)
	}

	return details, rows.Err()
}

// ListDetailsByCustomer lists a customer's payments with display names.
func (r *PaymentRepository) ListDetailsByCustomer(ctx context.Context, customerID string) ([]*domain.PaymentDetail, error) {
	return r.listDetails(ctx, ` WHERE p.customer_id = $1`, customerID)
}

// ListDetailsByAgent lists an agent's payments with display names.
func (r *PaymentRepository) ListDetailsByAgent(ctx context.Context, agentID string) ([]*domain.PaymentDetail, error) {
	return r.listDetails(ctx, ` WHERE p.agent_id = $1`, agentID)
}

// DeleteByCustomer removes all of a customer's payments inside a cascade
// transaction. Balance reversal happens before this step.
func (r *PaymentRepository) DeleteByCustomer(ctx context.Context, tx usecase.Transaction, customerID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM payments WHERE customer_id = $1`, customerID)

	return err
}

// ClearAgent unlinks an agent from its payments inside a cascade
// transaction. The payments survive; they still belong to their customers.
func (r *PaymentRepository) ClearAgent(ctx context.Context, tx usecase.Transaction, agentID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `UPDATE payments SET agent_id = NULL WHERE agent_id = $1`, agentID)

	return err
}

// ClearSupplier unlinks a supplier from its payments inside a cascade
// transaction, so the supplier row can be deleted without tripping the
// payments foreign key.
func (r *PaymentRepository) ClearSupplier(ctx context.Context, tx usecase.Transaction, supplierID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `UPDATE payments SET supplier_id = NULL WHERE supplier_id = $1`, supplierID)

	return err
}
