package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradebook/internal/domain"
)

// OverviewRepository implements usecase.OverviewRepository. Every figure is
// derived on read; only the bank total reads the cached balance column.
type OverviewRepository struct {
	pool *pgxpool.Pool
}

// NewOverviewRepository creates a new OverviewRepository.
func NewOverviewRepository(pool *pgxpool.Pool) *OverviewRepository {
	return &OverviewRepository{pool: pool}
}

// GetOverview derives the system-wide position in one round trip.
func (r *OverviewRepository) GetOverview(ctx context.Context) (*domain.Overview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM customers),
			COALESCE((SELECT SUM(b.total_bill) FROM bills b), 0)
				- COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.customer_id IS NOT NULL AND p.type = 'customer_payment'), 0)
				- COALESCE((SELECT SUM(st.calculated_usdt) FROM supplier_transactions st WHERE st.customer_id IS NOT NULL AND st.type = 'supplier_to_me'), 0),
			(SELECT COUNT(*) FROM agents),
			COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.agent_id IS NOT NULL), 0)
				- COALESCE((SELECT SUM(s.amount) FROM agent_settlements s WHERE s.agent_id IS NOT NULL AND s.type = 'received'), 0),
			(SELECT COUNT(*) FROM suppliers),
			COALESCE((SELECT SUM(st.calculated_usdt) FROM supplier_transactions st WHERE st.type = 'supplier_to_me'), 0)
				- COALESCE((SELECT SUM(st.calculated_usdt) FROM supplier_transactions st WHERE st.type = 'me_to_supplier'), 0),
			(SELECT COUNT(*) FROM bank_accounts),
			COALESCE((SELECT SUM(ba.balance) FROM bank_accounts ba), 0),
			(SELECT COALESCE(ARRAY_AGG(DISTINCT ba.currency), '{}') FROM bank_accounts ba)
	`

	var overview domain.Overview
	var customerBalance, agentBalance, supplierBalance, bankBalance pgtype.Numeric

	err := r.pool.QueryRow(ctx, query).Scan(
		&overview.Customers.Count,
		&customerBalance,
		&overview.Agents.Count,
		&agentBalance,
		&overview.Suppliers.Count,
		&supplierBalance,
		&overview.BankAccounts.Count,
		&bankBalance,
		&overview.BankAccounts.Currencies,
	)
	if err != nil {
		return nil, err
	}

	overview.Customers.TotalBalance = numericToDecimal(customerBalance)
	overview.Agents.TotalBalance = numericToDecimal(agentBalance)
	overview.Suppliers.TotalBalance = numericToDecimal(supplierBalance)
	overview.BankAccounts.TotalBalance = numericToDecimal(bankBalance)

	return &overview, nil
}
