package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
)

// SettlementRepository implements usecase.SettlementRepository.
type SettlementRepository struct {
	pool *pgxpool.Pool
}

// NewSettlementRepository creates a new SettlementRepository.
func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{pool: pool}
}

// Create inserts a new settlement.
func (r *SettlementRepository) Create(ctx context.Context, settlement *domain.AgentSettlement) error {
	query := `
		INSERT INTO agent_settlements (id, agent_id, settlement_date, amount, currency, type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		settlement.ID,
		settlement.AgentID,
		timeToPgTimestamptz(settlement.SettlementDate),
		decimalToNumeric(settlement.Amount),
		settlement.Currency,
		string(settlement.Type),
		settlement.Notes,
		timeToPgTimestamptz(settlement.CreatedAt),
	)

	return err
}

// Update overwrites a settlement's own fields; the agent link stays fixed.
func (r *SettlementRepository) Update(ctx context.Context, settlement *domain.AgentSettlement) error {
	query := `
		UPDATE agent_settlements
		SET settlement_date = $2, amount = $3, currency = $4, type = $5, notes = $6
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		settlement.ID,
		timeToPgTimestamptz(settlement.SettlementDate),
		decimalToNumeric(settlement.Amount),
		settlement.Currency,
		string(settlement.Type),
		settlement.Notes,
	)

	return err
}

// Delete removes a settlement.
func (r *SettlementRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM agent_settlements WHERE id = $1`, id)

	return err
}

// ListByAgent lists an agent's settlements, newest first.
func (r *SettlementRepository) ListByAgent(ctx context.Context, agentID string) ([]*domain.AgentSettlement, error) {
	query := `
		SELECT id, agent_id, settlement_date, amount, currency, type, notes, created_at
		FROM agent_settlements
		WHERE agent_id = $1
		ORDER BY settlement_date DESC
	`

	rows, err := r.pool.Query(ctx, query, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settlements []*domain.AgentSettlement
	for rows.Next() {
		var s domain.AgentSettlement
		var amount pgtype.Numeric

		err := rows.Scan(
			&s.ID,
			&s.AgentID,
			&s.SettlementDate,
			&amount,
			&s.Currency,
			&s.Type,
			&s.Notes,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		s.Amount = numericToDecimal(amount)

		settlements = append(settlements, &s)
	}

	return settlements, rows.Err()
}

// DeleteByAgent removes all of an agent's settlements inside a cascade
// transaction.
func (r *SettlementRepository) DeleteByAgent(ctx context.Context, tx usecase.Transaction, agentID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM agent_settlements WHERE agent_id = $1`, agentID)

	return err
}
