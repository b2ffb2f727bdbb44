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

// AgentRepository implements usecase.AgentRepository.
type AgentRepository struct {
	pool *pgxpool.Pool
}

// NewAgentRepository creates a new AgentRepository.
func NewAgentRepository(pool *pgxpool.Pool) *AgentRepository {
	return &AgentRepository{pool: pool}
}

// Create inserts a new agent.
func (r *AgentRepository) Create(ctx context.Context, agent *domain.Agent) error {
	query := `
		INSERT INTO agents (id, name, type, usdt_rate, dhs_rate, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		agent.ID,
		agent.Name,
		string(agent.Type),
		decimalToNumeric(agent.USDTRate),
		decimalToNumeric(agent.DHSRate),
		agent.Phone,
		agent.Email,
		timeToPgTimestamptz(agent.CreatedAt),
	)

	return err
}

// GetByID retrieves an agent by ID.
func (r *AgentRepository) GetByID(ctx context.Context, id string) (*domain.Agent, error) {
	query := `
		SELECT id, name, type, usdt_rate, dhs_rate, phone, email, created_at
		FROM agents
		WHERE id = $1
	`

	var agent domain.Agent
	var usdtRate, dhsRate pgtype.Numeric

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&agent.ID,
		&agent.Name,
		&agent.Type,
		&usdtRate,
		&dhsRate,
		&agent.Phone,
		&agent.Email,
		&agent.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}

	agent.USDTRate = numericToDecimal(usdtRate)
	agent.DHSRate = numericToDecimal(dhsRate)

	return &agent, nil
}

// Update overwrites an agent's fields.
func (r *AgentRepository) Update(ctx context.Context, agent *domain.Agent) error {
	query := `
		UPDATE agents
		SET name = $2, type = $3, usdt_rate = $4, dhs_rate = $5, phone = $6, email = $7
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		agent.ID,
		agent.Name,
		string(agent.Type),
		decimalToNumeric(agent.USDTRate),
		decimalToNumeric(agent.DHSRate),
		agent.Phone,
		agent.Email,
	)

	return err
}

// Delete removes an agent inside a cascade transaction.
func (r *AgentRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM agents WHERE id = $1`, id)

	return err
}

// ListWithBalances lists agents with pending balances derived in SQL:
// the sum of payments routed through the agent minus received settlements.
func (r *AgentRepository) ListWithBalances(ctx context.Context, limit, offset int) ([]*domain.AgentWithBalance, error) {
	query := `
		SELECT
			a.id, a.name, a.type, a.usdt_rate, a.dhs_rate, a.phone, a.email, a.created_at,
			COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.agent_id = a.id), 0) AS total_received,
			COALESCE((SELECT SUM(s.amount) FROM agent_settlements s WHERE s.agent_id = a.id AND s.type = 'received'), 0) AS total_settled
		FROM agents a
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []*domain.AgentWithBalance
	for rows.Next() {
		var a domain.AgentWithBalance
		var usdtRate, dhsRate, totalReceived, totalSettled pgtype.Numeric

		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Type,
			&usdtRate,
			&dhsRate,
			&a.Phone,
			&a.Email,
			&a.CreatedAt,
			&totalReceived,
			&totalSettled,
		)
		if err != nil {
			return nil, err
		}

		a.USDTRate = numericToDecimal(usdtRate)
		a.DHSRate = numericToDecimal(dhsRate)
		a.TotalReceived = numericToDecimal(totalReceived)
		a.TotalSettled = numericToDecimal(totalSettled)
		a.PendingBalance = a.TotalReceived.Sub(a.TotalSettled)

		agents = append(agents, &a)
	}

	return agents, rows.Err()
}
