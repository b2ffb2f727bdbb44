package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/infrastructure/metrics"
)

// Default conversion rates applied when a caller omits them.
var (
	defaultUSDTRate = decimal.NewFromFloat(3.67)
	defaultDHSRate  = decimal.NewFromInt(1)
)

// AgentUseCase handles agent business logic.
type AgentUseCase struct {
	txManager      TransactionManager
	agentRepo      AgentRepository
	paymentRepo    PaymentRepository
	settlementRepo SettlementRepository
	idGen          IDGenerator
	metrics        *metrics.Metrics
}

// NewAgentUseCase creates a new AgentUseCase. metrics may be nil.
func NewAgentUseCase(
	txManager TransactionManager,
	agentRepo AgentRepository,
	paymentRepo PaymentRepository,
	settlementRepo SettlementRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
) *AgentUseCase {
	return &AgentUseCase{
		txManager:      txManager,
		agentRepo:      agentRepo,
		paymentRepo:    paymentRepo,
		settlementRepo: settlementRepo,
		idGen:          idGen,
		metrics:        m,
	}
}

// AgentInput carries the flat field set of an agent write.
type AgentInput struct {
	Name     string
	Type     domain.AgentType
	USDTRate decimal.Decimal
	DHSRate  decimal.Decimal
	Phone    string
	Email    string
}

func (in *AgentInput) validate() error {
	if err := domain.ValidateName(in.Name); err != nil {
		return err
	}

	if err := domain.ValidateAgentType(in.Type); err != nil {
		return err
	}

	if err := domain.ValidateRate(in.USDTRate); err != nil {
		return err
	}

	return domain.ValidateRate(in.DHSRate)
}

// CreateAgent creates a new agent, defaulting omitted conversion rates.
func (uc *AgentUseCase) CreateAgent(ctx context.Context, input AgentInput) (*domain.Agent, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if input.USDTRate.IsZero() {
		input.USDTRate = defaultUSDTRate
	}
	if input.DHSRate.IsZero() {
		input.DHSRate = defaultDHSRate
	}

	agent := &domain.Agent{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Type:      input.Type,
		USDTRate:  input.USDTRate,
		DHSRate:   input.DHSRate,
		Phone:     input.Phone,
		Email:     input.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.agentRepo.Create(ctx, agent); err != nil {
		return nil, err
	}

	return agent, nil
}

// UpdateAgent overwrites an agent's fields. Updating an agent that does
// not exist is a no-op.
func (uc *AgentUseCase) UpdateAgent(ctx context.Context, id string, input AgentInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	return uc.agentRepo.Update(ctx, &domain.Agent{
		ID:       id,
		Name:     input.Name,
		Type:     input.Type,
		USDTRate: input.USDTRate,
		DHSRate:  input.DHSRate,
		Phone:    input.Phone,
		Email:    input.Email,
	})
}

// DeleteAgent removes an agent in one transaction: its payments are
// unlinked (they remain meaningful to the customer that made them) and
// its settlements are deleted.
func (uc *AgentUseCase) DeleteAgent(ctx context.Context, id string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.paymentRepo.ClearAgent(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.settlementRepo.DeleteByAgent(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.agentRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.CascadeDeletes.WithLabelValues("agent").Inc()
	}

	return nil
}

// ListAgents lists agents with their derived pending balances.
func (uc *AgentUseCase) ListAgents(ctx context.Context, limit, offset int) ([]*domain.AgentWithBalance, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.agentRepo.ListWithBalances(ctx, limit, offset)
}

// GetAgentStatement returns an agent with its payments and settlements,
// plus the pending balance folded from those rows.
func (uc *AgentUseCase) GetAgentStatement(ctx context.Context, id string) (*domain.AgentStatement, error) {
	agent, err := uc.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.ListDetailsByAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	settlements, err := uc.settlementRepo.ListByAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.AgentStatement{
		Agent:       agent,
		Payments:    payments,
		Settlements: settlements,
		Summary:     domain.NewAgentSummary(payments, settlements),
	}, nil
}
