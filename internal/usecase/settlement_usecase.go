package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
)

// SettlementUseCase records agent settlements. Settlements never touch
// shared state; they only feed the agent balance aggregation.
type SettlementUseCase struct {
	settlementRepo SettlementRepository
	idGen          IDGenerator
}

// NewSettlementUseCase creates a new SettlementUseCase.
func NewSettlementUseCase(settlementRepo SettlementRepository, idGen IDGenerator) *SettlementUseCase {
	return &SettlementUseCase{
		settlementRepo: settlementRepo,
		idGen:          idGen,
	}
}

// SettlementInput carries the flat field set of a settlement write.
type SettlementInput struct {
	AgentID        *string
	SettlementDate time.Time
	Amount         decimal.Decimal
	Currency       string
	Type           domain.SettlementType
	Notes          string
}

func (in *SettlementInput) validate() error {
	if in.Currency == "" {
		in.Currency = "AED"
	}

	in.Currency = domain.NormalizeCurrency(in.Currency)
	if err := domain.ValidateCurrency(in.Currency); err != nil {
		return err
	}

	return domain.ValidateSettlementType(in.Type)
}

// CreateSettlement records a new settlement.
func (uc *SettlementUseCase) CreateSettlement(ctx context.Context, input SettlementInput) (*domain.AgentSettlement, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if input.SettlementDate.IsZero() {
		input.SettlementDate = time.Now().UTC()
	}

	settlement := &domain.AgentSettlement{
		ID:             uc.idGen.Generate(),
		AgentID:        input.AgentID,
		SettlementDate: input.SettlementDate,
		Amount:         input.Amount,
		Currency:       input.Currency,
		Type:           input.Type,
		Notes:          input.Notes,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.settlementRepo.Create(ctx, settlement); err != nil {
		return nil, err
	}

	return settlement, nil
}

// UpdateSettlement overwrites a settlement's own fields; the agent link is
// fixed at creation. Updating a settlement that does not exist is a no-op.
func (uc *SettlementUseCase) UpdateSettlement(ctx context.Context, id string, input SettlementInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	return uc.settlementRepo.Update(ctx, &domain.AgentSettlement{
		ID:             id,
		SettlementDate: input.SettlementDate,
		Amount:         input.Amount,
		Currency:       input.Currency,
		Type:           input.Type,
		Notes:          input.Notes,
	})
}

// DeleteSettlement removes a settlement.
func (uc *SettlementUseCase) DeleteSettlement(ctx context.Context, id string) error {
	return uc.settlementRepo.Delete(ctx, id)
}
