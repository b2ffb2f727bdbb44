package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
)

// BillUseCase handles bill business logic.
type BillUseCase struct {
	billRepo BillRepository
	idGen    IDGenerator
}

// NewBillUseCase creates a new BillUseCase.
func NewBillUseCase(billRepo BillRepository, idGen IDGenerator) *BillUseCase {
	return &BillUseCase{
		billRepo: billRepo,
		idGen:    idGen,
	}
}

// BillInput carries the flat field set of a bill write.
type BillInput struct {
	CustomerID   *string
	AgentID      *string
	BillDate     time.Time
	Amount       decimal.Decimal
	SellingPrice decimal.Decimal
	TotalBill    decimal.Decimal
}

// CreateBill creates a new bill.
func (uc *BillUseCase) CreateBill(ctx context.Context, input BillInput) (*domain.Bill, error) {
	if input.BillDate.IsZero() {
		input.BillDate = time.Now().UTC()
	}

	bill := &domain.Bill{
		ID:           uc.idGen.Generate(),
		CustomerID:   input.CustomerID,
		AgentID:      input.AgentID,
		BillDate:     input.BillDate,
		Amount:       input.Amount,
		SellingPrice: input.SellingPrice,
		TotalBill:    input.TotalBill,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// UpdateBill overwrites a bill's own fields; party links are fixed at
// creation. Updating a bill that does not exist is a no-op.
func (uc *BillUseCase) UpdateBill(ctx context.Context, id string, input BillInput) error {
	return uc.billRepo.Update(ctx, &domain.Bill{
		ID:           id,
		BillDate:     input.BillDate,
		Amount:       input.Amount,
		SellingPrice: input.SellingPrice,
		TotalBill:    input.TotalBill,
	})
}

// DeleteBill removes a bill.
func (uc *BillUseCase) DeleteBill(ctx context.Context, id string) error {
	return uc.billRepo.Delete(ctx, id)
}
