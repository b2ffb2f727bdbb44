package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
	"github.com/iho/tradebook/internal/usecase/mocks"
)

func TestAgentUseCase_CreateAgent(t *testing.T) {
	tests := []struct {
		name         string
		input        usecase.AgentInput
		expectError  bool
		wantUSDTRate decimal.Decimal
		wantDHSRate  decimal.Decimal
	}{
		{
			name:         "omitted rates get business defaults",
			input:        usecase.AgentInput{Name: "Hassan", Type: domain.AgentTypeUSDT},
			wantUSDTRate: decimal.NewFromFloat(3.67),
			wantDHSRate:  decimal.NewFromInt(1),
		},
		{
			name: "explicit rates are kept",
			input: usecase.AgentInput{
				Name:     "Hassan",
				Type:     domain.AgentTypeDHS,
				USDTRate: decimal.NewFromFloat(3.68),
				DHSRate:  decimal.NewFromFloat(1.01),
			},
			wantUSDTRate: decimal.NewFromFloat(3.68),
			wantDHSRate:  decimal.NewFromFloat(1.01),
		},
		{
			name:        "unknown type rejected",
			input:       usecase.AgentInput{Name: "Hassan", Type: "cash"},
			expectError: true,
		},
		{
			name:        "negative rate rejected",
			input:       usecase.AgentInput{Name: "Hassan", Type: domain.AgentTypeUSDT, USDTRate: decimal.NewFromInt(-1)},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewAgentUseCase(
				&mocks.MockTransactionManager{},
				&mocks.MockAgentRepository{},
				&mocks.MockPaymentRepository{},
				&mocks.MockSettlementRepository{},
				&mocks.MockIDGenerator{},
				nil,
			)

			agent, err := uc.CreateAgent(context.Background(), tt.input)

			if tt.expectError {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !agent.USDTRate.Equal(tt.wantUSDTRate) {
				t.Errorf("USDTRate = %s, want %s", agent.USDTRate, tt.wantUSDTRate)
			}
			if !agent.DHSRate.Equal(tt.wantDHSRate) {
				t.Errorf("DHSRate = %s, want %s", agent.DHSRate, tt.wantDHSRate)
			}
		})
	}
}

func TestAgentUseCase_GetAgentStatement(t *testing.T) {
	agentRepo := &mocks.MockAgentRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Agent, error) {
			return &domain.Agent{ID: id, Name: "Hassan", Type: domain.AgentTypeUSDT}, nil
		},
	}
	paymentRepo := &mocks.MockPaymentRepository{
		ListDetailsByAgentFunc: func(ctx context.Context, agentID string) ([]*domain.PaymentDetail, error) {
			return []*domain.PaymentDetail{
				{Payment: domain.Payment{Amount: decimal.NewFromInt(400)}},
				{Payment: domain.Payment{Amount: decimal.NewFromInt(100)}},
			}, nil
		},
	}
	settlementRepo := &mocks.MockSettlementRepository{
		ListByAgentFunc: func(ctx context.Context, agentID string) ([]*domain.AgentSettlement, error) {
			return []*domain.AgentSettlement{
				{Amount: decimal.NewFromInt(150), Type: domain.SettlementTypeReceived},
				{Amount: decimal.NewFromInt(999), Type: domain.SettlementTypePaid},
			}, nil
		},
	}

	uc := usecase.NewAgentUseCase(
		&mocks.MockTransactionManager{},
		agentRepo,
		paymentRepo,
		settlementRepo,
		&mocks.MockIDGenerator{},
		nil,
	)

	stmt, err := uc.GetAgentStatement(context.Background(), "agent-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only received settlements reduce the pending balance: 500 - 150 = 350.
	if !stmt.Summary.TotalReceived.Equal(decimal.NewFromInt(500)) {
		t.Errorf("TotalReceived = %s, want 500", stmt.Summary.TotalReceived)
	}
	if !stmt.Summary.TotalSettled.Equal(decimal.NewFromInt(150)) {
		t.Errorf("TotalSettled = %s, want 150", stmt.Summary.TotalSettled)
	}
	if !stmt.Summary.PendingBalance.Equal(decimal.NewFromInt(350)) {
		t.Errorf("PendingBalance = %s, want 350", stmt.Summary.PendingBalance)
	}
}

func TestAgentUseCase_DeleteAgent(t *testing.T) {
	var order []string
	txMgr := &mocks.MockTransactionManager{}

	uc := usecase.NewAgentUseCase(
		txMgr,
		&mocks.MockAgentRepository{
			DeleteFunc: func(ctx context.Context, tx usecase.Transaction, id string) error {
				order = append(order, "agent")
				return nil
			},
		},
		&mocks.MockPaymentRepository{
			ClearAgentFunc: func(ctx context.Context, tx usecase.Transaction, agentID string) error {
				order = append(order, "unlink_payments")
				return nil
			},
		},
		&mocks.MockSettlementRepository{
			DeleteByAgentFunc: func(ctx context.Context, tx usecase.Transaction, agentID string) error {
				order = append(order, "settlements")
				return nil
			},
		},
		&mocks.MockIDGenerator{},
		nil,
	)

	if err := uc.DeleteAgent(context.Background(), "agent-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"unlink_payments", "settlements", "agent"}
	if len(order) != len(want) {
		t.Fatalf("steps = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("steps = %v, want %v", order, want)
		}
	}
	if !txMgr.Tx.Committed {
		t.Error("cascade was not committed")
	}
}
