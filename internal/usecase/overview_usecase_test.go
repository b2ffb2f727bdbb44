package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
	"github.com/iho/tradebook/internal/usecase/mocks"
)

func TestOverviewUseCase_GetOverview(t *testing.T) {
	calls := 0
	overviewRepo := &mocks.MockOverviewRepository{
		GetOverviewFunc: func(ctx context.Context) (*domain.Overview, error) {
			calls++
			return &domain.Overview{
				Customers: domain.PartyOverview{Count: 3, TotalBalance: decimal.NewFromInt(1200)},
				Agents:    domain.PartyOverview{Count: 2, TotalBalance: decimal.NewFromInt(350)},
				BankAccounts: domain.BankOverview{
					Count:        1,
					TotalBalance: decimal.NewFromInt(5000),
					Currencies:   []string{"AED"},
				},
			}, nil
		},
	}

	cache := &mocks.MockCache{}
	uc := usecase.NewOverviewUseCase(overviewRepo, cache, 0, zerolog.Nop())

	first, err := uc.GetOverview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Customers.Count != 3 {
		t.Errorf("customer count = %d, want 3", first.Customers.Count)
	}

	// Second call is served from cache.
	second, err := uc.GetOverview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("repository calls = %d, want 1", calls)
	}
	if !second.Customers.TotalBalance.Equal(first.Customers.TotalBalance) {
		t.Errorf("cached balance = %s, want %s", second.Customers.TotalBalance, first.Customers.TotalBalance)
	}
}

func TestOverviewUseCase_GetOverview_ConfiguredTTL(t *testing.T) {
	overviewRepo := &mocks.MockOverviewRepository{
		GetOverviewFunc: func(ctx context.Context) (*domain.Overview, error) {
			return &domain.Overview{}, nil
		},
	}

	var gotTTL time.Duration
	cache := &mocks.MockCache{
		SetFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			gotTTL = ttl
			return nil
		},
	}

	uc := usecase.NewOverviewUseCase(overviewRepo, cache, 5*time.Minute, zerolog.Nop())

	if _, err := uc.GetOverview(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTTL != 5*time.Minute {
		t.Errorf("cache TTL = %s, want 5m", gotTTL)
	}
}

func TestOverviewUseCase_GetOverview_NoCache(t *testing.T) {
	calls := 0
	overviewRepo := &mocks.MockOverviewRepository{
		GetOverviewFunc: func(ctx context.Context) (*domain.Overview, error) {
			calls++
			return &domain.Overview{}, nil
		},
	}

	uc := usecase.NewOverviewUseCase(overviewRepo, nil, 0, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := uc.GetOverview(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 2 {
		t.Errorf("repository calls = %d, want 2", calls)
	}
}
