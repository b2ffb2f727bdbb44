package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/tradebook/internal/domain"
)

const (
	overviewCacheKey        = "overview"
	defaultOverviewCacheTTL = 30 * time.Second
)

// OverviewUseCase serves the system-wide position. The overview is a pure
// aggregation over every table, so it is cached briefly; a stale read is
// acceptable for a dashboard.
type OverviewUseCase struct {
	overviewRepo OverviewRepository
	cache        Cache
	cacheTTL     time.Duration
	logger       zerolog.Logger
}

// NewOverviewUseCase creates a new OverviewUseCase. cache may be nil, in
// which case every call hits the database. A non-positive cacheTTL falls
// back to the 30s default.
func NewOverviewUseCase(overviewRepo OverviewRepository, cache Cache, cacheTTL time.Duration, logger zerolog.Logger) *OverviewUseCase {
	if cacheTTL <= 0 {
		cacheTTL = defaultOverviewCacheTTL
	}

	return &OverviewUseCase{
		overviewRepo: overviewRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// GetOverview returns aggregate receivable, pending and net positions
// across customers, agents, suppliers and bank accounts.
func (uc *OverviewUseCase) GetOverview(ctx context.Context) (*domain.Overview, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, overviewCacheKey); err == nil && data != nil {
			var overview domain.Overview
			if err := json.Unmarshal(data, &overview); err == nil {
				return &overview, nil
			}
		}
	}

	overview, err := uc.overviewRepo.GetOverview(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		data, err := json.Marshal(overview)
		if err == nil {
			if err := uc.cache.Set(ctx, overviewCacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn().Err(err).Msg("failed to cache overview")
			}
		}
	}

	return overview, nil
}
