package handler

import (
	"context"
	"net/http"

	"github.com/iho/tradebook/internal/adapter/http/dto"
	"github.com/iho/tradebook/internal/domain"
)

// OverviewService defines the behavior needed by OverviewHandler.
type OverviewService interface {
	GetOverview(ctx context.Context) (*domain.Overview, error)
}

// OverviewHandler serves the dashboard overview.
type OverviewHandler struct {
	overviewUC OverviewService
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(overviewUC OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewUC: overviewUC}
}

// Get returns the system-wide position.
func (h *OverviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	overview, err := h.overviewUC.GetOverview(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get overview", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OverviewFromDomain(overview))
}
