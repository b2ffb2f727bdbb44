package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/tradebook/internal/adapter/http/dto"
	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
)

// SettlementService defines the behavior needed by SettlementHandler.
type SettlementService interface {
	CreateSettlement(ctx context.Context, input usecase.SettlementInput) (*domain.AgentSettlement, error)
	UpdateSettlement(ctx context.Context, id string, input usecase.SettlementInput) error
	DeleteSettlement(ctx context.Context, id string) error
}

// SettlementHandler handles agent settlement HTTP requests.
type SettlementHandler struct {
	settlementUC SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementUC SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementUC: settlementUC}
}

// Create records a new settlement.
func (h *SettlementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	settlement, err := h.settlementUC.CreateSettlement(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create settlement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SettlementFromDomain(settlement))
}

// Update overwrites a settlement.
func (h *SettlementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.SettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.settlementUC.UpdateSettlement(r.Context(), id, req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to update settlement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a settlement.
func (h *SettlementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.settlementUC.DeleteSettlement(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete settlement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
