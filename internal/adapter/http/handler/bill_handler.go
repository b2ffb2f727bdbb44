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

// BillService defines the behavior needed by BillHandler.
type BillService interface {
	CreateBill(ctx context.Context, input usecase.BillInput) (*domain.Bill, error)
	UpdateBill(ctx context.Context, id string, input usecase.BillInput) error
	DeleteBill(ctx context.Context, id string) error
}

// BillHandler handles bill-related HTTP requests.
type BillHandler struct {
	billUC BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billUC BillService) *BillHandler {
	return &BillHandler{billUC: billUC}
}

// Create creates a new bill.
func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bill, err := h.billUC.CreateBill(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create bill", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BillFromDomain(bill))
}

// Update overwrites a bill.
func (h *BillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.BillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.billUC.UpdateBill(r.Context(), id, req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to update bill", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a bill.
func (h *BillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.billUC.DeleteBill(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete bill", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
