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

// SupplierTransactionService defines the behavior needed by
// SupplierTransactionHandler.
type SupplierTransactionService interface {
	CreateTransaction(ctx context.Context, input usecase.SupplierTransactionInput) (*domain.SupplierTransaction, error)
	UpdateTransaction(ctx context.Context, id string, input usecase.SupplierTransactionInput) error
	DeleteTransaction(ctx context.Context, id string) error
}

// SupplierTransactionHandler handles supplier transaction HTTP requests.
type SupplierTransactionHandler struct {
	txnUC SupplierTransactionService
}

// NewSupplierTransactionHandler creates a new SupplierTransactionHandler.
func NewSupplierTransactionHandler(txnUC SupplierTransactionService) *SupplierTransactionHandler {
	return &SupplierTransactionHandler{txnUC: txnUC}
}

// Create records a new supplier transaction.
func (h *SupplierTransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SupplierTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.txnUC.CreateTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create supplier transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SupplierTransactionFromDomain(txn))
}

// Update overwrites a supplier transaction.
func (h *SupplierTransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.SupplierTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.txnUC.UpdateTransaction(r.Context(), id, req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to update supplier transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a supplier transaction.
func (h *SupplierTransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.txnUC.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete supplier transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
