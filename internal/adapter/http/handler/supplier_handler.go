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

// SupplierService defines the behavior needed by SupplierHandler.
type SupplierService interface {
	CreateSupplier(ctx context.Context, input usecase.SupplierInput) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, input usecase.SupplierInput) error
	DeleteSupplier(ctx context.Context, id string) error
	ListSuppliers(ctx context.Context, limit, offset int) ([]*domain.SupplierWithBalance, error)
	GetSupplierStatement(ctx context.Context, id string) (*domain.SupplierStatement, error)
}

// SupplierHandler handles supplier-related HTTP requests.
type SupplierHandler struct {
	supplierUC SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierUC SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierUC: supplierUC}
}

// Create creates a new supplier.
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	supplier, err := h.supplierUC.CreateSupplier(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create supplier", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SupplierFromDomain(supplier))
}

// List lists suppliers with derived net balances.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	suppliers, err := h.supplierUC.ListSuppliers(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list suppliers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SuppliersWithBalancesFromDomain(suppliers))
}

// GetStatement returns a supplier's full statement.
func (h *SupplierHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	statement, err := h.supplierUC.GetSupplierStatement(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get supplier statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SupplierStatementFromDomain(statement))
}

// Update overwrites a supplier.
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.supplierUC.UpdateSupplier(r.Context(), id, req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to update supplier", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a supplier and its transactions.
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.supplierUC.DeleteSupplier(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete supplier", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
