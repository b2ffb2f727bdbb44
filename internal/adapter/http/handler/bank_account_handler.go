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

// BankAccountService defines the behavior needed by BankAccountHandler.
type BankAccountService interface {
	CreateBankAccount(ctx context.Context, input usecase.BankAccountInput) (*domain.BankAccount, error)
	GetBankAccount(ctx context.Context, id string) (*domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, id string, input usecase.BankAccountInput) error
	DeleteBankAccount(ctx context.Context, id string) error
	ListBankAccounts(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error)
}

// BankAccountHandler handles bank account-related HTTP requests.
type BankAccountHandler struct {
	bankUC BankAccountService
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(bankUC BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{bankUC: bankUC}
}

// Create creates a new bank account.
func (h *BankAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.bankUC.CreateBankAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create bank account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BankAccountFromDomain(account))
}

// Get retrieves a bank account by ID.
func (h *BankAccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	account, err := h.bankUC.GetBankAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get bank account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountFromDomain(account))
}

// List lists bank accounts.
func (h *BankAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	accounts, err := h.bankUC.ListBankAccounts(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bank accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountsFromDomain(accounts))
}

// Update overwrites a bank account, balance included.
func (h *BankAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.BankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.bankUC.UpdateBankAccount(r.Context(), id, req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to update bank account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a bank account.
func (h *BankAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.bankUC.DeleteBankAccount(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete bank account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
