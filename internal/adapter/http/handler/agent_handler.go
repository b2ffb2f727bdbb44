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

// AgentService defines the behavior needed by AgentHandler.
type AgentService interface {
	CreateAgent(ctx context.Context, input usecase.AgentInput) (*domain.Agent, error)
	UpdateAgent(ctx context.Context, id string, input usecase.AgentInput) error
	DeleteAgent(ctx context.Context, id string) error
	ListAgents(ctx context.Context, limit, offset int) ([]*domain.AgentWithBalance, error)
	GetAgentStatement(ctx context.Context, id string) (*domain.AgentStatement, error)
}

// AgentHandler handles agent-related HTTP requests.
type AgentHandler struct {
	agentUC AgentService
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(agentUC AgentService) *AgentHandler {
	return &AgentHandler{agentUC: agentUC}
}

// Create creates a new agent.
func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	agent, err := h.agentUC.CreateAgent(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create agent", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AgentFromDomain(agent))
}

// List lists agents with derived pending balances.
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	agents, err := h.agentUC.ListAgents(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list agents", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AgentsWithBalancesFromDomain(agents))
}

// GetStatement returns an agent's full statement.
func (h *AgentHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	statement, err := h.agentUC.GetAgentStatement(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get agent statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AgentStatementFromDomain(statement))
}

// Update overwrites an agent.
func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.agentUC.UpdateAgent(r.Context(), id, req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to update agent", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes an agent, unlinking its payments.
func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.agentUC.DeleteAgent(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete agent", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
