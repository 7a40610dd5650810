package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mpalomar/ultimateteam/internal/service/federationservice"
	"github.com/mpalomar/ultimateteam/internal/service/playerservice"
	"github.com/mpalomar/ultimateteam/internal/service/registrationservice"
	"github.com/mpalomar/ultimateteam/internal/service/tournamentservice"
)

type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Tool is a named remote-callable operation with a declared parameter schema.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`

	handler func(ctx context.Context, args Args) (any, error)
}

// ListTools answers tool discovery with every name and parameter schema.
func (h *Handlers) ListTools(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"tools": h.tools})
}

// InvokeTool dispatches a parameter mapping to the named tool and returns a
// structured result or a structured error; domain failures never propagate
// as transport faults.
func (h *Handlers) InvokeTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tool, ok := h.toolIdx[name]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown_tool", "unknown tool: "+name)
		return
	}

	args := Args{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			respondError(w, http.StatusBadRequest, "validation", "request body must be a JSON object")
			return
		}
	}

	result, err := tool.handler(r.Context(), args)
	if err != nil {
		status, kind := classify(err)
		if status == http.StatusInternalServerError {
			zap.L().Error("tool invocation failed", zap.String("tool", name), zap.Error(err))
			respondError(w, status, kind, "internal error")
			return
		}
		respondError(w, status, kind, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"result": result})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, playerservice.ErrPlayerExists),
		errors.Is(err, tournamentservice.ErrTournamentExists),
		errors.Is(err, registrationservice.ErrAlreadyRegistered):
		return http.StatusConflict, "duplicate_key"
	case errors.Is(err, playerservice.ErrPlayerNotFound),
		errors.Is(err, tournamentservice.ErrTournamentNotFound),
		errors.Is(err, registrationservice.ErrTournamentNotFound),
		errors.Is(err, registrationservice.ErrPlayerNotFound),
		errors.Is(err, federationservice.ErrPlayerNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, registrationservice.ErrNotRegistered):
		return http.StatusNotFound, "not_registered"
	case errors.Is(err, registrationservice.ErrDeadlinePassed):
		return http.StatusUnprocessableEntity, "deadline_passed"
	case errors.Is(err, tournamentservice.ErrInvalidSurface):
		return http.StatusBadRequest, "validation"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, map[string]any{
		"error": map[string]string{
			"kind":    kind,
			"message": message,
		},
	})
}
