package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-command-bridge/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-command-bridge/internal/ports"
)

// CommandParam is the chi URL parameter carrying the command name.
const CommandParam = "command"

// CommandHandler exposes a command registry over HTTP. It depends only on
// the ports.CommandRegistry interface.
type CommandHandler struct {
	registry     ports.CommandRegistry
	maxBodyBytes int64
}

// NewCommandHandler creates a CommandHandler. A non-positive maxBodyBytes
// falls back to DefaultMaxBodyBytes.
func NewCommandHandler(registry ports.CommandRegistry, maxBodyBytes int64) *CommandHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &CommandHandler{registry: registry, maxBodyBytes: maxBodyBytes}
}

// Invoke handles POST /api/v1/invoke/{command}. Command outcomes, failures
// included, are answered with 200 and the invocation envelope; host-level
// faults get a problem response.
func (h *CommandHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, CommandParam)

	args, err := readBody(w, r, h.maxBodyBytes)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.registry.Invoke(r.Context(), name, json.RawMessage(args))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := dto.NewInvokeResponse(res)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// List handles GET /api/v1/commands.
func (h *CommandHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToCommandListResponse(h.registry.List()))
}
