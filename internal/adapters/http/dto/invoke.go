package dto

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
)

// Values of InvokeResponse.Status.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// InvokeResponse is the body of every answered invocation. Exactly one of
// Data and Error is set: Data holds the JSON encoding of the success value
// and Error the serialized CommandError.
type InvokeResponse struct {
	Status string               `json:"status"`
	Data   json.RawMessage      `json:"data,omitempty"`
	Error  *bridge.CommandError `json:"error,omitempty"`
}

// NewInvokeResponse converts a command outcome into the wire envelope. It
// fails only when the success value cannot be encoded as JSON.
func NewInvokeResponse(res bridge.Result[any]) (InvokeResponse, error) {
	if !res.IsOk() {
		return InvokeResponse{Status: StatusError, Error: res.Err()}, nil
	}

	data, err := json.Marshal(res.Value())
	if err != nil {
		return InvokeResponse{}, fmt.Errorf("encoding command result: %w", err)
	}
	return InvokeResponse{Status: StatusOK, Data: data}, nil
}

// CommandResponse describes one command in a listing.
type CommandResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CommandListResponse is the body of GET /api/v1/commands.
type CommandListResponse struct {
	Commands []CommandResponse `json:"commands"`
}

// ToCommandListResponse converts domain descriptors to the listing DTO,
// keeping their order.
func ToCommandListResponse(cmds []domain.Command) CommandListResponse {
	resp := CommandListResponse{Commands: make([]CommandResponse, 0, len(cmds))}
	for _, c := range cmds {
		resp.Commands = append(resp.Commands, CommandResponse{
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return resp
}
