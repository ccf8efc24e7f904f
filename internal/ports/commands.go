package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
)

// Handler runs one command. args is the raw JSON body of the invocation,
// possibly empty. The returned Result is the command's outcome and is sent
// to the frontend as data; the error is reserved for host-level faults such
// as undecodable arguments (wrap domain.ErrValidation).
type Handler func(ctx context.Context, args json.RawMessage) (bridge.Result[any], error)

// CommandRegistry defines the service port for command dispatch.
// Implemented by the application layer; called by inbound adapters (handlers).
type CommandRegistry interface {
	// Register adds a command. Returns domain.ErrValidation if the descriptor
	// is invalid or the name is already taken.
	Register(cmd domain.Command, h Handler) error

	// Invoke runs the named command with the given arguments.
	// Returns domain.ErrNotFound if no such command is registered and
	// domain.ErrValidation if args cannot be decoded. A command that fails
	// reports it through the Result, not the error.
	Invoke(ctx context.Context, name string, args json.RawMessage) (bridge.Result[any], error)

	// List returns all registered commands sorted by name.
	List() []domain.Command
}
