package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
)

// CommandInvoker defines the client port a frontend uses to call host commands.
// Implemented by the invoker adapter; called by the CLI.
type CommandInvoker interface {
	// Invoke calls the named command and returns its success value as raw JSON.
	// A command failure is returned as an error wrapping domain.ErrCommandFailed
	// whose message is the serialized failure. Host-level faults map to
	// domain.ErrNotFound, domain.ErrValidation or domain.ErrUnavailable.
	Invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error)

	// List returns the commands the host exposes.
	List(ctx context.Context) ([]domain.Command, error)
}
