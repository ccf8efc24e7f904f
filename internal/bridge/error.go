package bridge

import (
	"encoding/json"
	"log/slog"
)

// CommandError is the only error type that crosses the command boundary. It
// owns a single chained cause and serializes to one string whose content
// depends on the build mode.
type CommandError struct {
	cause error
}

// Compile-time interface checks.
var (
	_ error          = (*CommandError)(nil)
	_ json.Marshaler = (*CommandError)(nil)
	_ slog.LogValuer = (*CommandError)(nil)
)

// NewCommandError wraps cause for the boundary. It never fails:
//   - a cause that already is a *CommandError is returned unchanged, so a
//     failure is wrapped at most once;
//   - a nil cause, including a typed-nil *CommandError, becomes
//     "unknown error".
func NewCommandError(cause error) *CommandError {
	if ce, ok := cause.(*CommandError); ok {
		if ce != nil {
			return ce
		}
		cause = nil
	}
	if cause == nil {
		cause = &link{msg: unknownMessage}
	}
	return &CommandError{cause: cause}
}

// Error renders the full cause chain, outer to inner, whatever the build
// mode. It is meant for logs on the host side of the boundary; anything
// handed to a frontend goes through Serialize.
func (e *CommandError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return render(e.cause)
}

// Unwrap returns the cause so errors.Is and errors.As see through the
// boundary wrapper.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Message returns the outermost message of the chain.
func (e *CommandError) Message() string {
	if e == nil {
		return ""
	}
	if chain := Chain(e.cause); len(chain) > 0 {
		return chain[0]
	}
	return ""
}

// Chain returns every message of the cause chain, outermost first.
func (e *CommandError) Chain() []string {
	if e == nil {
		return nil
	}
	return Chain(e.cause)
}

// Serialize returns the string a frontend is allowed to see.
func (e *CommandError) Serialize() string {
	return e.serialize(buildMode)
}

func (e *CommandError) serialize(mode Mode) string {
	if mode == Redacted {
		return RedactedMessage
	}
	return e.Error()
}

// MarshalJSON encodes the error as a JSON string holding Serialize().
func (e *CommandError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Serialize())
}

// MarshalText returns Serialize() as text.
func (e *CommandError) MarshalText() ([]byte, error) {
	return []byte(e.Serialize()), nil
}

// LogValue logs the full chain. Logs stay on the host, so they are not
// subject to redaction.
func (e *CommandError) LogValue() slog.Value {
	return slog.StringValue(e.Error())
}
