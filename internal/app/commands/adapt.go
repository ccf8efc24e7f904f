package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
	"github.com/jsamuelsen11/go-command-bridge/internal/ports"
)

// Func is a typed command: it receives decoded arguments and returns a
// Result whose value the host serializes.
type Func[In, Out any] func(ctx context.Context, in In) bridge.Result[Out]

// Register adapts fn with Adapt and registers it under cmd.
func Register[In, Out any](reg ports.CommandRegistry, cmd domain.Command, fn Func[In, Out]) error {
	return reg.Register(cmd, Adapt(fn))
}

// Adapt turns a typed command into a ports.Handler. Arguments are decoded
// strictly into In: unknown fields and trailing data are rejected. An empty
// or null body leaves In at its zero value, which is how commands taking
// bridge.Empty are called.
func Adapt[In, Out any](fn Func[In, Out]) ports.Handler {
	return func(ctx context.Context, args json.RawMessage) (bridge.Result[any], error) {
		var in In
		if err := decodeArgs(args, &in); err != nil {
			return bridge.Result[any]{}, err
		}
		return fn(ctx, in).Any(), nil
	}
}

func decodeArgs(args json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return &domain.ValidationError{Fields: map[string]string{"args": err.Error()}}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &domain.ValidationError{Fields: map[string]string{"args": "unexpected data after arguments"}}
	}
	return nil
}
