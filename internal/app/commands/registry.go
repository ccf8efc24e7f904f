// Package commands implements the host side of command dispatch: a registry
// of named handlers, a generic adapter from typed functions to handlers, and
// the demo commands shipped with the host.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/logging"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-command-bridge/internal/ports"
)

// Compile-time check that Registry implements ports.CommandRegistry.
var _ ports.CommandRegistry = (*Registry)(nil)

// resultRejected labels invocations whose arguments never reached the command.
const resultRejected = "rejected"

// DefaultDispatchTimeout bounds an invocation when no option overrides it.
const DefaultDispatchTimeout = 5 * time.Second

type entry struct {
	cmd     domain.Command
	handler ports.Handler
}

// Registry holds the commands a host exposes. Registration normally happens
// once at startup; Invoke and List are safe to call concurrently with it.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry

	timeout time.Duration
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// Option configures a Registry.
type Option func(*Registry)

// WithDispatchTimeout sets the deadline applied to each invocation.
// Non-positive values disable it.
func WithDispatchTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// WithMetrics records command.invocation.* metrics. A nil value disables them.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// NewRegistry creates an empty Registry that logs through logger.
func NewRegistry(logger *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]entry),
		timeout: DefaultDispatchTimeout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a command. The descriptor must validate and the name must be
// free; both failures wrap domain.ErrValidation.
func (r *Registry) Register(cmd domain.Command, h ports.Handler) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if h == nil {
		return &domain.ValidationError{Fields: map[string]string{"handler": domain.MsgRequired}}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[cmd.Name]; exists {
		return fmt.Errorf("%w: command %q is already registered", domain.ErrValidation, cmd.Name)
	}
	r.entries[cmd.Name] = entry{cmd: cmd, handler: h}

	r.logger.Debug("command registered", logging.Command(cmd.Name))
	return nil
}

// Invoke runs the named command. Unknown names return domain.ErrNotFound and
// undecodable arguments domain.ErrValidation; every other outcome, failures
// included, is reported through the Result.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (bridge.Result[any], error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	logger := logging.FromContextOr(ctx, r.logger)

	if !ok {
		logger.WarnContext(ctx, "unknown command",
			logging.Operation("Registry.Invoke"),
			logging.Command(name),
		)
		return bridge.Result[any]{}, fmt.Errorf("command %q: %w", name, domain.ErrNotFound)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := e.handler(ctx, args)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		logger.WarnContext(ctx, "command rejected",
			logging.Operation("Registry.Invoke"),
			logging.Command(name),
			logging.Err(err),
		)
		r.record(ctx, name, resultRejected, elapsed)
		return bridge.Result[any]{}, err
	case res.IsOk():
		logger.InfoContext(ctx, "command succeeded",
			logging.Command(name),
			slog.Duration("duration", elapsed),
		)
		r.record(ctx, name, telemetry.ResultOK, elapsed)
	default:
		logger.WarnContext(ctx, "command failed",
			logging.Operation("Registry.Invoke"),
			logging.Command(name),
			slog.Duration("duration", elapsed),
			logging.Err(res.Err()),
		)
		r.record(ctx, name, telemetry.ResultError, elapsed)
	}

	return res, nil
}

// List returns every registered command sorted by name.
func (r *Registry) List() []domain.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]domain.Command, 0, len(r.entries))
	for _, e := range r.entries {
		cmds = append(cmds, e.cmd)
	}
	slices.SortFunc(cmds, func(a, b domain.Command) int {
		return strings.Compare(a.Name, b.Name)
	})
	return cmds
}

// Name identifies the registry as a health component.
func (r *Registry) Name() string {
	return "commands"
}

// HealthCheck reports the registry as unhealthy until a command is registered.
func (r *Registry) HealthCheck(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return fmt.Errorf("no commands registered: %w", domain.ErrUnavailable)
	}
	return nil
}

func (r *Registry) record(ctx context.Context, name, result string, elapsed time.Duration) {
	if r.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrCommand.String(name),
		telemetry.AttrResult.String(result),
	)
	r.metrics.CommandInvocationTotal.Add(ctx, 1, attrs)
	r.metrics.CommandInvocationDuration.Record(ctx, elapsed.Seconds(), attrs)
}
