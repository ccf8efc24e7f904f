package ports

import "context"

// HealthChecker is implemented by any component that can report its
// health, such as the command registry or the frontend's client to the host.
type HealthChecker interface {
	// Name identifies the component in readiness output ("commands", "host").
	Name() string

	// HealthCheck returns nil when the component is usable. It must respect
	// context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects health checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns results keyed by
	// checker name. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
