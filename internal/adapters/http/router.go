// Package http provides the inbound HTTP adapter: the command transport the
// host exposes to frontends, its routing and the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-command-bridge/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-command-bridge/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all host routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	commandHandler *handlers.CommandHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusNotFound, "no route for "+r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusMethodNotAllowed, r.Method+" is not allowed on "+r.URL.Path))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/commands", commandHandler.List)
		r.Post("/invoke/{"+handlers.CommandParam+"}", commandHandler.Invoke)
	})

	return r
}
