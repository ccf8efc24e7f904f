package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-command-bridge/internal/adapters/http/dto"
)

// errInternalServer is what the frontend sees for a recovered panic. The
// panic value and stack only go to the log.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a panic in any downstream handler,
// a command included, into a 500 problem response and a "panic recovered"
// log line carrying the stack. Nothing is written when the response has
// already started. http.ErrAbortHandler is re-raised for net/http to handle.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				attrs := []any{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				}
				if _, relayed := v.(handlerPanic); !relayed {
					attrs = append(attrs, slog.String("stack", string(debug.Stack())))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !rw.started {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
