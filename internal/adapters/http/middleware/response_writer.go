package middleware

import "net/http"

// responseWriter records what a handler sent so that outer middleware can
// log it, set span status from it, or decide whether a problem response can
// still be written.
type responseWriter struct {
	http.ResponseWriter
	status  int
	started bool
	bytes   int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code. Later calls are dropped, which
// matches what net/http does on the wire.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.started {
		return
	}
	rw.status = code
	rw.started = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.started = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
