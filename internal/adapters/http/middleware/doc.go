// Package middleware provides HTTP middleware for the host's inbound request
// pipeline.
//
// The host assembles the chain in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Recovery sits outermost so that a panicking command, even one running
// under Timeout's goroutine, still ends in a problem response.
package middleware
