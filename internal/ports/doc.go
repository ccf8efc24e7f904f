// Package ports defines interfaces between layers in the hexagonal architecture.
// The command registry port is implemented by the application layer and called
// by the HTTP handlers. The invoker port is implemented by the outbound client
// adapter and called by the CLI.
package ports
