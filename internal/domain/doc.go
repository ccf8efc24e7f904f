// Package domain holds the host's shared domain types: the command
// descriptor, sentinel errors, and field-level validation errors. It has no
// dependencies on transport or on the bridge core.
package domain
