// Package dto provides the wire types of the inbound HTTP adapter: the command
// invocation envelope, the command listing, and RFC 9457 Problem Details
// responses for host-level faults.
package dto
