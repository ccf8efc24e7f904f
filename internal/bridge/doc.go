// Package bridge converts errors raised inside command handlers into a single
// serializable value before they cross the command boundary.
//
// Command code works with ordinary Go errors, chained with [Wrap],
// fmt.Errorf("...: %w") or any type implementing Unwrap. At the boundary a
// failure is normalized exactly once into a [CommandError] inside a
// [Result]:
//
//	func greet(name string) bridge.Result[string] {
//		if r, failed := bridge.Ensure[string](name != "", bridge.Expr(`name != ""`)); failed {
//			return r
//		}
//		msg, err := render(name)
//		return bridge.Into(msg, err)
//	}
//
// The host serializes a failing Result through [CommandError.Serialize]. In
// default builds that is the full cause chain ("outer: inner: root"); builds
// tagged release emit only [RedactedMessage]:
//
//	go build -tags release ./cmd/server
//
// The mode is a compile-time constant; nothing at runtime can change it.
package bridge
