package bridge

// Empty is the success type of commands that return nothing.
type Empty = struct{}

// Result is the return type of every command: either a value or a
// CommandError, never both. The zero Result is a success holding the zero T.
type Result[T any] struct {
	value T
	err   *CommandError
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the success value, or the zero T for a failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil for a success.
func (r Result[T]) Err() *CommandError {
	return r.err
}

// Unpack splits r into Go's (value, error) convention. The error is a true
// nil interface on success.
func (r Result[T]) Unpack() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Any erases the value type so a host can dispatch commands of different
// result types through one signature.
func (r Result[T]) Any() Result[any] {
	if r.err != nil {
		return Result[any]{err: r.err}
	}
	return Result[any]{value: r.value}
}
