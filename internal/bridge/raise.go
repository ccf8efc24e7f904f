package bridge

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Expr is the source text of a condition passed to Ensure. Go cannot
// recover an expression's text at runtime, so callers that want the
// condition in the message spell it out:
//
//	bridge.Ensure[int](n > 0, bridge.Expr("n > 0"))
type Expr string

// conditionFailed prefixes every message generated by Ensure.
const conditionFailed = "Condition failed"

// Bail builds a failing Result from a reason (see New for the accepted
// forms). Pair it with return:
//
//	return bridge.Bail[string]("user %d not found", id)
func Bail[T any](reason any, args ...any) Result[T] {
	return Fail[T](New(reason, args...))
}

// Ensure fails when cond is false. It returns the failing Result and true,
// which the caller returns immediately; when cond holds it returns false
// and the caller carries on.
//
//	if r, failed := bridge.Ensure[string](len(name) > 0, "name is required"); failed {
//		return r
//	}
//
// The reason accepts the forms of New, or an Expr optionally followed by a
// detail reason. Without a reason the message names the call site.
func Ensure[T any](cond bool, reason ...any) (Result[T], bool) {
	if cond {
		return Result[T]{}, false
	}
	return Fail[T](conditionError(1, reason)), true
}

// EnsureThen returns the failure when cond is false and rest() otherwise,
// keeping the check and the remainder of the command in one expression. A
// nil reason behaves like Ensure without a reason.
func EnsureThen[T any](cond bool, reason any, rest func() Result[T]) Result[T] {
	if cond {
		return rest()
	}
	if reason == nil {
		return Fail[T](conditionError(1, nil))
	}
	return Fail[T](conditionError(1, []any{reason}))
}

// conditionError builds the failure for a false condition. skip counts the
// frames between conditionError and the exported caller.
func conditionError(skip int, reason []any) error {
	if len(reason) == 0 {
		return New(callSite(skip + 1))
	}

	expr, ok := reason[0].(Expr)
	if !ok {
		return New(reason[0], reason[1:]...)
	}

	msg := fmt.Sprintf("%s: `%s`", conditionFailed, expr)
	if len(reason) == 1 {
		return New(msg)
	}
	return Wrap(New(reason[1], reason[2:]...), msg)
}

// callSite names the frame skip levels above its caller, e.g.
// "Condition failed at demo.go:42".
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return conditionFailed
	}
	return fmt.Sprintf("%s at %s:%d", conditionFailed, filepath.Base(file), line)
}
