package bridge

// Into converts a fallible computation's (value, error) pair into a Result.
// A nil err passes v through untouched; any other err is wrapped once in a
// CommandError.
//
//	return bridge.Into(loadSettings(ctx))
func Into[T any](v T, err error) Result[T] {
	if err == nil {
		return Ok(v)
	}
	return Result[T]{err: NewCommandError(err)}
}

// Do runs fn and converts its outcome with Into.
func Do[T any](fn func() (T, error)) Result[T] {
	v, err := fn()
	return Into(v, err)
}

// Fail converts an error value the caller already holds into a failing
// Result. A nil err still fails, with "unknown error".
func Fail[T any](err error) Result[T] {
	return Result[T]{err: NewCommandError(err)}
}

// FailEmpty is Fail for commands whose success carries no value.
func FailEmpty(err error) Result[Empty] {
	return Fail[Empty](err)
}
