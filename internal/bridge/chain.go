package bridge

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// linkSeparator joins chain links when a chain is rendered.
const linkSeparator = ": "

// maxChainDepth bounds how many links a render lists. Links past the bound
// are elided, and the innermost one is still shown after elidedMarker.
const maxChainDepth = 1 << 14

// maxTailDepth bounds the search for the innermost link of an elided chain
// so an Unwrap cycle that defeats cycle detection still terminates.
const maxTailDepth = 1 << 22

// elidedMarker stands in for the links a render skipped.
const elidedMarker = "…"

// unknownMessage stands in for a missing cause.
const unknownMessage = "unknown error"

// link is one {message, cause} node of a chained error.
type link struct {
	msg   string
	cause error
}

func (l *link) Error() string { return render(l) }

func (l *link) Unwrap() error { return l.cause }

// New builds a chained error from a reason:
//
//   - a string with no args is used verbatim as the message;
//   - a string with args is a format template (fmt.Errorf, so %w keeps the
//     wrapped error reachable through errors.Is/As);
//   - an error is returned as-is, or wrapped with fmt.Sprint(args...) as the
//     outer message when args are given;
//   - nil yields "unknown error";
//   - anything else, fmt.Stringer included, is rendered with fmt.Sprint
//     together with args. fmt turns a String method that panics on a nil
//     receiver into "<nil>".
func New(reason any, args ...any) error {
	switch r := reason.(type) {
	case nil:
		return &link{msg: unknownMessage}
	case string:
		if len(args) == 0 {
			return &link{msg: r}
		}
		return fmt.Errorf(r, args...)
	case error:
		if len(args) == 0 {
			return r
		}
		return &link{msg: fmt.Sprint(args...), cause: r}
	default:
		return &link{msg: fmt.Sprint(append([]any{r}, args...)...)}
	}
}

// Wrap adds msg as context in front of err. A nil err yields a single-link
// chain holding msg.
func Wrap(err error, msg string) error {
	return &link{msg: msg, cause: err}
}

// Wrapf is Wrap with a format template.
func Wrapf(err error, format string, args ...any) error {
	return &link{msg: fmt.Sprintf(format, args...), cause: err}
}

// Chain returns the messages of err's links, outermost first. Links that
// only forward their cause contribute nothing. A chain longer than the
// render bound lists its first links, then "…", then its innermost message.
func Chain(err error) []string {
	var (
		msgs  []string
		text  string
		known bool
	)
	for depth := 0; err != nil; depth++ {
		if depth == maxChainDepth {
			return appendTail(msgs, err)
		}
		next := errors.Unwrap(err)
		s := split(err, next, text, known)
		if s.msg != "" {
			msgs = append(msgs, s.msg)
		}
		if !s.descend {
			break
		}
		err, text, known = next, s.inner, s.innerKnown
	}
	return msgs
}

// appendTail closes a chain that reached the render bound at err: the
// marker, then the message of the innermost link reachable from err. A
// cyclic chain has no innermost link and ends at the marker.
func appendTail(msgs []string, err error) []string {
	if errors.Unwrap(err) != nil {
		msgs = append(msgs, elidedMarker)
	}
	root, ok := innermost(err)
	if !ok {
		return msgs
	}
	if s := split(root, nil, "", false); s.msg != "" {
		msgs = append(msgs, s.msg)
	}
	return msgs
}

// innermost follows Unwrap from err to the last link. It reports false when
// the chain loops back on itself, detected by walking a second cursor at
// half speed (Floyd), or when the walk runs past maxTailDepth.
func innermost(err error) (error, bool) {
	slow, fast := err, err
	for i := 0; i < maxTailDepth; i++ {
		next := errors.Unwrap(fast)
		if next == nil {
			return fast, true
		}
		fast = next
		if i%2 == 1 {
			slow = errors.Unwrap(slow)
			if sameLink(slow, fast) {
				return nil, false
			}
		}
	}
	return nil, false
}

// sameLink reports whether a and b are the same pointer-shaped error. Other
// error values may not be comparable, so they never match.
func sameLink(a, b error) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || ta.Kind() != reflect.Pointer {
		return false
	}
	return a == b
}

// render joins the chain of err outer-to-inner.
func render(err error) string {
	return strings.Join(Chain(err), linkSeparator)
}

// step is the outcome of splitting one link off a chain.
type step struct {
	msg     string // text owned by the link itself
	descend bool   // whether the walk continues into the cause
	// inner is the cause's Error() text, handed to the next split so each
	// link's Error() runs once per walk.
	inner      string
	innerKnown bool
}

// split returns the message owned by err itself and whether the walk should
// continue into next. text is err's Error() when known is set. Errors whose
// text already embeds their cause somewhere other than the tail are
// rendered whole and end the walk.
func split(err, next error, text string, known bool) step {
	switch e := err.(type) {
	case *link:
		return step{msg: e.msg, descend: true}
	case *CommandError:
		return step{descend: true}
	}

	full := text
	if !known {
		full = safeError(err)
	}
	if next == nil {
		return step{msg: full}
	}

	inner := safeError(next)
	s := step{descend: true, inner: inner, innerKnown: true}
	switch {
	case full == inner:
	case strings.HasSuffix(full, linkSeparator+inner):
		s.msg = strings.TrimSuffix(full, linkSeparator+inner)
	case strings.Contains(full, inner):
		s = step{msg: full}
	default:
		s.msg = full
	}
	return s
}

// safeError calls err.Error, converting a panic (typically a nil pointer
// behind a non-nil interface) into a placeholder message.
func safeError(err error) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("<%T: %v>", err, r)
		}
	}()
	return err.Error()
}
