package bridge

// Mode selects how much of a failure is visible once serialized.
type Mode uint8

const (
	// Verbose serializes the full cause chain.
	Verbose Mode = iota
	// Redacted serializes RedactedMessage regardless of the cause.
	Redacted
)

// RedactedMessage is the only text a Redacted build ever serializes for a
// failure.
const RedactedMessage = "errors disabled in production."

// String returns "verbose" or "redacted".
func (m Mode) String() string {
	switch m {
	case Verbose:
		return "verbose"
	case Redacted:
		return "redacted"
	default:
		return "unknown"
	}
}

// BuildMode reports the mode compiled into this binary.
func BuildMode() Mode {
	return buildMode
}
