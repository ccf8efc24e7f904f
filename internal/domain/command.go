package domain

import (
	"fmt"
	"strings"
)

// Command describes a named operation the host exposes to frontends.
type Command struct {
	Name        string
	Description string
}

// Validate checks that the command can be registered.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (c Command) Validate() error {
	fields := make(map[string]string)

	if msg := commandNameProblem(c.Name); msg != "" {
		fields["name"] = msg
	}
	if strings.TrimSpace(c.Description) == "" {
		fields["description"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateCommandName reports whether name may be used as a command name:
// non-empty, lower-case ASCII letters, digits and underscores only.
func ValidateCommandName(name string) error {
	if msg := commandNameProblem(name); msg != "" {
		return &ValidationError{Fields: map[string]string{"name": msg}}
	}
	return nil
}

func commandNameProblem(name string) string {
	if name == "" {
		return MsgRequired
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		default:
			return fmt.Sprintf("invalid character %q in %q", r, name)
		}
	}
	return ""
}
