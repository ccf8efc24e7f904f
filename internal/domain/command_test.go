package domain_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestValidateCommandName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "test", wantErr: false},
		{name: "underscores and digits", input: "test_bail_2", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "upper case", input: "Test", wantErr: true},
		{name: "dash", input: "test-bail", wantErr: true},
		{name: "space", input: "test bail", wantErr: true},
		{name: "path", input: "../test", wantErr: true},
		{name: "unicode", input: "tést", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := domain.ValidateCommandName(tt.input)
			if tt.wantErr {
				requireValidationField(t, err, "name")
				return
			}
			if err != nil {
				t.Errorf("ValidateCommandName(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}

func TestCommand_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		cmd := domain.Command{Name: "test_throw", Description: "Always fails"}
		if err := cmd.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		t.Parallel()

		cmd := domain.Command{Name: "test_throw"}
		requireValidationField(t, cmd.Validate(), "description")
	})

	t.Run("bad name", func(t *testing.T) {
		t.Parallel()

		cmd := domain.Command{Name: "Test", Description: "x"}
		requireValidationField(t, cmd.Validate(), "name")
	})
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"name":        "is required",
		"description": "is required",
	}}

	want := "validation error: description: is required; name: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
