package bridge_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
)

type settings struct {
	Theme string
	Tabs  []string
}

func TestInto_SuccessIsIdentity(t *testing.T) {
	t.Parallel()

	want := settings{Theme: "dark", Tabs: []string{"a", "b"}}

	r := bridge.Into(want, nil)

	require.True(t, r.IsOk())
	assert.Equal(t, want, r.Value())
}

func TestInto_FailureKeepsMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "sentinel", err: errRoot},
		{name: "fmt chain", err: fmt.Errorf("read settings: %w", errRoot)},
		{name: "bridge chain", err: bridge.Wrap(errRoot, "read settings")},
		{name: "custom type", err: &opaqueError{msg: "sync failed", cause: errRoot}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := bridge.Into(settings{Theme: "ignored"}, tt.err)

			require.False(t, r.IsOk())
			assert.Zero(t, r.Value().Theme, "failed result must not carry a value")
			assert.Equal(t, bridge.Chain(tt.err)[0], r.Err().Message())
			assert.ErrorIs(t, r.Err(), errRoot)
		})
	}
}

func TestInto_CommandErrorIsNotWrappedAgain(t *testing.T) {
	t.Parallel()

	ce := bridge.NewCommandError(errRoot)

	r := bridge.Into(0, ce)

	assert.Same(t, ce, r.Err())
}

func TestDo(t *testing.T) {
	t.Parallel()

	ok := bridge.Do(func() (string, error) { return "this function succeeds", nil })
	assert.Equal(t, "this function succeeds", ok.Value())

	failed := bridge.Do(func() (string, error) { return "", errors.New("boom") })
	assert.Equal(t, "boom", failed.Err().Error())
}

func TestFail(t *testing.T) {
	t.Parallel()

	r := bridge.Fail[string](bridge.New("Showcase of the .into_ta_result()"))

	require.False(t, r.IsOk())
	assert.Equal(t, "Showcase of the .into_ta_result()", r.Err().Serialize())
}

func TestFail_NilErrorStillFails(t *testing.T) {
	t.Parallel()

	r := bridge.Fail[int](nil)

	require.False(t, r.IsOk())
	assert.Equal(t, "unknown error", r.Err().Error())
}

func TestFailEmpty(t *testing.T) {
	t.Parallel()

	r := bridge.FailEmpty(bridge.New("some err"))

	require.False(t, r.IsOk())
	assert.Equal(t, bridge.Empty{}, r.Value())
	assert.Equal(t, "some err", r.Err().Message())
}
