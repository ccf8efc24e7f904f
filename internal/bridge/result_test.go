package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
)

func TestResult_ZeroValueIsOk(t *testing.T) {
	t.Parallel()

	var r bridge.Result[int]

	assert.True(t, r.IsOk())
	assert.Zero(t, r.Value())
	assert.Nil(t, r.Err())
}

func TestResult_UnpackOk(t *testing.T) {
	t.Parallel()

	v, err := bridge.Ok("done").Unpack()

	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestResult_UnpackErrReturnsCommandError(t *testing.T) {
	t.Parallel()

	v, err := bridge.Fail[string](errRoot).Unpack()

	require.Error(t, err)
	assert.Empty(t, v)

	var ce *bridge.CommandError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "connection refused", ce.Message())
}

func TestResult_Any(t *testing.T) {
	t.Parallel()

	ok := bridge.Ok(42).Any()
	assert.True(t, ok.IsOk())
	assert.Equal(t, 42, ok.Value())

	failed := bridge.Fail[int](errRoot).Any()
	assert.False(t, failed.IsOk())
	assert.Nil(t, failed.Value())
	assert.Equal(t, "connection refused", failed.Err().Error())
}
