package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-command-bridge/internal/adapters/clients/invoker"
	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
	"github.com/jsamuelsen11/go-command-bridge/mocks"
)

// testGlobals returns plain-styled Globals backed by a mock invoker, with
// captured stdout and stderr.
func testGlobals(t *testing.T) (*Globals, *mocks.MockCommandInvoker, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	inv := mocks.NewMockCommandInvoker(t)
	return &Globals{
		Stdout:         stdout,
		Stderr:         stderr,
		Invoker:        inv,
		MaxConcurrency: 2,
		styles:         newStyles(false),
	}, inv, stdout, stderr
}

func parse(t *testing.T, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()
	var c CLI
	parser, err := kong.New(&c, kong.Name("bridgectl"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	return &c, ctx, err
}

// --- Parsing ---

func TestParse_GlobalsAndInvoke(t *testing.T) {
	c, ctx, err := parse(t, "--profile", "prod", "--base-url", "http://host:9000", "--no-color",
		"invoke", "divide", "--args", `{"dividend":7,"divisor":2}`, "--query", "@this")
	require.NoError(t, err)

	assert.Equal(t, "invoke <command>", ctx.Command())
	assert.Equal(t, "prod", c.Profile)
	assert.Equal(t, "http://host:9000", c.BaseURL)
	assert.True(t, c.NoColor)
	assert.Equal(t, "divide", c.Invoke.Command)
	assert.Equal(t, `{"dividend":7,"divisor":2}`, c.Invoke.Args)
}

func TestParse_Defaults(t *testing.T) {
	c, _, err := parse(t, "list")
	require.NoError(t, err)

	assert.Equal(t, "local", c.Profile)
	assert.Equal(t, "configs", c.ConfigDir)
	assert.False(t, c.NoColor)
}

func TestParse_RejectsInvalidArgsJSON(t *testing.T) {
	_, _, err := parse(t, "invoke", "echo", "--args", `{"message":`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--args is not valid JSON")
}

// --- ExitCode ---

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "command failure", err: fmt.Errorf("invoking: %w", &invoker.RemoteError{Command: "x", Message: "m"}), want: ExitCommandFailed},
		{name: "not found", err: domain.ErrNotFound, want: ExitFault},
		{name: "other", err: errors.New("connection refused"), want: ExitFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

// --- invoke ---

func TestInvokeCmd_PrintsResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		query  string
		pretty bool
		want   string
	}{
		{name: "string unquoted", data: `"No error thrown."`, want: "No error thrown."},
		{name: "number", data: `3`, want: "3"},
		{name: "object", data: `{"message":"hi"}`, want: `{"message":"hi"}`},
		{name: "query", data: `{"message":"hi","n":2}`, query: "message", want: "hi"},
		{name: "pretty", data: `{"n":2}`, pretty: true, want: "{\n  \"n\": 2\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			globals, inv, stdout, _ := testGlobals(t)
			inv.EXPECT().Invoke(mock.Anything, "echo", mock.Anything).Return(json.RawMessage(tt.data), nil)

			cmd := &InvokeCmd{Command: "echo", Query: tt.query, Pretty: tt.pretty}
			require.NoError(t, cmd.run(context.Background(), globals))

			assert.Equal(t, tt.want+"\n", stdout.String())
		})
	}
}

func TestInvokeCmd_PassesArgs(t *testing.T) {
	t.Parallel()

	globals, inv, _, _ := testGlobals(t)
	inv.EXPECT().Invoke(mock.Anything, "divide", json.RawMessage(`{"dividend":1,"divisor":1}`)).
		Return(json.RawMessage(`1`), nil)

	cmd := &InvokeCmd{Command: "divide", Args: `{"dividend":1,"divisor":1}`}
	require.NoError(t, cmd.run(context.Background(), globals))
}

func TestInvokeCmd_QueryMatchesNothing(t *testing.T) {
	t.Parallel()

	globals, inv, _, _ := testGlobals(t)
	inv.EXPECT().Invoke(mock.Anything, "echo", mock.Anything).Return(json.RawMessage(`{"message":"hi"}`), nil)

	err := (&InvokeCmd{Command: "echo", Query: "missing"}).run(context.Background(), globals)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `query "missing" matched nothing`)
}

func TestInvokeCmd_CommandFailure(t *testing.T) {
	t.Parallel()

	globals, inv, stdout, stderr := testGlobals(t)
	remote := &invoker.RemoteError{Command: "test_bail", Message: "Showcase of the .bail!()"}
	inv.EXPECT().Invoke(mock.Anything, "test_bail", mock.Anything).Return(nil, remote)

	err := (&InvokeCmd{Command: "test_bail"}).run(context.Background(), globals)

	require.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Equal(t, ExitCommandFailed, ExitCode(err))
	assert.Empty(t, stdout.String())
	assert.Equal(t, "error: Showcase of the .bail!()\n", stderr.String())
}

func TestInvokeCmd_NotConnected(t *testing.T) {
	t.Parallel()

	err := (&InvokeCmd{Command: "test"}).run(context.Background(), &Globals{})
	assert.ErrorIs(t, err, errNotConnected)
}

// --- list ---

func TestListCmd(t *testing.T) {
	t.Parallel()

	cmds := []domain.Command{
		{Name: "divide", Description: "Divides two integers."},
		{Name: "test", Description: "Succeeds with a fixed message."},
	}

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		globals, inv, stdout, _ := testGlobals(t)
		inv.EXPECT().List(mock.Anything).Return(cmds, nil)

		require.NoError(t, (&ListCmd{}).run(context.Background(), globals))
		assert.Equal(t, "divide  Divides two integers.\ntest    Succeeds with a fixed message.\n", stdout.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		globals, inv, stdout, _ := testGlobals(t)
		inv.EXPECT().List(mock.Anything).Return(cmds, nil)

		require.NoError(t, (&ListCmd{JSON: true}).run(context.Background(), globals))

		var got []map[string]string
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "divide", got[0]["name"])
		assert.Equal(t, "Succeeds with a fixed message.", got[1]["description"])
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		globals, inv, _, _ := testGlobals(t)
		inv.EXPECT().List(mock.Anything).Return(nil, domain.ErrUnavailable)

		assert.ErrorIs(t, (&ListCmd{}).run(context.Background(), globals), domain.ErrUnavailable)
	})
}

// --- smoke ---

func TestSmokeCmd_CommandFailuresAreExpected(t *testing.T) {
	t.Parallel()

	globals, inv, stdout, _ := testGlobals(t)
	inv.EXPECT().List(mock.Anything).Return([]domain.Command{{Name: "test"}, {Name: "test_bail"}}, nil)
	inv.EXPECT().Invoke(mock.Anything, "test", mock.Anything).Return(json.RawMessage(`"No error thrown."`), nil)
	inv.EXPECT().Invoke(mock.Anything, "test_bail", mock.Anything).
		Return(nil, &invoker.RemoteError{Command: "test_bail", Message: "Showcase of the .bail!()"})

	require.NoError(t, (&SmokeCmd{}).run(context.Background(), globals))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `ok test "No error thrown."`, lines[0])
	assert.Equal(t, "error test_bail Showcase of the .bail!()", lines[1])
	assert.Equal(t, "2 commands: 1 ok, 1 failed, 0 faults", lines[2])
}

func TestSmokeCmd_HostFaultFailsRun(t *testing.T) {
	t.Parallel()

	globals, inv, stdout, _ := testGlobals(t)
	inv.EXPECT().List(mock.Anything).Return([]domain.Command{{Name: "explode"}, {Name: "test"}}, nil)
	inv.EXPECT().Invoke(mock.Anything, "explode", mock.Anything).Return(nil, errors.New("host returned 500: internal server error"))
	inv.EXPECT().Invoke(mock.Anything, "test", mock.Anything).Return(json.RawMessage(`"No error thrown."`), nil)

	err := (&SmokeCmd{Concurrency: 1}).run(context.Background(), globals)

	require.Error(t, err)
	assert.Equal(t, ExitFault, ExitCode(err))
	assert.Contains(t, stdout.String(), "fault explode host returned 500")
	assert.Contains(t, stdout.String(), "2 commands: 1 ok, 0 failed, 1 faults")
}

func TestSmokeCmd_ListFails(t *testing.T) {
	t.Parallel()

	globals, inv, _, _ := testGlobals(t)
	inv.EXPECT().List(mock.Anything).Return(nil, domain.ErrUnavailable)

	assert.ErrorIs(t, (&SmokeCmd{}).run(context.Background(), globals), domain.ErrUnavailable)
}

// --- version ---

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	require.NoError(t, (&VersionCmd{}).Run(&Globals{Stdout: &stdout}))

	assert.Equal(t, fmt.Sprintf("bridgectl dev (none), %s errors\n", bridge.BuildMode()), stdout.String())
}

// --- styles ---

func TestUseColor_NonTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, useColor(&bytes.Buffer{}, false))
	assert.False(t, useColor(&bytes.Buffer{}, true))
}

func TestNewGlobals_PlainOutputForBuffers(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	g := NewGlobals(&CLI{}, &stdout, &bytes.Buffer{})

	assert.Equal(t, "ok", g.styles.OK.Render("ok"))
	assert.Nil(t, g.Invoker)
}
