package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
	"github.com/jsamuelsen11/go-command-bridge/internal/ports"
)

// Demo command names.
const (
	CmdTest             = "test"
	CmdSuccess          = "test_anyhow_success"
	CmdThrow            = "test_throw"
	CmdPureErr          = "test_pure_err_conversion"
	CmdBail             = "test_bail"
	CmdEnsure           = "test_ensure"
	CmdDivide           = "divide"
	CmdEcho             = "echo"
	unreachableResponse = "this should never trigger"
)

// RegisterDemo registers the demo command set on reg.
func RegisterDemo(reg ports.CommandRegistry) error {
	return errors.Join(
		Register(reg, domain.Command{Name: CmdTest, Description: "Succeeds with a fixed message."}, demoTest),
		Register(reg, domain.Command{Name: CmdSuccess, Description: "Converts a succeeding computation."}, demoSuccess),
		Register(reg, domain.Command{Name: CmdThrow, Description: "Propagates a failure from a helper."}, demoThrow),
		Register(reg, domain.Command{Name: CmdPureErr, Description: "Converts an error value directly."}, demoPureErr),
		Register(reg, domain.Command{Name: CmdBail, Description: "Fails early with Bail."}, demoBail),
		Register(reg, domain.Command{Name: CmdEnsure, Description: "Fails a condition with Ensure."}, demoEnsure),
		Register(reg, domain.Command{Name: CmdDivide, Description: "Divides two integers."}, divide),
		Register(reg, domain.Command{Name: CmdEcho, Description: "Returns its arguments."}, echo),
	)
}

func succeeds() (string, error) {
	return "this function succeeds", nil
}

func throws() error {
	return bridge.New("Simulating a possible throw")
}

func demoTest(_ context.Context, _ bridge.Empty) bridge.Result[string] {
	return bridge.Ok("No error thrown.")
}

func demoSuccess(_ context.Context, _ bridge.Empty) bridge.Result[string] {
	return bridge.Into(succeeds())
}

func demoThrow(_ context.Context, _ bridge.Empty) bridge.Result[string] {
	if err := throws(); err != nil {
		return bridge.Fail[string](err)
	}
	return bridge.Ok(unreachableResponse)
}

func demoPureErr(_ context.Context, _ bridge.Empty) bridge.Result[string] {
	_ = bridge.FailEmpty(bridge.New("some err"))
	return bridge.Fail[string](bridge.New("Showcase of the .into_ta_result()"))
}

func demoBail(_ context.Context, _ bridge.Empty) bridge.Result[string] {
	return bridge.Bail[string]("Showcase of the .bail!()")
}

func demoEnsure(_ context.Context, _ bridge.Empty) bridge.Result[string] {
	if r, failed := bridge.Ensure[string](1 == 2, bridge.Expr("1 == 2")); failed {
		return r
	}
	return bridge.Ok(unreachableResponse)
}

type divideArgs struct {
	Dividend int  `json:"dividend"`
	Divisor  int  `json:"divisor"`
	Exact    bool `json:"exact,omitempty"`
}

func divide(_ context.Context, in divideArgs) bridge.Result[int] {
	if r, failed := bridge.Ensure[int](in.Divisor != 0, bridge.Expr("divisor != 0"),
		"cannot divide %d by zero", in.Dividend); failed {
		return r
	}
	return bridge.Into(quotient(in))
}

func quotient(in divideArgs) (int, error) {
	q, rem := in.Dividend/in.Divisor, in.Dividend%in.Divisor
	if in.Exact && rem != 0 {
		return 0, bridge.Wrapf(fmt.Errorf("remainder %d", rem), "dividing %d by %d", in.Dividend, in.Divisor)
	}
	return q, nil
}

type echoArgs struct {
	Message string `json:"message"`
}

func echo(_ context.Context, in echoArgs) bridge.Result[echoArgs] {
	return bridge.Ok(in)
}
