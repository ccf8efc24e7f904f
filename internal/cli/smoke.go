package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-command-bridge/internal/adapters/clients/invoker"
	"github.com/jsamuelsen11/go-command-bridge/internal/app/fanout"
	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
)

// SmokeCmd invokes every listed command without arguments. Command
// failures are expected outcomes; only faults reaching the host fail the
// run.
type SmokeCmd struct {
	Concurrency int           `short:"c" help:"Concurrent invocations; 0 uses commands.max_concurrency."`
	Timeout     time.Duration `default:"30s" help:"Deadline for the whole run."`
}

// outcome classifies one smoke invocation.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeFailed
	outcomeFault
)

func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrCommandFailed):
		return outcomeFailed
	default:
		return outcomeFault
	}
}

// Run prints one line per command, in listing order, then a summary.
func (c *SmokeCmd) Run(globals *Globals) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()
	return c.run(ctx, globals)
}

func (c *SmokeCmd) run(ctx context.Context, globals *Globals) error {
	if globals.Invoker == nil {
		return errNotConnected
	}

	cmds, err := globals.Invoker.List(ctx)
	if err != nil {
		return err
	}

	workers := c.Concurrency
	if workers <= 0 {
		workers = globals.MaxConcurrency
	}

	results := fanout.Run(ctx, workers, cmds, func(ctx context.Context, cmd domain.Command) (string, error) {
		data, err := globals.Invoker.Invoke(ctx, cmd.Name, nil)
		return string(data), err
	})

	st := globals.styles
	var counts [3]int
	for i, res := range results {
		name := st.Name.Render(cmds[i].Name)
		kind := classify(res.Err)
		counts[kind]++

		switch kind {
		case outcomeOK:
			fmt.Fprintf(globals.Stdout, "%s %s %s\n", st.OK.Render("ok"), name, st.Dim.Render(res.Value))
		case outcomeFailed:
			msg := res.Err.Error()
			var remote *invoker.RemoteError
			if errors.As(res.Err, &remote) {
				msg = remote.Message
			}
			fmt.Fprintf(globals.Stdout, "%s %s %s\n", st.Failed.Render("error"), name, st.Dim.Render(msg))
		case outcomeFault:
			fmt.Fprintf(globals.Stdout, "%s %s %s\n", st.Fault.Render("fault"), name, res.Err.Error())
		}
	}

	fmt.Fprintln(globals.Stdout, st.Summary.Render(fmt.Sprintf("%d commands: %d ok, %d failed, %d faults",
		len(cmds), counts[outcomeOK], counts[outcomeFailed], counts[outcomeFault])))

	if counts[outcomeFault] > 0 {
		return fmt.Errorf("smoke: %d of %d commands hit host faults", counts[outcomeFault], len(cmds))
	}
	return nil
}
