package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jsamuelsen11/go-command-bridge/internal/adapters/clients/invoker"
)

// InvokeCmd invokes one command.
type InvokeCmd struct {
	Command string `arg:"" help:"Command name, e.g. test_bail."`
	Args    string `short:"a" placeholder:"JSON" help:"JSON arguments for the command."`
	Query   string `short:"q" placeholder:"PATH" help:"gjson path selecting part of the result."`
	Pretty  bool   `help:"Indent the JSON result."`
}

// Validate is called by kong after parsing.
func (c *InvokeCmd) Validate() error {
	if c.Args != "" && !gjson.Valid(c.Args) {
		return fmt.Errorf("--args is not valid JSON: %s", c.Args)
	}
	return nil
}

// Run prints the command's result on stdout. A command failure is printed on
// stderr and returned so the process exits with ExitCommandFailed.
func (c *InvokeCmd) Run(globals *Globals) error {
	return c.run(context.Background(), globals)
}

func (c *InvokeCmd) run(ctx context.Context, globals *Globals) error {
	if globals.Invoker == nil {
		return errNotConnected
	}

	var args json.RawMessage
	if c.Args != "" {
		args = json.RawMessage(c.Args)
	}

	data, err := globals.Invoker.Invoke(ctx, c.Command, args)
	if err != nil {
		var remote *invoker.RemoteError
		if errors.As(err, &remote) {
			fmt.Fprintf(globals.Stderr, "%s %s\n", globals.styles.Failed.Render("error:"), remote.Message)
		}
		return err
	}

	out, err := selectResult(data, c.Query, c.Pretty)
	if err != nil {
		return err
	}
	fmt.Fprintln(globals.Stdout, out)
	return nil
}

// selectResult applies the optional gjson query to data. A string result is
// printed without quotes; anything else as JSON.
func selectResult(data json.RawMessage, query string, pretty bool) (string, error) {
	res := gjson.ParseBytes(data)
	if query != "" {
		res = res.Get(query)
		if !res.Exists() {
			return "", fmt.Errorf("query %q matched nothing in %s", query, data)
		}
	}

	if res.Type == gjson.String {
		return res.String(), nil
	}
	if pretty {
		return strings.TrimSpace(res.Get("@pretty").Raw), nil
	}
	return res.Raw, nil
}

var errNotConnected = errors.New("not connected to a host")
