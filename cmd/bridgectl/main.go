// Package main is bridgectl, a terminal frontend for the command host.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jsamuelsen11/go-command-bridge/internal/cli"
)

func main() {
	var c cli.CLI

	ctx := kong.Parse(&c,
		kong.Name("bridgectl"),
		kong.Description("Invoke command-host commands and inspect their results.\n\nCommand failures exit 2; faults reaching the host exit 1."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	globals := cli.NewGlobals(&c, os.Stdout, os.Stderr)

	if ctx.Command() != "version" {
		if err := globals.Connect(&c); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(cli.ExitFault)
		}
	}

	err := ctx.Run(globals)
	if err != nil && cli.ExitCode(err) == cli.ExitFault {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
