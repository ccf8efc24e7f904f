// Package cli implements bridgectl, the frontend that invokes host commands
// from a terminal. Commands are declared as a kong command tree; every Run
// method receives the shared *Globals.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jsamuelsen11/go-command-bridge/internal/adapters/clients/invoker"
	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/config"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/logging"
	"github.com/jsamuelsen11/go-command-bridge/internal/ports"
)

// hostServiceName names the host in client spans, metrics and health output.
const hostServiceName = "command-host"

// Exit codes returned by ExitCode.
const (
	ExitOK            = 0
	ExitFault         = 1
	ExitCommandFailed = 2
)

// CLI is the root of the bridgectl command tree.
type CLI struct {
	Profile   string `short:"p" default:"local" env:"APP_PROFILE" help:"Config profile to load."`
	ConfigDir string `default:"configs" help:"Directory holding base.yaml and the profile files."`
	BaseURL   string `help:"Host base URL; overrides client.base_url."`
	NoColor   bool   `help:"Disable styled output."`
	Verbose   bool   `short:"v" help:"Log client diagnostics to stderr."`

	Invoke  InvokeCmd  `cmd:"" help:"Invoke one command and print its result."`
	List    ListCmd    `cmd:"" help:"List the commands the host exposes."`
	Smoke   SmokeCmd   `cmd:"" help:"Invoke every listed command and report each outcome."`
	Version VersionCmd `cmd:"" help:"Show version and error serialization mode."`
}

// Globals is the state shared by all commands.
type Globals struct {
	Stdout io.Writer
	Stderr io.Writer

	// Invoker reaches the host. It is nil until Connect succeeds.
	Invoker ports.CommandInvoker

	// MaxConcurrency bounds concurrent invocations in smoke.
	MaxConcurrency int

	styles styles
}

// NewGlobals builds Globals for the parsed flags. Output is styled only when
// stdout is a terminal and --no-color is not set.
func NewGlobals(c *CLI, stdout, stderr io.Writer) *Globals {
	return &Globals{
		Stdout:         stdout,
		Stderr:         stderr,
		MaxConcurrency: 1,
		styles:         newStyles(useColor(stdout, c.NoColor)),
	}
}

// Connect loads configuration for the selected profile and builds the
// client for the host.
func (g *Globals) Connect(c *CLI) error {
	cfg, err := config.Load(c.Profile, config.WithConfigDir(c.ConfigDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if c.BaseURL != "" {
		cfg.Client.BaseURL = c.BaseURL
	}

	level := "warn"
	if c.Verbose {
		level = "debug"
	}
	logger := logging.New(level, logging.FormatText, g.Stderr)

	hc := httpclient.New(&cfg.Client, hostServiceName, nil, logger)
	g.Invoker = invoker.New(hc, logger)
	g.MaxConcurrency = cfg.Commands.MaxConcurrency
	return nil
}

// ExitCode maps the error a command returned to the process exit code.
// Command failures get their own code so scripts can tell them apart from
// faults reaching the host.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrCommandFailed):
		return ExitCommandFailed
	default:
		return ExitFault
	}
}
