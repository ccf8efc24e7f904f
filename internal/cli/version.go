package cli

import (
	"fmt"

	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
)

// Version information (set at build time).
var (
	Version = "dev"
	Commit  = "none"
)

// VersionCmd prints version information.
type VersionCmd struct{}

// Run prints the version and the error serialization mode compiled into
// this binary.
func (v *VersionCmd) Run(globals *Globals) error {
	fmt.Fprintf(globals.Stdout, "bridgectl %s (%s), %s errors\n", Version, Commit, bridge.BuildMode())
	return nil
}
