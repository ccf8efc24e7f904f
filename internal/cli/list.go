package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListCmd lists the host's commands.
type ListCmd struct {
	JSON bool `help:"Print the listing as JSON."`
}

// Run prints one command per line, or a JSON array with --json.
func (c *ListCmd) Run(globals *Globals) error {
	return c.run(context.Background(), globals)
}

func (c *ListCmd) run(ctx context.Context, globals *Globals) error {
	if globals.Invoker == nil {
		return errNotConnected
	}

	cmds, err := globals.Invoker.List(ctx)
	if err != nil {
		return err
	}

	if c.JSON {
		type entry struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		entries := make([]entry, 0, len(cmds))
		for _, cmd := range cmds {
			entries = append(entries, entry{Name: cmd.Name, Description: cmd.Description})
		}
		enc := json.NewEncoder(globals.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Name))
	}
	for _, cmd := range cmds {
		fmt.Fprintf(globals.Stdout, "%s  %s\n",
			globals.styles.Name.Render(fmt.Sprintf("%-*s", width, cmd.Name)),
			globals.styles.Dim.Render(cmd.Description),
		)
	}
	return nil
}
