package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styles holds the lipgloss styles used for terminal output. The zero
// value renders plain text.
type styles struct {
	Name    lipgloss.Style
	Dim     lipgloss.Style
	OK      lipgloss.Style
	Failed  lipgloss.Style
	Fault   lipgloss.Style
	Summary lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{Name: plain, Dim: plain, OK: plain, Failed: plain, Fault: plain, Summary: plain}
	}
	return styles{
		Name:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		OK:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Fault:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Summary: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}

// useColor reports whether w is a terminal that should get styled output.
func useColor(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
