// Package style provides shared colors and icons for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Cyan   = lipgloss.Color("#06B6D4")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Plus    = "+"
	Minus   = "-"
	Pointer = ">"
)

// Text styles used by interactive prompts.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	Selected = lipgloss.NewStyle().Foreground(Iris).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(Slate)
)
