// Package style provides shared UI styling primitives including colors and
// icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Copper = lipgloss.Color("#C2703D")
	Slate  = lipgloss.Color("#64748B")
	Ink    = lipgloss.Color("#0F172A")
	Mist   = lipgloss.Color("#F1F5F9")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
	Blue   = lipgloss.Color("#2563EB")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Cached  = "↻"
	Dot     = "●"
	Circle  = "○"
)
