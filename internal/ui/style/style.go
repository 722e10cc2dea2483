// Package style provides shared UI styling primitives including colors and
// icons for consistent visual presentation across the tool.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Copper = lipgloss.Color("#C47A3D")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Blue   = lipgloss.Color("#2563EB")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Star    = "*"
	Dot     = "●"
	Circle  = "○"
)
