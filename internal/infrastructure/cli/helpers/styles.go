package helpers

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by every command's text output.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Styles are bound to one lipgloss renderer so color can be forced on or off
// per output stream.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Command lipgloss.Style
}

// NewStyles builds the palette on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Muted:   r.NewStyle().Foreground(ColorMuted),
		Success: r.NewStyle().Foreground(ColorSuccess),
		Error:   r.NewStyle().Bold(true).Foreground(ColorError),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Command: r.NewStyle().Foreground(ColorHighlight).TabWidth(lipgloss.NoTabConversion),
	}
}
