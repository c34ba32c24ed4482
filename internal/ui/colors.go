package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for CLI messages, as basic ANSI codes so they follow the
// terminal theme.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// Styles renders CLI messages for one color profile.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns message styles for profile. termenv.Ascii yields plain text.
func NewStyles(profile termenv.Profile) Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	return Styles{
		Success: r.NewStyle().Foreground(ColorSuccess),
		Error:   r.NewStyle().Foreground(ColorError).Bold(true),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Info:    r.NewStyle().Foreground(ColorInfo),
		Muted:   r.NewStyle().Foreground(ColorMuted),
	}
}
