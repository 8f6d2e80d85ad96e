// Package progress prints the numbered sync stages to a terminal or log.
package progress

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colours used for progress output.
type Theme struct {
	// Primary colours banners and stage headers.
	Primary lipgloss.Color

	// Muted is for detail lines.
	Muted lipgloss.Color

	// Success marks completed steps.
	Success lipgloss.Color

	// Warning marks skipped or degraded steps.
	Warning lipgloss.Color

	// Error marks failures.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// styles holds the lipgloss styles bound to one output.
type styles struct {
	banner  lipgloss.Style
	stage   lipgloss.Style
	detail  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, theme *Theme) styles {
	return styles{
		banner:  r.NewStyle().Bold(true).Foreground(theme.Primary),
		stage:   r.NewStyle().Bold(true).Foreground(theme.Primary),
		detail:  r.NewStyle().Foreground(theme.Muted),
		success: r.NewStyle().Foreground(theme.Success),
		warning: r.NewStyle().Foreground(theme.Warning),
		failure: r.NewStyle().Bold(true).Foreground(theme.Error),
	}
}
