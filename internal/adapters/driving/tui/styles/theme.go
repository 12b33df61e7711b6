// Package styles holds the TUI palette and the lipgloss styles built from it.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// Theme is the colour palette.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color
}

// DefaultTheme is the blue HireWire palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"),
		Secondary:  lipgloss.Color("#8B5CF6"),
		Foreground: lipgloss.Color("#F1F5F9"),
		Muted:      lipgloss.Color("#94A3B8"),
		Success:    lipgloss.Color("#10B981"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Border:     lipgloss.Color("#1E293B"),
		Bar:        lipgloss.Color("#0B1120"),
	}
}

// Styles are the lipgloss styles every view renders with.
type Styles struct {
	theme  *Theme
	status map[domain.JobStatus]lipgloss.Style

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Help       lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	// Card frames a dashboard stat.
	Card lipgloss.Style
	// Sidebar is the navigation menu column.
	Sidebar lipgloss.Style
}

// NewStyles builds styles from theme, falling back to DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	s := &Styles{
		theme:    theme,
		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Foreground).Background(theme.Primary).Bold(true),
		Error:    fg(theme.Error),
		Success:  fg(theme.Success),
		Warning:  fg(theme.Warning),
		Help:     fg(theme.Muted).Italic(true),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),
		StatusBar: fg(theme.Muted).Background(theme.Bar).Padding(0, 1),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2).
			Width(20),
		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(theme.Border).
			PaddingRight(2).
			Width(26),
	}

	// Badge colours follow the pipeline: pending, talking, won, lost.
	s.status = map[domain.JobStatus]lipgloss.Style{
		domain.StatusApplied:   fg(theme.Warning),
		domain.StatusInterview: fg(theme.Secondary),
		domain.StatusOffer:     fg(theme.Success).Bold(true),
		domain.StatusAccepted:  fg(theme.Success).Bold(true),
		domain.StatusRejected:  fg(theme.Error),
	}
	return s
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Status returns the badge style for a pipeline stage.
func (s *Styles) Status(status domain.JobStatus) lipgloss.Style {
	if st, ok := s.status[status]; ok {
		return st
	}
	return s.Muted
}
