// Package dashboard provides the pipeline overview screen for the TUI.
package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
)

const maxBarWidth = 30

// View shows stat cards, weekly activity and recent applications.
type View struct {
	styles  *styles.Styles
	tracker driving.TrackerService

	metrics domain.DerivedMetrics
	weekly  []domain.WeeklyBucket
	width   int
	height  int
	ready   bool
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, tracker driving.TrackerService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		tracker: tracker,
	}
}

// Init recomputes the metrics.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh recomputes the metrics from the tracker.
func (v *View) Refresh() {
	if v.tracker == nil {
		return
	}
	v.metrics = v.tracker.Metrics()
	v.weekly = v.tracker.WeeklyActivity()
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.String() == "r" {
			v.Refresh()
		}
	}
	return v, nil
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Dashboard"))
	b.WriteString("\n\n")

	cards := []string{
		v.card("Applications", fmt.Sprintf("%d", v.metrics.TotalApplications)),
		v.card("Interviews", fmt.Sprintf("%d", v.metrics.TotalInterviews)),
		v.card("Offers", fmt.Sprintf("%d", v.metrics.TotalOffers)),
		v.card("Conversion", fmt.Sprintf("%.1f%%", v.metrics.ConversionRate)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Weekly Activity"))
	b.WriteString("\n")
	b.WriteString(v.renderWeekly())
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Recent Applications"))
	b.WriteString("\n")
	if len(v.metrics.RecentStatus) == 0 {
		b.WriteString(v.styles.Muted.Render("No applications yet."))
	}
	for _, j := range v.metrics.RecentStatus {
		b.WriteString(fmt.Sprintf("  %s  %s @ %s\n",
			v.styles.Status(j.Status).Render(fmt.Sprintf("%-10s", j.Status)), j.Role, j.Company))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[r] refresh  [esc] menu  [q] quit"))
	return b.String()
}

func (v *View) card(label, value string) string {
	return v.styles.Card.Render(
		v.styles.Muted.Render(label) + "\n" + v.styles.Title.Render(value),
	)
}

// renderWeekly draws one bar per week scaled to the busiest week.
func (v *View) renderWeekly() string {
	peak := 0
	for _, w := range v.weekly {
		peak = max(peak, w.Apps)
	}

	lines := make([]string, 0, len(v.weekly))
	for _, w := range v.weekly {
		width := 0
		if peak > 0 {
			width = w.Apps * maxBarWidth / peak
		}
		bar := v.styles.Title.Render(strings.Repeat("█", width))
		lines = append(lines, fmt.Sprintf("  %-7s %s %d", w.Name, bar, w.Apps))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Metrics returns the last computed metrics.
func (v *View) Metrics() domain.DerivedMetrics {
	return v.metrics
}

// Weekly returns the last computed weekly buckets.
func (v *View) Weekly() []domain.WeeklyBucket {
	return v.weekly
}
