// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// JobList displays job applications in a navigable list.
type JobList struct {
	jobs     []domain.JobApplication
	selected int
	styles   *styles.Styles
	width    int
	height   int
	empty    string
}

// NewJobList creates a new job list component.
// empty is shown when there are no jobs.
func NewJobList(s *styles.Styles, empty string) *JobList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &JobList{
		styles: s,
		width:  80,
		height: 10,
		empty:  empty,
	}
}

// Init initialises the list.
func (l *JobList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *JobList) Update(msg tea.Msg) (*JobList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *JobList) View() string {
	if len(l.jobs) == 0 {
		return l.styles.Muted.Render(l.empty)
	}

	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.jobs))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderJob(i, &l.jobs[i]))
	}
	return strings.Join(lines, "\n")
}

// renderJob formats one row: role, company, status and date.
func (l *JobList) renderJob(index int, job *domain.JobApplication) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	nameWidth := l.width - 30
	if nameWidth < 20 {
		nameWidth = 20
	}
	name := clip(fmt.Sprintf("%s @ %s", job.Role, job.Company), nameWidth)
	status := fmt.Sprintf("%-10s", job.Status)

	if index == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("%s%-*s %s %s", indicator, nameWidth, name, status, job.DateApplied))
	}
	return l.styles.Normal.Render(fmt.Sprintf("%s%-*s ", indicator, nameWidth, name)) +
		l.styles.Status(job.Status).Render(status) + " " +
		l.styles.Muted.Render(job.DateApplied)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// SetJobs replaces the list, keeping the selection in range.
func (l *JobList) SetJobs(jobs []domain.JobApplication) {
	l.jobs = jobs
	if l.selected >= len(jobs) {
		l.selected = max(len(jobs)-1, 0)
	}
}

// Jobs returns the current jobs.
func (l *JobList) Jobs() []domain.JobApplication {
	return l.jobs
}

// Selected returns the index of the selected job.
func (l *JobList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *JobList) SetSelected(index int) {
	if index >= 0 && index < len(l.jobs) {
		l.selected = index
	}
}

// SelectedJob returns the currently selected job, or nil if none.
func (l *JobList) SelectedJob() *domain.JobApplication {
	if len(l.jobs) == 0 || l.selected < 0 || l.selected >= len(l.jobs) {
		return nil
	}
	return &l.jobs[l.selected]
}

// MoveUp moves selection up.
func (l *JobList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *JobList) MoveDown() {
	if l.selected < len(l.jobs)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *JobList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of jobs.
func (l *JobList) Count() int {
	return len(l.jobs)
}
