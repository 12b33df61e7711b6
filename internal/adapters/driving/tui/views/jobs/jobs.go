// Package jobs provides the applications screen for the TUI.
package jobs

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/components/input"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/components/list"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
)

// statusCycle is the order the status filter steps through.
var statusCycle = append([]domain.JobStatus{services.StatusAll}, domain.AllJobStatuses()...)

// View lists job applications with a text filter and a status filter.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	tracker driving.TrackerService

	filter *input.FilterInput
	list   *list.JobList
	status domain.JobStatus
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates a new jobs view.
func NewView(s *styles.Styles, tracker driving.TrackerService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		tracker: tracker,
		filter:  input.NewFilterInput(s, "Filter", "company or role..."),
		list:    list.NewJobList(s, "No applications match."),
		status:  services.StatusAll,
	}
}

// Init loads the jobs.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh reapplies the filters to the tracker's jobs.
func (v *View) Refresh() {
	if v.tracker == nil {
		return
	}
	v.list.SetJobs(services.FilterJobs(v.tracker.Jobs(), v.filter.Value(), v.status))
}

// Update handles messages for the jobs view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.JobDeleted:
		v.err = msg.Err
		v.Refresh()
		return v, nil

	case tea.KeyMsg:
		if v.filter.Focused() {
			return v.handleFilterKey(msg)
		}
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleFilterKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		v.filter.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	v.Refresh()
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Filter):
		return v, v.filter.Focus()
	case keymap.Matches(key, v.keymap.CycleStatus):
		v.cycleStatus()
		return v, nil
	case keymap.Matches(key, v.keymap.Delete):
		return v, v.deleteSelected()
	case keymap.Matches(key, v.keymap.Refresh):
		v.Refresh()
		return v, nil
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *View) cycleStatus() {
	for i, s := range statusCycle {
		if s == v.status {
			v.status = statusCycle[(i+1)%len(statusCycle)]
			break
		}
	}
	v.Refresh()
}

func (v *View) deleteSelected() tea.Cmd {
	job := v.list.SelectedJob()
	if job == nil || v.tracker == nil {
		return nil
	}
	id := job.ID
	tracker := v.tracker
	return func() tea.Msg {
		return messages.JobDeleted{ID: id, Err: tracker.DeleteJob(context.Background(), id)}
	}
}

// View renders the jobs view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Applications"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("status: %s  (%d shown)", v.status, v.list.Count())))
	b.WriteString("\n\n")
	b.WriteString(v.filter.View())
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n")

	if job := v.list.SelectedJob(); job != nil {
		b.WriteString("\n")
		b.WriteString(v.renderDetail(job))
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[/] filter  [s] status  [d] delete  [r] refresh  [esc] menu"))
	return b.String()
}

func (v *View) renderDetail(job *domain.JobApplication) string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(job.Role + " @ " + job.Company))
	b.WriteString("\n")
	if job.Location != "" {
		b.WriteString(fmt.Sprintf("  Location: %s\n", job.Location))
	}
	if job.Salary != "" {
		b.WriteString(fmt.Sprintf("  Salary:   %s\n", job.Salary))
	}
	if job.InterviewDate != "" {
		b.WriteString(fmt.Sprintf("  Interview: %s\n", job.InterviewDate))
	}
	if job.RejectionReason != "" {
		b.WriteString(fmt.Sprintf("  Reason:   %s\n", job.RejectionReason))
	}
	var extras []string
	if job.CoverLetter != "" {
		extras = append(extras, "cover letter")
	}
	if job.InterviewGuide != "" {
		extras = append(extras, "interview guide")
	}
	if job.SkillGapAnalysis != "" {
		extras = append(extras, "skill gap")
	}
	if len(extras) > 0 {
		b.WriteString(v.styles.Muted.Render("  Has: " + strings.Join(extras, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.filter.SetWidth(width)
	v.list.SetDimensions(width, max(height-14, 3))
}

// Capturing reports whether the filter is consuming keystrokes.
func (v *View) Capturing() bool {
	return v.filter.Focused()
}

// Status returns the active status filter.
func (v *View) Status() domain.JobStatus {
	return v.status
}

// Jobs returns the jobs currently shown.
func (v *View) Jobs() []domain.JobApplication {
	return v.list.Jobs()
}
