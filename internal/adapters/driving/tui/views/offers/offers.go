// Package offers provides the interviews and offers screen for the TUI.
package offers

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/components/list"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
)

// View lists jobs in the interview pipeline and runs guide and mock generation.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	tracker   driving.TrackerService
	assistant driving.AssistantService

	list    *list.JobList
	pending messages.GenerationKind
	outKind messages.GenerationKind
	outJob  string
	output  string
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new offers view. assistant may be nil.
func NewView(s *styles.Styles, tracker driving.TrackerService, assistant driving.AssistantService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		tracker:   tracker,
		assistant: assistant,
		list:      list.NewJobList(s, "No interviews or offers yet."),
	}
}

// Init loads the pipeline.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh reloads the interview pipeline.
func (v *View) Refresh() {
	if v.tracker == nil {
		return
	}
	v.list.SetJobs(services.InterviewPipeline(v.tracker.Jobs()))
}

// Update handles messages for the offers view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.GenerationCompleted:
		if msg.Kind != messages.GenerateGuide && msg.Kind != messages.GenerateMock {
			return v, nil
		}
		v.pending = ""
		v.err = msg.Err
		v.outKind = msg.Kind
		v.outJob = msg.JobID
		v.output = msg.Text
		v.Refresh()
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Generate):
			return v, v.generate(messages.GenerateGuide)
		case keymap.Matches(key, v.keymap.Mock):
			return v, v.generate(messages.GenerateMock)
		case keymap.Matches(key, v.keymap.Refresh):
			v.Refresh()
			return v, nil
		}
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) generate(kind messages.GenerationKind) tea.Cmd {
	job := v.list.SelectedJob()
	if job == nil || v.assistant == nil || v.pending != "" {
		return nil
	}
	v.pending = kind
	v.err = nil
	id := job.ID
	assistant := v.assistant
	return func() tea.Msg {
		var text string
		var err error
		if kind == messages.GenerateGuide {
			text, err = assistant.WriteInterviewGuide(context.Background(), id)
		} else {
			text, err = assistant.MockQuestions(context.Background(), id)
		}
		return messages.GenerationCompleted{Kind: kind, JobID: id, Text: text, Err: err}
	}
}

// View renders the offers view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(domain.ViewOffers.Title()))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.renderOutput())

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.assistant == nil {
		b.WriteString(v.styles.Help.Render("AI assistant not configured  [esc] menu"))
	} else {
		b.WriteString(v.styles.Help.Render("[g] interview guide  [m] mock questions  [esc] menu"))
	}
	return b.String()
}

func (v *View) renderOutput() string {
	job := v.list.SelectedJob()
	if v.pending != "" {
		return v.styles.Muted.Render("Generating...")
	}
	if job == nil {
		return ""
	}

	title := ""
	text := ""
	switch {
	case v.output != "" && v.outJob == job.ID:
		text = v.output
		title = "Interview Guide"
		if v.outKind == messages.GenerateMock {
			title = "Mock Questions"
		}
	case job.InterviewGuide != "":
		title = "Interview Guide"
		text = job.InterviewGuide
	default:
		return v.styles.Muted.Render("No guide yet for " + job.Company + ".")
	}

	body := v.styles.Normal
	if v.width > 0 {
		body = body.Width(max(v.width-4, 20))
	}
	return v.styles.Subtitle.Render(title) + "\n" + body.Render(text)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, max(height/3, 3))
}

// Jobs returns the jobs in the pipeline.
func (v *View) Jobs() []domain.JobApplication {
	return v.list.Jobs()
}

// Output returns the last generated text.
func (v *View) Output() string {
	return v.output
}

// Pending reports whether a generation is in flight.
func (v *View) Pending() bool {
	return v.pending != ""
}
