// Package resume provides the résumé screen for the TUI.
package resume

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
)

// View shows the résumé profile and regenerates its summary.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	tracker   driving.TrackerService
	assistant driving.AssistantService

	profile    domain.ResumeProfile
	generating bool
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a new résumé view. assistant may be nil.
func NewView(s *styles.Styles, tracker driving.TrackerService, assistant driving.AssistantService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		tracker:   tracker,
		assistant: assistant,
	}
}

// Init loads the profile.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh reloads the profile from the tracker.
func (v *View) Refresh() {
	if v.tracker == nil {
		return
	}
	v.profile = v.tracker.Resume()
}

// Update handles messages for the résumé view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.GenerationCompleted:
		if msg.Kind == messages.GenerateSummary {
			v.generating = false
			v.err = msg.Err
			v.Refresh()
		}

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Generate):
			return v, v.generateSummary()
		case keymap.Matches(key, v.keymap.Refresh):
			v.Refresh()
		}
	}
	return v, nil
}

func (v *View) generateSummary() tea.Cmd {
	if v.assistant == nil || v.generating {
		return nil
	}
	v.generating = true
	v.err = nil
	assistant := v.assistant
	return func() tea.Msg {
		text, err := assistant.GenerateResumeSummary(context.Background())
		return messages.GenerationCompleted{Kind: messages.GenerateSummary, Text: text, Err: err}
	}
}

// View renders the résumé view.
func (v *View) View() string {
	var b strings.Builder
	p := v.profile

	b.WriteString(v.styles.Title.Render("Résumé"))
	if p.RegionalFormat != "" {
		b.WriteString("  ")
		b.WriteString(v.styles.Muted.Render(string(p.RegionalFormat)))
	}
	b.WriteString("\n\n")

	if p.FullName != "" {
		b.WriteString(v.styles.Subtitle.Render(p.FullName))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Subtitle.Render("Summary"))
	b.WriteString("\n")
	switch {
	case v.generating:
		b.WriteString(v.styles.Muted.Render("Generating..."))
	case p.Summary == "":
		b.WriteString(v.styles.Muted.Render("No summary yet."))
	default:
		b.WriteString(v.wrap(p.Summary))
	}
	b.WriteString("\n\n")

	if p.Skills != "" {
		b.WriteString(v.styles.Subtitle.Render("Skills"))
		b.WriteString("\n")
		b.WriteString(v.wrap(p.Skills))
		b.WriteString("\n\n")
	}

	b.WriteString(v.renderSections("Experience", p.Experience))
	b.WriteString(v.renderSections("Education", p.Education))

	if len(p.Projects) > 0 {
		b.WriteString(v.styles.Subtitle.Render("Projects"))
		b.WriteString("\n")
		for _, proj := range p.Projects {
			line := "  " + proj.Name
			if len(proj.Tech) > 0 {
				line += v.styles.Muted.Render(" (" + strings.Join(proj.Tech, ", ") + ")")
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	if v.assistant == nil {
		b.WriteString(v.styles.Help.Render("[r] refresh  [esc] menu"))
	} else {
		b.WriteString(v.styles.Help.Render("[g] generate summary  [r] refresh  [esc] menu"))
	}
	return b.String()
}

func (v *View) renderSections(title string, sections []domain.Section) string {
	if len(sections) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(title))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("  " + s.Title)
		if s.Date != "" {
			b.WriteString(v.styles.Muted.Render("  " + s.Date))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (v *View) wrap(text string) string {
	if v.width <= 0 {
		return v.styles.Normal.Render(text)
	}
	return v.styles.Normal.Width(max(v.width-4, 20)).Render(text)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Profile returns the displayed profile.
func (v *View) Profile() domain.ResumeProfile {
	return v.profile
}
