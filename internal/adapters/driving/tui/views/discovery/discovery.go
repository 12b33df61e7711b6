// Package discovery provides the role discovery screen for the TUI.
package discovery

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
)

// View asks the assistant for roles to target next.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	assistant driving.AssistantService

	suggestions string
	generating  bool
	err         error

	width  int
	height int
	ready  bool
}

// NewView creates a new discovery view. assistant may be nil.
func NewView(s *styles.Styles, assistant driving.AssistantService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		assistant: assistant,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the discovery view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.GenerationCompleted:
		if msg.Kind == messages.GenerateDiscovery {
			v.generating = false
			v.suggestions = msg.Text
			v.err = msg.Err
		}

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keymap.Generate) {
			return v, v.discover()
		}
	}
	return v, nil
}

func (v *View) discover() tea.Cmd {
	if v.assistant == nil || v.generating {
		return nil
	}
	v.generating = true
	v.err = nil
	assistant := v.assistant
	return func() tea.Msg {
		text, err := assistant.DiscoverRoles(context.Background())
		return messages.GenerationCompleted{Kind: messages.GenerateDiscovery, Text: text, Err: err}
	}
}

// View renders the discovery view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Discovery"))
	b.WriteString("\n\n")

	switch {
	case v.assistant == nil:
		b.WriteString(v.styles.Muted.Render("AI assistant not configured. Run 'hirewire settings ai'."))
	case v.generating:
		b.WriteString(v.styles.Muted.Render("Looking for roles..."))
	case v.suggestions == "":
		b.WriteString(v.styles.Muted.Render("Press g to suggest roles from your applications and skills."))
	default:
		body := v.styles.Normal
		if v.width > 0 {
			body = body.Width(max(v.width-4, 20))
		}
		b.WriteString(body.Render(v.suggestions))
	}
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[g] discover  [esc] menu"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Suggestions returns the last discovery result.
func (v *View) Suggestions() string {
	return v.suggestions
}
