// Package networking provides the contacts screen for the TUI.
package networking

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/components/input"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
)

// View lists contacts with search and delete, plus the social profiles.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	tracker driving.TrackerService

	search   *input.FilterInput
	contacts []domain.Contact
	profiles []domain.SocialProfile
	selected int
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new networking view.
func NewView(s *styles.Styles, tracker driving.TrackerService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		tracker: tracker,
		search:  input.NewFilterInput(s, "Search", "name or company..."),
	}
}

// Init loads the contacts.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh reapplies the search to the tracker's contacts.
func (v *View) Refresh() {
	if v.tracker == nil {
		return
	}
	v.contacts = services.SearchContacts(v.tracker.Contacts(), v.search.Value())
	v.profiles = v.tracker.SocialProfiles()
	if v.selected >= len(v.contacts) {
		v.selected = max(len(v.contacts)-1, 0)
	}
}

// Update handles messages for the networking view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ContactDeleted:
		v.err = msg.Err
		v.Refresh()
		return v, nil

	case tea.KeyMsg:
		if v.search.Focused() {
			switch msg.String() {
			case "esc", "enter":
				v.search.Blur()
				return v, nil
			}
			var cmd tea.Cmd
			v.search, cmd = v.search.Update(msg)
			v.Refresh()
			return v, cmd
		}
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Filter):
		return v, v.search.Focus()
	case keymap.Matches(key, v.keymap.Delete):
		return v, v.deleteSelected()
	case keymap.Matches(key, v.keymap.Refresh):
		v.Refresh()
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.contacts)-1 {
			v.selected++
		}
	}
	return v, nil
}

func (v *View) deleteSelected() tea.Cmd {
	if v.tracker == nil || len(v.contacts) == 0 {
		return nil
	}
	id := v.contacts[v.selected].ID
	tracker := v.tracker
	return func() tea.Msg {
		return messages.ContactDeleted{ID: id, Err: tracker.DeleteContact(context.Background(), id)}
	}
}

// View renders the networking view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Networking"))
	b.WriteString("\n\n")
	b.WriteString(v.search.View())
	b.WriteString("\n\n")

	if len(v.contacts) == 0 {
		b.WriteString(v.styles.Muted.Render("No contacts found."))
		b.WriteString("\n")
	}
	for i, c := range v.contacts {
		line := fmt.Sprintf("%-24s %-20s %s", c.Name, c.Company, c.Role)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		if c.LastContact != "" {
			b.WriteString(v.styles.Muted.Render("  last: " + c.LastContact))
		}
		b.WriteString("\n")
	}

	if len(v.profiles) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Social Profiles"))
		b.WriteString("\n")
		for _, p := range v.profiles {
			b.WriteString(fmt.Sprintf("  %-10s %s\n", p.Platform, p.URL))
		}
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[/] search  [d] delete  [r] refresh  [esc] menu"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.search.SetWidth(width)
}

// Capturing reports whether the search input is consuming keystrokes.
func (v *View) Capturing() bool {
	return v.search.Focused()
}

// Contacts returns the contacts currently shown.
func (v *View) Contacts() []domain.Contact {
	return v.contacts
}

// Selected returns the index of the selected contact.
func (v *View) Selected() int {
	return v.selected
}
