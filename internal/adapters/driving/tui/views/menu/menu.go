// Package menu provides the sidebar navigation menu for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  domain.View
	Quit  bool // If true, selecting this item quits the app
}

// View represents the sidebar menu.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	active   domain.View
	focused  bool
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view with one item per screen plus quit.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	views := domain.AllViews()
	items := make([]Item, 0, len(views)+1)
	for _, v := range views {
		items = append(items, Item{Label: v.Title(), View: v})
	}
	items = append(items, Item{Label: "Quit", Quit: true})

	return &View{
		styles:  s,
		items:   items,
		active:  domain.DefaultView,
		focused: true,
		width:   80,
		height:  24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("HireWire"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Job Search Command Centre"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

		if !item.Quit && item.View == v.active {
			style = v.styles.Subtitle
		}
		if v.focused && i == v.selected {
			cursor = "> "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)
		}

		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] move  [enter] open"))

	return v.styles.Sidebar.Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SetActive marks the screen currently shown and moves the cursor to it.
func (v *View) SetActive(view domain.View) {
	v.active = view
	for i, item := range v.items {
		if !item.Quit && item.View == view {
			v.selected = i
			return
		}
	}
}

// Active returns the highlighted screen.
func (v *View) Active() domain.View {
	return v.active
}

// SetFocused records whether key input goes to the menu.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Focused reports whether key input goes to the menu.
func (v *View) Focused() bool {
	return v.focused
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
