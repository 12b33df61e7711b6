// Package settings provides the settings screen for the TUI.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
)

// View shows the generator and storage configuration and offers a purge.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService
	tracker         driving.TrackerService
	storage         string

	settings   *domain.AppSettings
	validation error
	confirming bool
	purging    bool
	err        error
	message    string

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
// storage describes the active slot store and may be empty.
func NewView(s *styles.Styles, settingsService driving.SettingsService, tracker driving.TrackerService, storage string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		settingsService: settingsService,
		tracker:         tracker,
		storage:         storage,
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		s, err := svc.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

func (v *View) purge() tea.Cmd {
	tracker := v.tracker
	return func() tea.Msg {
		return messages.RecordsPurged{Err: tracker.Reset(context.Background())}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		v.settings = msg.Settings
		v.err = msg.Err
		if msg.Err == nil && v.settingsService != nil {
			v.validation = v.settingsService.Validate()
		}
		return v, nil

	case messages.RecordsPurged:
		v.purging = false
		v.err = msg.Err
		if msg.Err == nil {
			v.message = "All records purged."
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.confirming {
		v.confirming = false
		if msg.String() == "y" && v.tracker != nil {
			v.purging = true
			v.message = ""
			return v, v.purge()
		}
		v.message = "Purge cancelled."
		return v, nil
	}

	switch msg.String() {
	case "p":
		if v.tracker != nil && !v.purging {
			v.confirming = true
			v.message = ""
		}
	case "r":
		return v, v.loadSettings()
	}
	return v, nil
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.settings == nil {
		if v.settingsService == nil {
			b.WriteString(v.styles.Muted.Render("Settings service not available."))
		} else {
			b.WriteString(v.styles.Muted.Render("Loading settings..."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(v.renderSettings())
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Data"))
	b.WriteString("\n")
	switch {
	case v.confirming:
		b.WriteString(v.styles.Warning.Render("Purge every job, contact, reminder and résumé entry? [y/N]"))
	case v.purging:
		b.WriteString(v.styles.Muted.Render("Purging..."))
	case v.message != "":
		b.WriteString(v.styles.Success.Render(v.message))
	default:
		b.WriteString(v.styles.Muted.Render("Press p to purge all records."))
	}
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[p] purge  [r] reload  [esc] menu  [q] quit"))
	return b.String()
}

func (v *View) renderSettings() string {
	var b strings.Builder
	ai := v.settings.AI
	store := v.settings.Storage

	b.WriteString(v.styles.Subtitle.Render("AI"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Provider: %s\n", ai.Provider.Description()))
	b.WriteString(fmt.Sprintf("  Model:    %s\n", ai.Model))
	if ai.Provider.RequiresAPIKey() {
		if ai.APIKey != "" {
			b.WriteString("  API Key:  " + v.styles.Success.Render("configured") + "\n")
		} else {
			b.WriteString("  API Key:  " + v.styles.Error.Render("missing") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Storage"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Backend:  %s\n", store.Backend.Description()))
	if v.storage != "" {
		b.WriteString(fmt.Sprintf("  Active:   %s\n", v.storage))
	}

	b.WriteString("\n")
	if v.validation != nil {
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Configuration incomplete: %v", v.validation)))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Run 'hirewire settings wizard' to fix it."))
	} else {
		b.WriteString(v.styles.Success.Render("Configuration valid"))
	}
	b.WriteString("\n")
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Confirming reports whether a purge confirmation is pending.
func (v *View) Confirming() bool {
	return v.confirming
}

// Capturing reports whether the view is consuming keystrokes.
func (v *View) Capturing() bool {
	return v.confirming
}
