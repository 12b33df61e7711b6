// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// ViewChanged is sent when the user picks a screen from the menu.
type ViewChanged struct {
	View domain.View
}

// FocusMenu is sent when a screen hands focus back to the menu.
type FocusMenu struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// JobDeleted signals a job was removed.
type JobDeleted struct {
	ID  string
	Err error
}

// ContactDeleted signals a contact was removed.
type ContactDeleted struct {
	ID  string
	Err error
}

// GenerationKind identifies which assistant operation produced a result.
type GenerationKind string

// Assistant operations started from the TUI.
const (
	GenerateGuide     GenerationKind = "guide"
	GenerateMock      GenerationKind = "mock"
	GenerateSummary   GenerationKind = "summary"
	GenerateDiscovery GenerationKind = "discovery"
)

// GenerationCompleted carries assistant output back to the screen that asked for it.
type GenerationCompleted struct {
	Kind  GenerationKind
	JobID string
	Text  string
	Err   error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// RecordsPurged signals that every record was reset.
type RecordsPurged struct {
	Err error
}
