// Package tui provides an interactive terminal user interface for hirewire.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tracker owns the job, contact, reminder and résumé records.
	Tracker driving.TrackerService

	// Views holds the active screen.
	Views driving.ViewSelector

	// Assistant generates guides, questions and summaries. Optional.
	Assistant driving.AssistantService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService

	// Storage describes the active slot store for the status bar.
	Storage string
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(tracker driving.TrackerService, views driving.ViewSelector) *Ports {
	return &Ports{
		Tracker: tracker,
		Views:   views,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Tracker == nil {
		return ErrMissingTracker
	}
	if p.Views == nil {
		return ErrMissingViewSelector
	}
	return nil
}
