package mcp

import (
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Tracker provides the job, contact and résumé records.
	Tracker driving.TrackerService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Tracker == nil {
		return ErrMissingTracker
	}
	return nil
}
