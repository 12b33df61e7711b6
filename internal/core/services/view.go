package services

import (
	"fmt"
	"sync"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
)

// Ensure ViewSelector implements the interface.
var _ driving.ViewSelector = (*ViewSelector)(nil)

// ViewSelector holds the active screen in memory only.
type ViewSelector struct {
	mu     sync.RWMutex
	active domain.View
}

// NewViewSelector creates a selector on the default screen.
func NewViewSelector() *ViewSelector {
	return &ViewSelector{active: domain.DefaultView}
}

// ActiveView returns the current screen.
func (v *ViewSelector) ActiveView() domain.View {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.active
}

// SetActiveView switches screens.
func (v *ViewSelector) SetActiveView(view domain.View) error {
	if !view.IsValid() {
		return fmt.Errorf("view %q: %w", view, domain.ErrInvalidInput)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = view
	return nil
}

// Reset returns to the default screen.
func (v *ViewSelector) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = domain.DefaultView
}
