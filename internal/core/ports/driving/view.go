package driving

import "github.com/hirewire-labs/hirewire-cli/internal/core/domain"

// ViewSelector holds the active screen. It is never persisted.
type ViewSelector interface {
	// ActiveView returns the current screen.
	ActiveView() domain.View

	// SetActiveView switches screens. Unknown views return domain.ErrInvalidInput.
	SetActiveView(view domain.View) error

	// Reset returns to the default screen.
	Reset()
}
