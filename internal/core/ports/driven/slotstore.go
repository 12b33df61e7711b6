package driven

import (
	"context"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// SlotStore persists one opaque JSON blob per named slot.
// It is the only component that touches durable storage.
type SlotStore interface {
	// Load returns the last saved blob for the slot.
	// Returns domain.ErrNotFound if the slot was never written.
	Load(ctx context.Context, slot domain.Slot) ([]byte, error)

	// Save replaces the blob for the slot.
	Save(ctx context.Context, slot domain.Slot, data []byte) error

	// Close releases resources.
	Close() error
}

// SlotInspector is implemented by stores that can report per-slot metadata.
type SlotInspector interface {
	// List returns the stored slots ordered by name.
	List(ctx context.Context) ([]domain.SlotInfo, error)
}
