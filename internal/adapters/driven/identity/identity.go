// Package identity provides id and clock adapters for the core services.
package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

// Ensure adapters implement the interfaces.
var (
	_ driven.IDGenerator = UUIDGenerator{}
	_ driven.Clock       = SystemClock{}
)

// UUIDGenerator issues random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
