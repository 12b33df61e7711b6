// Package testutil provides deterministic fakes shared by adapter tests.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/storage/memory"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
)

// Now is the fixed instant returned by FixedClock.
var Now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// SequentialIDs returns id-1, id-2, ...
type SequentialIDs struct {
	mu sync.Mutex
	n  int
}

// NewID returns the next id.
func (g *SequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// FixedClock always returns Now.
type FixedClock struct{}

// Now returns the fixed instant.
func (FixedClock) Now() time.Time { return Now }

// DaysAgo formats the date n days before Now.
func DaysAgo(n int) string {
	return domain.FormatDate(Now.AddDate(0, 0, -n))
}

// Generator returns canned answers and counts calls.
type Generator struct {
	mu    sync.Mutex
	Text  string
	Image []byte
	Err   error
	calls int
}

var _ driven.Generator = (*Generator)(nil)

// GenerateText returns Text and Err.
func (g *Generator) GenerateText(context.Context, driven.TextRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return g.Text, g.Err
}

// GenerateImage returns Image and Err.
func (g *Generator) GenerateImage(context.Context, driven.ImageRequest) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return g.Image, g.Err
}

// ModelName returns a fixed name.
func (g *Generator) ModelName() string { return "test-model" }

// Ping returns Err.
func (g *Generator) Ping(context.Context) error { return g.Err }

// Close does nothing.
func (g *Generator) Close() error { return nil }

// Calls returns how many generation calls were made.
func (g *Generator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// NewTracker returns a tracker over an empty memory store seeded with jobs.
func NewTracker(t *testing.T, jobs ...domain.JobApplication) (*services.TrackerService, *memory.SlotStore) {
	t.Helper()
	store := memory.NewSlotStore()
	tracker, err := services.NewTrackerService(context.Background(), store, &SequentialIDs{}, FixedClock{})
	require.NoError(t, err)
	if len(jobs) > 0 {
		require.NoError(t, tracker.SetJobs(context.Background(), jobs))
	}
	return tracker, store
}
