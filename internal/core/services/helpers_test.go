package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/storage/memory"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

// testNow is a fixed instant used by tracker tests.
var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// failingStore loads from an inner store but rejects every save.
type failingStore struct {
	*memory.SlotStore
}

var errDiskFull = errors.New("disk full")

func (f failingStore) Save(context.Context, domain.Slot, []byte) error {
	return errDiskFull
}

// fakeGenerator records requests and returns canned answers.
type fakeGenerator struct {
	mu       sync.Mutex
	text     string
	image    []byte
	err      error
	requests []driven.TextRequest
	images   []driven.ImageRequest
}

func (g *fakeGenerator) GenerateText(_ context.Context, req driven.TextRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	return g.text, g.err
}

func (g *fakeGenerator) GenerateImage(_ context.Context, req driven.ImageRequest) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.images = append(g.images, req)
	return g.image, g.err
}

func (g *fakeGenerator) ModelName() string          { return "fake-model" }
func (g *fakeGenerator) Ping(context.Context) error { return g.err }
func (g *fakeGenerator) Close() error               { return nil }

func (g *fakeGenerator) lastPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) == 0 {
		return ""
	}
	return g.requests[len(g.requests)-1].Prompt
}

func (g *fakeGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests) + len(g.images)
}

func setupTestTracker(t *testing.T) (*TrackerService, *memory.SlotStore) {
	t.Helper()
	store := memory.NewSlotStore()
	tracker, err := NewTrackerService(context.Background(), store, &sequentialIDs{}, fixedClock{now: testNow})
	require.NoError(t, err)
	return tracker, store
}

func daysAgo(days int) string {
	return domain.FormatDate(testNow.AddDate(0, 0, -days))
}
