package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

// Ensure SlotStore implements the interfaces.
var (
	_ driven.SlotStore     = (*SlotStore)(nil)
	_ driven.SlotInspector = (*SlotStore)(nil)
)

// SlotStore is an in-memory implementation of driven.SlotStore.
// Used for tests and ephemeral sessions.
type SlotStore struct {
	mu    sync.RWMutex
	slots map[domain.Slot][]byte
	meta  map[domain.Slot]domain.SlotInfo
	saves int
}

// NewSlotStore creates a new in-memory slot store.
func NewSlotStore() *SlotStore {
	return &SlotStore{
		slots: make(map[domain.Slot][]byte),
		meta:  make(map[domain.Slot]domain.SlotInfo),
	}
}

// Load returns a copy of the stored blob.
func (s *SlotStore) Load(_ context.Context, slot domain.Slot) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.slots[slot]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of the blob.
func (s *SlotStore) Save(_ context.Context, slot domain.Slot, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = append([]byte(nil), data...)
	info := s.meta[slot]
	info.Slot = slot
	info.Size = len(data)
	info.Writes++
	info.UpdatedAt = time.Now().UTC()
	s.meta[slot] = info
	s.saves++
	return nil
}

// List returns metadata for every stored slot, ordered by name.
func (s *SlotStore) List(_ context.Context) ([]domain.SlotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	infos := make([]domain.SlotInfo, 0, len(s.meta))
	for _, info := range s.meta {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Slot < infos[j].Slot })
	return infos, nil
}

// Saves returns how many writes the store has received.
func (s *SlotStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Close is a no-op.
func (s *SlotStore) Close() error {
	return nil
}
