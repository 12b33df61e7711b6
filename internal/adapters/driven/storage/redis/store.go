// Package redis provides a Redis-backed implementation of driven.SlotStore.
//
// Each slot is stored as a plain string key under a configurable prefix
// (default "hirewire:"), so several profiles can share one Redis database.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

// DefaultKeyPrefix is prepended to every slot key.
const DefaultKeyPrefix = "hirewire:"

// Ensure Store implements the interface.
var _ driven.SlotStore = (*Store)(nil)

// Options configures the Redis connection.
type Options struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Store persists slots as Redis string keys.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore connects to Redis and verifies the connection with a PING.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis address: %w", domain.ErrInvalidInput)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}

	return NewStoreWithClient(client, opts.KeyPrefix), nil
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(slot domain.Slot) string {
	return s.prefix + string(slot)
}

// Load returns the blob stored for a slot.
func (s *Store) Load(ctx context.Context, slot domain.Slot) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading slot %s: %w", slot, err)
	}
	return val, nil
}

// Save overwrites the blob for a slot. Keys never expire.
func (s *Store) Save(ctx context.Context, slot domain.Slot, data []byte) error {
	if err := s.client.Set(ctx, s.key(slot), data, 0).Err(); err != nil {
		return fmt.Errorf("saving slot %s: %w", slot, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
