package ai

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

type countingGenerator struct {
	calls atomic.Int32
	err   error
}

func (g *countingGenerator) GenerateText(context.Context, driven.TextRequest) (string, error) {
	g.calls.Add(1)
	return "ok", g.err
}

func (g *countingGenerator) GenerateImage(context.Context, driven.ImageRequest) ([]byte, error) {
	g.calls.Add(1)
	return []byte("img"), g.err
}

func (g *countingGenerator) ModelName() string          { return "counting" }
func (g *countingGenerator) Ping(context.Context) error { return nil }
func (g *countingGenerator) Close() error               { return nil }

func TestRateLimitedGenerator_BurstThenBlocks(t *testing.T) {
	inner := &countingGenerator{}
	gen := NewRateLimitedGenerator(inner, 2) // 1 token every 30s, burst 2

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		out, err := gen.GenerateText(ctx, driven.TextRequest{Prompt: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
	}

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err := gen.GenerateText(short, driven.TextRequest{Prompt: "hi"})

	assert.Error(t, err)
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestRateLimitedGenerator_BurstCapped(t *testing.T) {
	gen := NewRateLimitedGenerator(&countingGenerator{}, 600)
	assert.Equal(t, maxBurst, gen.limiter.Burst())

	gen = NewRateLimitedGenerator(&countingGenerator{}, 0)
	assert.Equal(t, 1, gen.limiter.Burst())
}

func TestRateLimitedGenerator_BacksOffAfterQuotaError(t *testing.T) {
	inner := &countingGenerator{err: domain.ErrRateLimited}
	gen := NewRateLimitedGenerator(inner, 600)
	gen.SetBackoff(time.Hour)

	ctx := context.Background()
	_, err := gen.GenerateImage(ctx, driven.ImageRequest{Prompt: "x"})
	require.ErrorIs(t, err, domain.ErrRateLimited)

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = gen.GenerateText(short, driven.TextRequest{Prompt: "hi"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestRateLimitedGenerator_OtherErrorsDoNotBackOff(t *testing.T) {
	inner := &countingGenerator{err: errors.New("boom")}
	gen := NewRateLimitedGenerator(inner, 600)
	gen.SetBackoff(time.Hour)

	ctx := context.Background()
	_, _ = gen.GenerateText(ctx, driven.TextRequest{})
	_, _ = gen.GenerateText(ctx, driven.TextRequest{})

	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestRateLimitedGenerator_Delegates(t *testing.T) {
	inner := &countingGenerator{}
	gen := NewRateLimitedGenerator(inner, 60)

	assert.Equal(t, "counting", gen.ModelName())
	assert.NoError(t, gen.Ping(context.Background()))
	assert.NoError(t, gen.Close())
	assert.Same(t, inner, gen.Unwrap())
}
