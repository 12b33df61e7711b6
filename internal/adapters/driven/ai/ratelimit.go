package ai

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
	"github.com/hirewire-labs/hirewire-cli/internal/logger"
)

// Ensure RateLimitedGenerator implements the interface.
var _ driven.Generator = (*RateLimitedGenerator)(nil)

// DefaultBackoff is how long calls pause after the provider reports a quota error.
const DefaultBackoff = 60 * time.Second

// maxBurst caps how many calls may go out back to back.
const maxBurst = 5

// RateLimitedGenerator throttles calls to a wrapped generator.
// It uses a token bucket and pauses all calls for Backoff after the provider
// returns domain.ErrRateLimited.
type RateLimitedGenerator struct {
	inner   driven.Generator
	limiter *rate.Limiter

	mu      sync.Mutex
	retryAt time.Time
	backoff time.Duration
}

// NewRateLimitedGenerator wraps gen with a limit of perMinute calls.
func NewRateLimitedGenerator(gen driven.Generator, perMinute int) *RateLimitedGenerator {
	burst := perMinute
	if burst > maxBurst {
		burst = maxBurst
	}
	if burst < 1 {
		burst = 1
	}

	return &RateLimitedGenerator{
		inner:   gen,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
		backoff: DefaultBackoff,
	}
}

// SetBackoff changes the pause applied after a quota error.
func (g *RateLimitedGenerator) SetBackoff(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.backoff = d
}

// Unwrap returns the wrapped generator.
func (g *RateLimitedGenerator) Unwrap() driven.Generator {
	return g.inner
}

// wait blocks until a call may proceed.
func (g *RateLimitedGenerator) wait(ctx context.Context) error {
	g.mu.Lock()
	retryAt := g.retryAt
	g.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return g.limiter.Wait(ctx)
}

// observe records a backoff when err is a quota error.
func (g *RateLimitedGenerator) observe(err error) {
	if !errors.Is(err, domain.ErrRateLimited) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.retryAt = time.Now().Add(g.backoff)
	logger.Warn("AI provider rate limited, pausing requests for %s", g.backoff)
}

// GenerateText waits for capacity and forwards the call.
func (g *RateLimitedGenerator) GenerateText(ctx context.Context, req driven.TextRequest) (string, error) {
	if err := g.wait(ctx); err != nil {
		return "", err
	}
	out, err := g.inner.GenerateText(ctx, req)
	g.observe(err)
	return out, err
}

// GenerateImage waits for capacity and forwards the call.
func (g *RateLimitedGenerator) GenerateImage(ctx context.Context, req driven.ImageRequest) ([]byte, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	out, err := g.inner.GenerateImage(ctx, req)
	g.observe(err)
	return out, err
}

// ModelName returns the wrapped generator's model.
func (g *RateLimitedGenerator) ModelName() string {
	return g.inner.ModelName()
}

// Ping is not rate limited.
func (g *RateLimitedGenerator) Ping(ctx context.Context) error {
	return g.inner.Ping(ctx)
}

// Close closes the wrapped generator.
func (g *RateLimitedGenerator) Close() error {
	return g.inner.Close()
}
