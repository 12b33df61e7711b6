// Package ai provides factory functions for creating generator adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/llm/gemini"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/llm/ollama"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/llm/openai"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateGenerator creates the generator for the configured provider, wrapped
// in a rate limiter when settings.RatePerMinute is positive.
// Returns nil if the provider is not configured.
func CreateGenerator(ctx context.Context, settings *domain.AISettings) (driven.Generator, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	var (
		gen driven.Generator
		err error
	)
	switch settings.Provider {
	case domain.AIProviderGemini:
		gen, err = gemini.New(ctx, gemini.Config{
			APIKey:     settings.APIKey,
			Model:      settings.Model,
			ImageModel: settings.ImageModel,
			BaseURL:    settings.BaseURL,
		})

	case domain.AIProviderOpenAI:
		gen, err = openai.New(openai.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderOllama:
		gen = ollama.New(ollama.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", settings.Provider)
	}
	if err != nil {
		return nil, err
	}

	if settings.RatePerMinute > 0 {
		gen = NewRateLimitedGenerator(gen, settings.RatePerMinute)
	}
	return gen, nil
}

// CreateAndValidateGenerator creates a generator and validates connectivity.
// Returns the generator if successful, or an error with guidance.
func CreateAndValidateGenerator(ctx context.Context, settings *domain.AISettings) (driven.Generator, error) {
	gen, err := CreateGenerator(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'hirewire settings ai' to fix",
			domain.ErrGeneratorUnavailable, err)
	}
	if gen == nil {
		return nil, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := gen.Ping(pingCtx); err != nil {
		gen.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'hirewire settings ai' to fix",
			domain.ErrGeneratorUnavailable, err)
	}

	return gen, nil
}

// ValidateGeneratorConfig validates a configuration by creating a generator and pinging it.
// This is intended for the settings screens to validate credentials on configuration.
func ValidateGeneratorConfig(settings *domain.AISettings) error {
	return validateWithin(settings, pingTimeout)
}

func validateWithin(settings *domain.AISettings, timeout time.Duration) error {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}

	gen, err := CreateGenerator(context.Background(), settings)
	if err != nil {
		return err
	}
	if gen == nil {
		return nil
	}
	defer gen.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return gen.Ping(ctx)
}
