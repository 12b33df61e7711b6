package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/ai"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/config/file"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/extract"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/identity"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/storage/memory"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/storage/redis"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/storage/sqlite"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/cli"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
	"github.com/hirewire-labs/hirewire-cli/internal/logger"
)

// Environment variables that override the saved settings for one run.
const (
	envGeminiKey  = "GEMINI_API_KEY"
	envAPIKey     = "API_KEY"
	envOpenAIKey  = "OPENAI_API_KEY"
	envStorage    = "HIREWIRE_STORAGE"
	envRedisAddr  = "HIREWIRE_REDIS_ADDR"
	memoryStorage = "Memory (not persisted)"
)

// wire builds the services for one command run. The returned func closes
// the slot store and the generator.
func wire(ctx context.Context, opts cli.Options) (*cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}
	applyEnv(settings, os.Getenv)

	store, storage, err := openSlotStore(ctx, settings, opts)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Storage: %s", storage)

	tracker, err := services.NewTrackerService(ctx, store, identity.UUIDGenerator{}, identity.SystemClock{})
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	gen, err := ai.CreateGenerator(ctx, &settings.AI)
	if err != nil {
		logger.Warn("AI provider unavailable, using fallbacks: %v", err)
		gen = nil
	}

	promptDir := ""
	if opts.ConfigDir != "" {
		promptDir = filepath.Join(opts.ConfigDir, "prompts")
	}
	prompts, err := file.NewPromptStore(promptDir, services.DefaultPrompts())
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("opening prompts: %w", err)
	}

	assistant := services.NewAssistantService(tracker, gen)
	assistant.SetPromptStore(prompts)

	cleanup := func() error {
		var errs []error
		if gen != nil {
			errs = append(errs, gen.Close())
		}
		errs = append(errs, store.Close())
		return errors.Join(errs...)
	}

	svc := &cli.Services{
		Tracker:   tracker,
		Assistant: assistant,
		Settings:  settingsService,
		Views:     services.NewViewSelector(),
		Extractor: extract.New(),
		Prompts:   prompts,
		Storage:   storage,
	}
	if inspector, ok := store.(driven.SlotInspector); ok {
		svc.Slots = inspector
	}
	return svc, cleanup, nil
}

// applyEnv overlays environment overrides on settings. Nothing is saved.
func applyEnv(settings *domain.AppSettings, getenv func(string) string) {
	switch settings.AI.Provider {
	case domain.AIProviderGemini:
		if settings.AI.APIKey == "" {
			settings.AI.APIKey = firstNonEmpty(getenv(envGeminiKey), getenv(envAPIKey))
		}
	case domain.AIProviderOpenAI:
		if settings.AI.APIKey == "" {
			settings.AI.APIKey = getenv(envOpenAIKey)
		}
	case domain.AIProviderOllama:
	}

	if v := strings.ToLower(strings.TrimSpace(getenv(envStorage))); v != "" {
		if backend := domain.StorageBackend(v); backend.IsValid() {
			settings.Storage.Backend = backend
		} else {
			logger.Warn("ignoring %s=%q: unknown backend", envStorage, v)
		}
	}
	if v := strings.TrimSpace(getenv(envRedisAddr)); v != "" {
		settings.Storage.RedisAddr = v
	}
}

// openSlotStore opens the configured backend and describes it for display.
// Ephemeral runs always use memory.
func openSlotStore(
	ctx context.Context,
	settings *domain.AppSettings,
	opts cli.Options,
) (driven.SlotStore, string, error) {
	if opts.Ephemeral {
		return memory.NewSlotStore(), memoryStorage, nil
	}

	switch settings.Storage.Backend {
	case domain.StorageRedis:
		store, err := redis.NewStore(ctx, redis.Options{
			Addr:     settings.Storage.RedisAddr,
			Password: settings.Storage.RedisPassword,
			DB:       settings.Storage.RedisDB,
		})
		if err != nil {
			return nil, "", fmt.Errorf("opening redis storage: %w", err)
		}
		return store, fmt.Sprintf("Redis (%s)", settings.Storage.RedisAddr), nil

	case domain.StorageMemory:
		return memory.NewSlotStore(), memoryStorage, nil

	default:
		dataDir := settings.Storage.DataDir
		if dataDir == "" && opts.ConfigDir != "" {
			dataDir = filepath.Join(opts.ConfigDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, "", fmt.Errorf("opening sqlite storage: %w", err)
		}
		return store, fmt.Sprintf("SQLite (%s)", store.Path()), nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
