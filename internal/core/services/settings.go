package services

import (
	"fmt"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAIProvider    = "ai.provider"
	keyAIModel       = "ai.model"
	keyAIImageModel  = "ai.image_model"
	keyAIBaseURL     = "ai.base_url"
	keyAIAPIKey      = "ai.api_key"
	keyAIRate        = "ai.rate_per_minute"
	keyStoreBackend  = "storage.backend"
	keyStoreDataDir  = "storage.data_dir"
	keyRedisAddr     = "storage.redis_addr"
	keyRedisPassword = "storage.redis_password"
	keyRedisDB       = "storage.redis_db"
)

const defaultOllamaURL = "http://localhost:11434"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	provider := s.getProvider(defaults.AI.Provider)
	model := s.configStore.GetString(keyAIModel)
	if model == "" {
		model = domain.DefaultTextModels()[provider]
	}

	settings := &domain.AppSettings{
		AI: domain.AISettings{
			Provider:      provider,
			Model:         model,
			ImageModel:    s.getString(keyAIImageModel, defaults.AI.ImageModel),
			BaseURL:       s.configStore.GetString(keyAIBaseURL), // No default - empty is valid for cloud providers
			APIKey:        s.configStore.GetString(keyAIAPIKey),
			RatePerMinute: s.getIntOr(keyAIRate, defaults.AI.RatePerMinute),
		},
		Storage: domain.StorageSettings{
			Backend:       s.getBackend(defaults.Storage.Backend),
			DataDir:       s.configStore.GetString(keyStoreDataDir),
			RedisAddr:     s.getString(keyRedisAddr, defaults.Storage.RedisAddr),
			RedisPassword: s.configStore.GetString(keyRedisPassword),
			RedisDB:       s.configStore.GetInt(keyRedisDB),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save AI settings
	if err := s.configStore.Set(keyAIProvider, settings.AI.Provider.String()); err != nil {
		return fmt.Errorf("save ai provider: %w", err)
	}
	if err := s.configStore.Set(keyAIModel, settings.AI.Model); err != nil {
		return fmt.Errorf("save ai model: %w", err)
	}
	if err := s.configStore.Set(keyAIImageModel, settings.AI.ImageModel); err != nil {
		return fmt.Errorf("save ai image_model: %w", err)
	}
	if err := s.configStore.Set(keyAIBaseURL, settings.AI.BaseURL); err != nil {
		return fmt.Errorf("save ai base_url: %w", err)
	}
	if settings.AI.APIKey != "" {
		if err := s.configStore.Set(keyAIAPIKey, settings.AI.APIKey); err != nil {
			return fmt.Errorf("save ai api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyAIRate, settings.AI.RatePerMinute); err != nil {
		return fmt.Errorf("save ai rate_per_minute: %w", err)
	}

	// Save storage settings
	if err := s.configStore.Set(keyStoreBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyStoreDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save storage data_dir: %w", err)
	}
	if err := s.configStore.Set(keyRedisAddr, settings.Storage.RedisAddr); err != nil {
		return fmt.Errorf("save storage redis_addr: %w", err)
	}
	if settings.Storage.RedisPassword != "" {
		if err := s.configStore.Set(keyRedisPassword, settings.Storage.RedisPassword); err != nil {
			return fmt.Errorf("save storage redis_password: %w", err)
		}
	}
	if err := s.configStore.Set(keyRedisDB, settings.Storage.RedisDB); err != nil {
		return fmt.Errorf("save storage redis_db: %w", err)
	}

	return nil
}

// SetAIProvider configures the generator provider.
func (s *SettingsService) SetAIProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid AI provider: %s", provider)
	}

	// Validate API key if required
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("API key required for %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.AI.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.AI.Model = model
	} else if defaultModel, ok := domain.DefaultTextModels()[provider]; ok {
		settings.AI.Model = defaultModel
	}

	// Set base URL based on provider type
	if provider.IsLocal() {
		if settings.AI.BaseURL == "" {
			settings.AI.BaseURL = defaultOllamaURL
		}
	} else {
		settings.AI.BaseURL = ""
	}

	settings.AI.APIKey = apiKey

	return s.Save(settings)
}

// SetStorageBackend configures the slot store backend.
// location is the data directory for sqlite and host:port for redis.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend, location string) error {
	if !backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Storage.Backend = backend
	switch backend {
	case domain.StorageSQLite:
		settings.Storage.DataDir = location
	case domain.StorageRedis:
		if location != "" {
			settings.Storage.RedisAddr = location
		}
	case domain.StorageMemory:
	}

	return s.Save(settings)
}

// Validate checks that the current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", settings.Storage.Backend)
	}
	if settings.Storage.Backend == domain.StorageRedis && settings.Storage.RedisAddr == "" {
		return fmt.Errorf("storage backend %q requires a redis address", settings.Storage.Backend.Description())
	}
	if settings.AI.RatePerMinute < 0 {
		return fmt.Errorf("ai rate_per_minute must not be negative: %d", settings.AI.RatePerMinute)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateAIConfig validates the current generator configuration by pinging the provider.
func (s *SettingsService) ValidateAIConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateAI(&settings.AI)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getIntOr(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getProvider(defaultVal domain.AIProvider) domain.AIProvider {
	provider := domain.AIProvider(s.configStore.GetString(keyAIProvider))
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(keyStoreBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
