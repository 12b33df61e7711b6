package driving

import "github.com/hirewire-labs/hirewire-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetAIProvider configures the generator provider.
	SetAIProvider(provider domain.AIProvider, model, apiKey string) error

	// SetStorageBackend configures the slot store backend.
	SetStorageBackend(backend domain.StorageBackend, location string) error

	// Validate checks that the current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateAIConfig validates the current generator configuration by pinging the provider.
	ValidateAIConfig() error
}
