package driven

import "github.com/hirewire-labs/hirewire-cli/internal/core/domain"

// AIConfigValidator validates AI provider configurations.
// Implementations verify that configurations are valid by testing connectivity
// to the underlying AI services.
type AIConfigValidator interface {
	// ValidateAI validates a generator configuration by pinging the provider.
	// Returns nil if configuration is valid or not configured.
	ValidateAI(config *domain.AISettings) error
}
