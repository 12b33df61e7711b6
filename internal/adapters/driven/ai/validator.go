package ai

import (
	"time"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator checks provider settings before they are saved by
// building a throwaway generator and pinging it.
type ConfigValidator struct {
	// Timeout bounds the ping; zero means the package default.
	Timeout time.Duration
}

// NewConfigValidator returns a validator using the default ping timeout.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateAI returns nil for nil or unconfigured settings.
func (v *ConfigValidator) ValidateAI(config *domain.AISettings) error {
	timeout := v.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}
	return validateWithin(config, timeout)
}
