package driven

// ConfigStore holds the settings file as dot-separated keys such as
// "ai.provider" or "storage.redis_addr".
type ConfigStore interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns "" for missing keys and non-string values.
	GetString(key string) string

	// GetInt returns 0 for missing keys and non-numeric values.
	GetInt(key string) int

	// Set stores a value. File-backed stores write it out immediately.
	Set(key string, value any) error

	// Save writes every value.
	Save() error

	// Load replaces the values with what is stored.
	Load() error

	// Path locates the settings, for display.
	Path() string
}
