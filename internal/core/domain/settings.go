package domain

const unknownDescription = "Unknown"

// AIProvider identifies a generative AI service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGemini is Google Gemini cloud API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderOpenAI, AIProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderGemini || p == AIProviderOpenAI
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// SupportsImages returns true if this provider can generate images.
func (p AIProvider) SupportsImages() bool {
	return p == AIProviderGemini
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGemini:
		return "Google Gemini (cloud)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// AISettings holds generator provider configuration.
type AISettings struct {
	// Provider is the generation service provider.
	Provider AIProvider

	// Model is the text model name.
	Model string

	// ImageModel is the image model name (Gemini only).
	ImageModel string

	// BaseURL is the API endpoint (for Ollama or OpenAI-compatible servers).
	BaseURL string

	// APIKey is the API key (for Gemini/OpenAI).
	APIKey string

	// RatePerMinute caps outbound generation requests. Zero disables limiting.
	RatePerMinute int
}

// IsConfigured returns true if the generator provider is set up.
func (a AISettings) IsConfigured() bool {
	if !a.Provider.IsValid() {
		return false
	}
	if a.Provider.RequiresAPIKey() && a.APIKey == "" {
		return false
	}
	return true
}

// StorageBackend identifies the slot store implementation.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite keeps slots in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageRedis keeps slots in a Redis server.
	StorageRedis StorageBackend = "redis"

	// StorageMemory keeps slots in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageRedis, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (local file)"
	case StorageRedis:
		return "Redis (server)"
	case StorageMemory:
		return "Memory (not persisted)"
	default:
		return unknownDescription
	}
}

// StorageSettings holds slot store configuration.
type StorageSettings struct {
	// Backend selects the slot store.
	Backend StorageBackend

	// DataDir is the SQLite data directory. Empty means ~/.hirewire/data.
	DataDir string

	// RedisAddr is the Redis host:port.
	RedisAddr string

	// RedisPassword is the optional Redis password.
	RedisPassword string

	// RedisDB is the Redis database number.
	RedisDB int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// AI holds generator provider settings.
	AI AISettings

	// Storage holds slot store settings.
	Storage StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The API key is left empty; it comes from config or the environment.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		AI: AISettings{
			Provider:      AIProviderGemini,
			Model:         DefaultTextModels()[AIProviderGemini],
			ImageModel:    DefaultImageModel,
			RatePerMinute: 30,
		},
		Storage: StorageSettings{
			Backend:   StorageSQLite,
			RedisAddr: "localhost:6379",
		},
	}
}

// DefaultImageModel is the Gemini model used for avatar generation.
const DefaultImageModel = "gemini-2.5-flash-image"

// AllAIProviders returns every supported generator provider.
func AllAIProviders() []AIProvider {
	return []AIProvider{
		AIProviderGemini,
		AIProviderOpenAI,
		AIProviderOllama,
	}
}

// AllStorageBackends returns every supported storage backend.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{
		StorageSQLite,
		StorageRedis,
		StorageMemory,
	}
}

// DefaultTextModels returns default text models for each provider.
func DefaultTextModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderGemini: "gemini-3-flash-preview",
		AIProviderOpenAI: "gpt-4o-mini",
		AIProviderOllama: "llama3.2",
	}
}
