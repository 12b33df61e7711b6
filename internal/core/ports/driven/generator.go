package driven

import "context"

// Generator produces text or images from a prompt.
// This is an optional service - when nil, AI features return their fallback text.
//
// Implementations include:
//   - Gemini (text and images)
//   - OpenAI (text)
//   - Ollama (local text models)
type Generator interface {
	// GenerateText produces a single completion.
	// An empty string with a nil error means the provider returned nothing.
	GenerateText(ctx context.Context, req TextRequest) (string, error)

	// GenerateImage produces image bytes.
	// Returns domain.ErrImageUnsupported if the provider cannot generate images.
	GenerateImage(ctx context.Context, req ImageRequest) ([]byte, error)

	// ModelName returns the name of the text model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// TextRequest configures a text generation call.
type TextRequest struct {
	// Prompt is the user prompt.
	Prompt string

	// SystemInstruction is optional guidance applied before the prompt.
	SystemInstruction string

	// MaxTokens is the maximum number of tokens to generate. Zero uses the provider default.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

// ImageRequest configures an image generation call.
type ImageRequest struct {
	// Prompt describes the image or the transformation to apply.
	Prompt string

	// BaseImage is an optional source image to transform.
	BaseImage []byte

	// BaseMIMEType is the MIME type of BaseImage. Defaults to image/jpeg.
	BaseMIMEType string
}
