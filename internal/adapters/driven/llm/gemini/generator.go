// Package gemini provides a text and image generator adapter using the
// Google Gen AI SDK.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// Default configuration values.
const (
	DefaultModel      = "gemini-3-flash-preview"
	DefaultImageModel = "gemini-2.5-flash-image"
	defaultImageMIME  = "image/jpeg"
)

// Config holds configuration for the Gemini generator.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey string

	// Model is the text model (default: gemini-3-flash-preview).
	Model string

	// ImageModel is the image model (default: gemini-2.5-flash-image).
	ImageModel string

	// BaseURL overrides the API endpoint. Empty uses the SDK default.
	BaseURL string
}

// Generator produces text and images using Gemini.
type Generator struct {
	client     *genai.Client
	model      string
	imageModel string
}

// New creates a new Gemini generator.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required: %w", domain.ErrInvalidInput)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Generator{
		client:     client,
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
	}, nil
}

// GenerateText produces a completion. The system instruction, when set,
// is passed as the model's system instruction rather than prepended.
func (g *Generator) GenerateText(ctx context.Context, in driven.TextRequest) (string, error) {
	config := &genai.GenerateContentConfig{}
	if in.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(in.SystemInstruction, genai.RoleUser)
	}
	if in.MaxTokens > 0 {
		config.MaxOutputTokens = int32(in.MaxTokens)
	}
	if in.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(in.Temperature))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(in.Prompt), config)
	if err != nil {
		return "", wrapError("generate text", err)
	}

	return resp.Text(), nil
}

// GenerateImage produces an image, optionally transforming BaseImage.
// The first inline image part of the first candidate is returned.
func (g *Generator) GenerateImage(ctx context.Context, in driven.ImageRequest) ([]byte, error) {
	parts := make([]*genai.Part, 0, 2)
	if len(in.BaseImage) > 0 {
		mime := in.BaseMIMEType
		if mime == "" {
			mime = defaultImageMIME
		}
		parts = append(parts, genai.NewPartFromBytes(in.BaseImage, mime))
	}
	parts = append(parts, genai.NewPartFromText(in.Prompt))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.imageModel, contents, nil)
	if err != nil {
		return nil, wrapError("generate image", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: no image returned")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, fmt.Errorf("gemini: no image returned")
}

// ModelName returns the name of the text model being used.
func (g *Generator) ModelName() string {
	return g.model
}

// ImageModelName returns the name of the image model being used.
func (g *Generator) ImageModelName() string {
	return g.imageModel
}

// Ping validates the key by fetching the text model's metadata.
func (g *Generator) Ping(ctx context.Context) error {
	if _, err := g.client.Models.Get(ctx, g.model, nil); err != nil {
		return wrapError("ping", err)
	}
	return nil
}

// Close releases resources.
func (g *Generator) Close() error {
	// The SDK client holds no resources that need explicit cleanup
	return nil
}

// wrapError maps quota failures to domain.ErrRateLimited.
func wrapError(op string, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		return fmt.Errorf("gemini: %s: %w: %v", op, domain.ErrRateLimited, err)
	}
	return fmt.Errorf("gemini: %s: %w", op, err)
}
