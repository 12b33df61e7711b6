package driven

import "context"

// DescriptionExtractor converts a job posting file into plain text.
type DescriptionExtractor interface {
	// Extract reads the file at path and returns its text content.
	// Returns domain.ErrUnsupportedType for unknown file types.
	Extract(ctx context.Context, path string) (string, error)

	// SupportedExtensions returns the file extensions this extractor handles.
	SupportedExtensions() []string
}
