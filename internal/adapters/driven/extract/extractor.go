// Package extract converts job posting files into plain text.
//
// Supported formats are PDF, DOCX, Markdown and plain text. The format is
// chosen by file extension.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.DescriptionExtractor = (*Extractor)(nil)

// MaxFileSize is the largest posting file that will be read.
const MaxFileSize = 20 << 20

// extractFunc converts raw file bytes to text.
type extractFunc func(data []byte) (string, error)

// Extractor dispatches on file extension.
type Extractor struct {
	handlers map[string]extractFunc
}

// New creates an extractor with every built-in format registered.
func New() *Extractor {
	return &Extractor{
		handlers: map[string]extractFunc{
			".pdf":      extractPDF,
			".docx":     extractDOCX,
			".md":       extractMarkdown,
			".markdown": extractMarkdown,
			".txt":      extractPlainText,
			".text":     extractPlainText,
		},
	}
}

// SupportedExtensions returns the handled extensions in sorted order.
func (e *Extractor) SupportedExtensions() []string {
	exts := make([]string, 0, len(e.handlers))
	for ext := range e.handlers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extract reads the file at path and returns its text content.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(path))
	handler, ok := e.handlers[ext]
	if !ok {
		return "", fmt.Errorf("%s: %w (supported: %s)", filepath.Base(path), domain.ErrUnsupportedType,
			strings.Join(e.SupportedExtensions(), ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("%s is larger than %d MB: %w", filepath.Base(path), MaxFileSize>>20, domain.ErrInvalidInput)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := handler(data)
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", filepath.Base(path), err)
	}
	return collapseBlankLines(text), nil
}

// collapseBlankLines trims each line and keeps at most one empty line in a row.
func collapseBlankLines(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
