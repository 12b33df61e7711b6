package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

var (
	codeFence    = regexp.MustCompile("(?m)^```.*$")
	inlineCode   = regexp.MustCompile("`([^`]+)`")
	images       = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	links        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headings     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasis     = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	blockquote   = regexp.MustCompile(`(?m)^>\s?`)
	horizontal   = regexp.MustCompile(`(?m)^\s*([-*_]\s*){3,}$`)
	bulletMarker = regexp.MustCompile(`(?m)^(\s*)[*+]\s+`)
)

// extractPlainText validates UTF-8 and returns the content unchanged.
func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file is not UTF-8 text", domain.ErrInvalidInput)
	}
	return string(data), nil
}

// extractMarkdown removes markup that adds noise to a prompt while keeping
// list structure, so bullet points in a posting stay readable.
func extractMarkdown(data []byte) (string, error) {
	content, err := extractPlainText(data)
	if err != nil {
		return "", err
	}

	content = codeFence.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "$1")
	content = images.ReplaceAllString(content, "")
	content = links.ReplaceAllString(content, "$1")
	content = headings.ReplaceAllString(content, "")
	content = emphasis.ReplaceAllString(content, "$2")
	content = blockquote.ReplaceAllString(content, "")
	content = horizontal.ReplaceAllString(content, "")
	content = bulletMarker.ReplaceAllString(content, "$1- ")

	return strings.TrimSpace(content), nil
}
