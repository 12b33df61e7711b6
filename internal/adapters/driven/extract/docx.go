package extract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// extractDOCX reads word/document.xml and flattens its paragraphs.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: parse docx: %v", domain.ErrInvalidInput, err)
	}
	defer doc.Close()

	return parseDocumentXML(doc.Editable().GetContent()), nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
	Tabs []struct{}    `xml:"tab"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts one line of text per paragraph.
func parseDocumentXML(content string) string {
	var doc documentXML
	if err := xml.Unmarshal([]byte(content), &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, r := range para.Runs {
			for range r.Tabs {
				result.WriteString("\t")
			}
			for _, text := range r.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String())
}
