// Package bridge converts between serialized formats and document content.
// Round-trips are best-effort: styles a format cannot represent are dropped
// or approximated on export.
package bridge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/inkwell/pkg/document"
)

// Format identifies a serialization format.
type Format string

// Formats supported by the bridge.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Markdown flavors supported by the markdown bridge.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// ParseFormat parses a format string, returning an error for unknown formats.
// Common file-extension spellings are accepted.
func ParseFormat(formatStr string) (Format, error) {
	switch strings.ToLower(formatStr) {
	case "markdown", "md", "":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: markdown, html", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatHTML:
		return true
	default:
		return false
	}
}

// Extension returns the canonical file extension for the format.
func (f Format) Extension() string {
	if f == FormatHTML {
		return ".html"
	}
	return ".md"
}

// Bridge imports serialized text into document content and exports content
// back out.
type Bridge interface {
	// Import parses serialized text into document content.
	Import(input string) (document.Content, error)

	// Export serializes document content.
	Export(content document.Content) (string, error)
}

// Options configures bridge construction.
type Options struct {
	// Flavor selects the markdown dialect. Invalid or empty values default
	// to GFM so strikethrough survives round-trips.
	Flavor string
}

// New creates a Bridge for the given format.
func New(format Format, opts Options) (Bridge, error) {
	if format == "" {
		format = FormatMarkdown
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatHTML:
		return newHTMLBridge(), nil
	case FormatMarkdown:
		return newMarkdownBridge(opts.Flavor), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Import parses input in the given format using a default-configured bridge.
func Import(format Format, input string) (document.Content, error) {
	b, err := New(format, Options{})
	if err != nil {
		return document.Content{}, err
	}
	return b.Import(input)
}

// Export serializes content in the given format using a default-configured
// bridge.
func Export(format Format, content document.Content) (string, error) {
	b, err := New(format, Options{})
	if err != nil {
		return "", err
	}
	return b.Export(content)
}

// openingTag matches an HTML element at the start of trimmed input.
var openingTag = regexp.MustCompile(`^<!?[a-zA-Z][a-zA-Z0-9-]*[\s>/]`)

// DetectFormat sniffs whether input looks like HTML or markdown. Markdown is
// the fallback: anything that does not open with a tag is treated as text.
func DetectFormat(input string) Format {
	trimmed := strings.TrimSpace(input)
	if openingTag.MatchString(trimmed) {
		return FormatHTML
	}
	return FormatMarkdown
}
