// Package langdetect normalizes code-fence language tags and detects the
// language of untagged code blocks. It uses go-enry for alias resolution
// and content classification.
package langdetect

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// fenceAliases maps fence spellings to canonical tags where enry's alias
// table resolves to names that make poor fence tags.
var fenceAliases = map[string]string{
	"sh":           "bash",
	"shell":        "bash",
	"zsh":          "bash",
	"shell-script": "bash",
	"golang":       "go",
	"yml":          "yaml",
	"plain":        "text",
	"plaintext":    "text",
	"txt":          "text",
	"c++":          "cpp",
	"docker":       "dockerfile",
}

// NormalizeFence canonicalizes a code-fence language tag: aliases collapse
// to one spelling and casing is normalized. Unknown tags pass through
// lowercased.
func NormalizeFence(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}
	if canon, ok := fenceAliases[tag]; ok {
		return canon
	}
	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return normalize(lang)
	}
	return tag
}

// Detect returns a fence tag for untagged code content, or "" when no
// confident detection is possible.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return ""
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Quick structural checks the classifier tends to miss on short input.
	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return "go"
	}
	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) && json.Valid(trimmed) {
		return "json"
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}
	return ""
}

// normalize converts enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
