package edits

import (
	"strings"
	"unicode/utf8"
)

// Apply applies a sorted, validated slice of edits to text. Prepare the
// edits with Prepare first; Apply assumes ordering and non-overlap.
func Apply(text string, es []TextEdit) string {
	if len(es) == 0 {
		return text
	}

	runes := []rune(text)

	grow := len(text)
	for _, e := range es {
		if !e.IsDelete() {
			grow += len(e.Text)
		}
	}

	var out strings.Builder
	out.Grow(grow)

	cursor := 0
	for _, e := range es {
		out.WriteString(string(runes[cursor:e.Start]))
		out.WriteString(e.Text)
		cursor = e.End
	}
	out.WriteString(string(runes[cursor:]))

	return out.String()
}

// Splice is the single-edit convenience: replace runes [start, end) of text
// with replacement. Out-of-range spans are clamped.
func Splice(text string, start, end int, replacement string) string {
	n := utf8.RuneCountInString(text)
	start = clamp(start, n)
	end = clamp(end, n)
	if end < start {
		start, end = end, start
	}
	return Apply(text, []TextEdit{{Start: start, End: end, Text: replacement}})
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
