// Package edits provides rune-offset text edits with validation, ordering,
// and application. The document model uses it for every text splice, and the
// markdown exporter batches escape insertions through it, so offset handling
// lives in one place.
package edits

// TextEdit replaces the rune span [Start, End) with Text.
type TextEdit struct {
	// Start is the rune index where the edit begins (inclusive).
	Start int

	// End is the rune index where the edit ends (exclusive).
	End int

	// Text is the replacement text.
	Text string
}

// IsInsert reports whether the edit inserts without removing.
func (e TextEdit) IsInsert() bool { return e.Start == e.End }

// IsDelete reports whether the edit removes without inserting.
func (e TextEdit) IsDelete() bool { return e.Text == "" && e.Start < e.End }

// Builder accumulates edits against one piece of text.
type Builder struct {
	Edits []TextEdit
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{Edits: make([]TextEdit, 0)}
}

// Replace adds an edit replacing runes [start, end) with text.
func (b *Builder) Replace(start, end int, text string) {
	b.Edits = append(b.Edits, TextEdit{Start: start, End: end, Text: text})
}

// Insert adds an edit inserting text at offset.
func (b *Builder) Insert(offset int, text string) {
	b.Replace(offset, offset, text)
}

// Delete adds an edit deleting runes [start, end).
func (b *Builder) Delete(start, end int) {
	b.Replace(start, end, "")
}
