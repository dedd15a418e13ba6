package document

import (
	"unicode/utf8"

	"github.com/yaklabco/inkwell/pkg/edits"
)

// BlockType classifies a block. Every block has exactly one type and
// changing it replaces the type atomically for the whole block.
type BlockType string

// Block types supported by the document model.
const (
	BlockParagraph     BlockType = "paragraph"
	BlockHeaderOne     BlockType = "header-one"
	BlockHeaderTwo     BlockType = "header-two"
	BlockHeaderThree   BlockType = "header-three"
	BlockUnorderedList BlockType = "unordered-list-item"
	BlockOrderedList   BlockType = "ordered-list-item"
	BlockQuote         BlockType = "blockquote"
	BlockCode          BlockType = "code-block"
)

// IsValid returns true for a recognized block type.
func (t BlockType) IsValid() bool {
	switch t {
	case BlockParagraph, BlockHeaderOne, BlockHeaderTwo, BlockHeaderThree,
		BlockUnorderedList, BlockOrderedList, BlockQuote, BlockCode:
		return true
	default:
		return false
	}
}

// IsList returns true for the two list-item types.
func (t BlockType) IsList() bool {
	return t == BlockUnorderedList || t == BlockOrderedList
}

// IsHeading returns true for the heading types.
func (t BlockType) IsHeading() bool {
	return t == BlockHeaderOne || t == BlockHeaderTwo || t == BlockHeaderThree
}

// InlineStyle is a character-range-scoped text decoration.
type InlineStyle string

// Inline styles supported by the document model.
const (
	StyleBold          InlineStyle = "BOLD"
	StyleItalic        InlineStyle = "ITALIC"
	StyleUnderline     InlineStyle = "UNDERLINE"
	StyleStrikethrough InlineStyle = "STRIKETHROUGH"
)

// AllInlineStyles lists every inline style in canonical order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var AllInlineStyles = []InlineStyle{
	StyleBold, StyleItalic, StyleUnderline, StyleStrikethrough,
}

// MaxIndent is the deepest allowed list nesting depth.
const MaxIndent = 4

// StyleRange applies one inline style over the rune span [Start, End).
type StyleRange struct {
	Style InlineStyle
	Start int
	End   int
}

// EntityRange attaches the entity with the given key to the rune span
// [Start, End). Entity ranges within a block never overlap.
type EntityRange struct {
	Key   string
	Start int
	End   int
}

// LinkEntity is a link annotation attached to a text range.
type LinkEntity struct {
	URL  string
	Text string
}

// Block is one paragraph, heading, list item, blockquote, or code block.
type Block struct {
	// Key uniquely identifies the block within its document.
	Key string

	// Type is the block's single block type.
	Type BlockType

	// Text is the block's plain text. Offsets in Styles and Entities are
	// rune offsets into it.
	Text string

	// Styles holds the inline style ranges, normalized: sorted and with no
	// two ranges of the same style overlapping or touching.
	Styles []StyleRange

	// Entities holds non-overlapping entity ranges, sorted by start.
	Entities []EntityRange

	// Depth is the list nesting depth in [0, MaxIndent]. Only meaningful
	// for list-item blocks; zero otherwise.
	Depth int

	// Language is the normalized code-fence language tag for code blocks.
	Language string
}

// NewBlock creates an empty paragraph block with a fresh key.
func NewBlock() Block {
	return Block{Key: NewKey(), Type: BlockParagraph}
}

// Len returns the block text length in runes.
func (b Block) Len() int {
	return utf8.RuneCountInString(b.Text)
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	out := b
	if len(b.Styles) > 0 {
		out.Styles = make([]StyleRange, len(b.Styles))
		copy(out.Styles, b.Styles)
	}
	if len(b.Entities) > 0 {
		out.Entities = make([]EntityRange, len(b.Entities))
		copy(out.Entities, b.Entities)
	}
	return out
}

// HasStyleOver reports whether style covers every rune of [start, end).
// An empty span is never covered.
func (b Block) HasStyleOver(style InlineStyle, start, end int) bool {
	if start >= end {
		return false
	}
	return coversSpan(b.Styles, style, start, end)
}

// AddStyle returns a copy of the block with style applied over [start, end).
// Already-styled sub-ranges are absorbed; other styles are untouched.
func (b Block) AddStyle(style InlineStyle, start, end int) Block {
	start, end = clampSpan(start, end, b.Len())
	if start >= end {
		return b
	}
	out := b.Clone()
	out.Styles = normalizeStyles(append(out.Styles, StyleRange{Style: style, Start: start, End: end}))
	return out
}

// RemoveStyle returns a copy of the block with style cleared over [start, end).
func (b Block) RemoveStyle(style InlineStyle, start, end int) Block {
	start, end = clampSpan(start, end, b.Len())
	if start >= end {
		return b
	}
	out := b.Clone()
	out.Styles = subtractStyle(out.Styles, style, start, end)
	return out
}

// StylesAt returns the set of styles covering the rune at offset.
func (b Block) StylesAt(offset int) map[InlineStyle]bool {
	active := make(map[InlineStyle]bool)
	for _, r := range b.Styles {
		if r.Start <= offset && offset < r.End {
			active[r.Style] = true
		}
	}
	return active
}

// EntityAt returns the key of the entity covering offset, if any.
func (b Block) EntityAt(offset int) (string, bool) {
	for _, r := range b.Entities {
		if r.Start <= offset && offset < r.End {
			return r.Key, true
		}
	}
	return "", false
}

// InsertTextAt returns a copy of the block with text inserted at the given
// rune offset. Style and entity ranges after the insertion point shift
// right; ranges spanning the point grow to cover the inserted text.
func (b Block) InsertTextAt(offset int, text string) Block {
	if text == "" {
		return b
	}
	offset = clampOffset(offset, b.Len())
	n := utf8.RuneCountInString(text)

	out := b.Clone()
	out.Text = edits.Splice(b.Text, offset, offset, text)
	out.Styles = shiftStylesOnInsert(out.Styles, offset, n)
	out.Entities = shiftEntitiesOnInsert(out.Entities, offset, n)
	return out
}

// DeleteSpan returns a copy of the block with the rune span [start, end)
// removed. Ranges are shrunk or dropped to match.
func (b Block) DeleteSpan(start, end int) Block {
	start, end = clampSpan(start, end, b.Len())
	if start >= end {
		return b
	}
	out := b.Clone()
	out.Text = edits.Splice(b.Text, start, end, "")
	out.Styles = shiftStylesOnDelete(out.Styles, start, end)
	out.Entities = shiftEntitiesOnDelete(out.Entities, start, end)
	return out
}

// SplitAt splits the block at the given rune offset into two blocks. The
// first keeps the block's key; the second gets a fresh key. Styles and
// entities are divided between the halves.
func (b Block) SplitAt(offset int) (Block, Block) {
	offset = clampOffset(offset, b.Len())
	runes := []rune(b.Text)

	head := b.Clone()
	head.Text = string(runes[:offset])
	head.Styles = truncateStyles(b.Styles, offset)
	head.Entities = truncateEntities(b.Entities, offset)

	tail := b.Clone()
	tail.Key = NewKey()
	tail.Text = string(runes[offset:])
	tail.Styles = rebaseStyles(b.Styles, offset)
	tail.Entities = rebaseEntities(b.Entities, offset)

	return head, tail
}

// SliceText returns the block text over the rune span [start, end).
func (b Block) SliceText(start, end int) string {
	start, end = clampSpan(start, end, b.Len())
	if start >= end {
		return ""
	}
	runes := []rune(b.Text)
	return string(runes[start:end])
}

func clampOffset(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func clampSpan(start, end, max int) (int, int) {
	start = clampOffset(start, max)
	end = clampOffset(end, max)
	if end < start {
		start, end = end, start
	}
	return start, end
}
