package bridge

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/inkwell/pkg/document"
)

// inlineAccum assembles one block's text, style ranges, and link entities
// while an importer walks inline markup. Offsets are rune offsets into the
// accumulated text.
type inlineAccum struct {
	text     strings.Builder
	runes    int
	styles   []document.StyleRange
	entities []document.EntityRange
	links    map[string]document.LinkEntity
	uStart   int
}

func newInlineAccum() *inlineAccum {
	return &inlineAccum{
		links:  make(map[string]document.LinkEntity),
		uStart: -1,
	}
}

// append writes text carrying the currently active styles.
func (a *inlineAccum) append(s string, active []document.InlineStyle) {
	if s == "" {
		return
	}
	start := a.runes
	a.text.WriteString(s)
	a.runes += utf8.RuneCountInString(s)
	for _, st := range active {
		a.styles = append(a.styles, document.StyleRange{Style: st, Start: start, End: a.runes})
	}
}

// mark returns the current rune offset, for bracketing link text.
func (a *inlineAccum) mark() int {
	return a.runes
}

// openUnderline starts an underline run at the current offset. Nested opens
// extend the outermost run.
func (a *inlineAccum) openUnderline() {
	if a.uStart < 0 {
		a.uStart = a.runes
	}
}

// closeUnderline ends a pending underline run.
func (a *inlineAccum) closeUnderline() {
	if a.uStart >= 0 && a.runes > a.uStart {
		a.styles = append(a.styles, document.StyleRange{
			Style: document.StyleUnderline,
			Start: a.uStart,
			End:   a.runes,
		})
	}
	a.uStart = -1
}

// addLink records a link entity over [start, current offset).
func (a *inlineAccum) addLink(url string, start int) {
	if url == "" || a.runes <= start {
		return
	}
	key := document.NewKey()
	a.entities = append(a.entities, document.EntityRange{Key: key, Start: start, End: a.runes})
	a.links[key] = document.LinkEntity{URL: url}
}

// block finalizes the accumulated content into a document block. Link text
// is filled from the finished block text, and the entity payloads are merged
// into links, the importer's content-level entity map.
func (a *inlineAccum) block(typ document.BlockType, depth int, links map[string]document.LinkEntity) document.Block {
	a.closeUnderline()

	b := document.NewBlock()
	b.Type = typ
	b.Depth = depth
	b.Text = a.text.String()

	for _, r := range a.styles {
		b = b.AddStyle(r.Style, r.Start, r.End)
	}

	sort.Slice(a.entities, func(i, j int) bool { return a.entities[i].Start < a.entities[j].Start })
	b.Entities = a.entities

	for _, r := range b.Entities {
		ent := a.links[r.Key]
		ent.Text = b.SliceText(r.Start, r.End)
		links[r.Key] = ent
	}
	return b
}

// withStyle returns active extended by one style, without aliasing the
// caller's slice.
func withStyle(active []document.InlineStyle, st document.InlineStyle) []document.InlineStyle {
	out := make([]document.InlineStyle, 0, len(active)+1)
	out = append(out, active...)
	for _, have := range out {
		if have == st {
			return out
		}
	}
	return append(out, st)
}
