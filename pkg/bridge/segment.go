package bridge

import (
	"sort"

	"github.com/yaklabco/inkwell/pkg/document"
)

// inlineSegment is a maximal run of text over which the active style set is
// constant.
type inlineSegment struct {
	Text   string
	Styles map[document.InlineStyle]bool
}

// entitySpan is a run of block text under at most one link entity. Key is
// empty for unlinked gaps. Exporters render link markup around the span and
// style markup around each segment inside it.
type entitySpan struct {
	Key      string
	Segments []inlineSegment
}

// splitBlock decomposes a block's text into entity spans and, within each,
// style segments. Exporters share this so link markup never straddles style
// markup.
func splitBlock(b document.Block) []entitySpan {
	n := b.Len()
	if n == 0 {
		return nil
	}

	type span struct {
		key        string
		start, end int
	}

	entities := make([]document.EntityRange, len(b.Entities))
	copy(entities, b.Entities)
	sort.Slice(entities, func(i, j int) bool { return entities[i].Start < entities[j].Start })

	var spans []span
	cursor := 0
	for _, r := range entities {
		start, end := r.Start, r.End
		if start < cursor {
			start = cursor
		}
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		if start > cursor {
			spans = append(spans, span{start: cursor, end: start})
		}
		spans = append(spans, span{key: r.Key, start: start, end: end})
		cursor = end
	}
	if cursor < n {
		spans = append(spans, span{start: cursor, end: n})
	}

	out := make([]entitySpan, 0, len(spans))
	for _, s := range spans {
		out = append(out, entitySpan{
			Key:      s.key,
			Segments: styleSegments(b, s.start, s.end),
		})
	}
	return out
}

// styleSegments cuts [start, end) at every style boundary.
func styleSegments(b document.Block, start, end int) []inlineSegment {
	cuts := []int{start, end}
	for _, r := range b.Styles {
		if r.Start > start && r.Start < end {
			cuts = append(cuts, r.Start)
		}
		if r.End > start && r.End < end {
			cuts = append(cuts, r.End)
		}
	}
	sort.Ints(cuts)

	var segs []inlineSegment
	for i := 0; i < len(cuts)-1; i++ {
		lo, hi := cuts[i], cuts[i+1]
		if lo >= hi {
			continue
		}
		segs = append(segs, inlineSegment{
			Text:   b.SliceText(lo, hi),
			Styles: b.StylesAt(lo),
		})
	}
	return segs
}
