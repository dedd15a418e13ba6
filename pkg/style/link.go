package style

import (
	"sort"

	"github.com/yaklabco/inkwell/pkg/document"
)

// AddLink wraps the current selection in a link entity carrying the url and
// the selected text. Entities already overlapping the range are replaced.
// An empty url or a collapsed selection is a no-op.
func AddLink(st document.State, url string) document.State {
	if url == "" || st.Selection.IsCollapsed() {
		return st
	}

	spans := nonEmptySpans(st.Content.SelectionSpans(st.Selection))
	if len(spans) == 0 {
		return st
	}

	entity := document.LinkEntity{
		URL:  url,
		Text: st.Content.SelectedText(st.Selection),
	}
	key := document.NewKey()

	content := st.Content
	for _, span := range spans {
		b := content.Blocks[span.Index].Clone()
		b.Entities = replaceEntitySpan(b.Entities, key, span.Start, span.End)
		content = content.ReplaceBlock(span.Index, b)
	}
	content = content.SetEntity(key, entity).PruneEntities()

	return st.Commit(content, st.Selection)
}

// RemoveLink removes every link entity range intersecting the selection.
// No-op when the selection touches no entity.
func RemoveLink(st document.State) document.State {
	if st.Selection.IsCollapsed() {
		return removeLinkAtCaret(st)
	}

	spans := st.Content.SelectionSpans(st.Selection)
	if len(spans) == 0 {
		return st
	}

	content := st.Content
	removed := false
	for _, span := range spans {
		b := content.Blocks[span.Index]
		kept, dropped := splitEntitySpan(b.Entities, span.Start, span.End)
		if !dropped {
			continue
		}
		nb := b.Clone()
		nb.Entities = kept
		content = content.ReplaceBlock(span.Index, nb)
		removed = true
	}

	if !removed {
		return st
	}
	return st.Commit(content.PruneEntities(), st.Selection)
}

// removeLinkAtCaret removes the entity under (or directly before) a
// collapsed selection.
func removeLinkAtCaret(st document.State) document.State {
	b, ok := st.Content.Block(st.Selection.AnchorKey)
	if !ok {
		return st
	}

	off := st.Selection.AnchorOffset
	key, found := b.EntityAt(off)
	if !found && off > 0 {
		key, found = b.EntityAt(off - 1)
	}
	if !found {
		return st
	}

	nb := b.Clone()
	kept := nb.Entities[:0:0]
	for _, r := range nb.Entities {
		if r.Key != key {
			kept = append(kept, r)
		}
	}
	nb.Entities = kept

	content := st.Content.ReplaceBlock(st.Content.BlockIndex(b.Key), nb).PruneEntities()
	return st.Commit(content, st.Selection)
}

// replaceEntitySpan drops entity ranges overlapping [start, end) and adds a
// range for the new entity key over the span.
func replaceEntitySpan(ranges []document.EntityRange, key string, start, end int) []document.EntityRange {
	kept, _ := splitEntitySpan(ranges, start, end)
	out := append(kept, document.EntityRange{Key: key, Start: start, End: end})
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// splitEntitySpan partitions entity ranges around [start, end), returning
// the ranges that do not intersect it and whether any were dropped.
func splitEntitySpan(ranges []document.EntityRange, start, end int) ([]document.EntityRange, bool) {
	var kept []document.EntityRange
	dropped := false
	for _, r := range ranges {
		if r.End <= start || r.Start >= end {
			kept = append(kept, r)
			continue
		}
		dropped = true
	}
	return kept, dropped
}
