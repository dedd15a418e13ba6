package document

// Structural edits over Content. These return new values; command semantics
// (history, no-op rules) live in the style package.

// RemoveRange deletes the text covered by the selection. Boundary blocks of
// a multi-block selection are merged into one; middle blocks are dropped.
// The returned selection is a caret at the start of the removed range.
func (c Content) RemoveRange(sel Selection) (Content, Selection) {
	spans := c.SelectionSpans(sel)
	if len(spans) == 0 {
		return c, sel
	}

	first, last := spans[0], spans[len(spans)-1]
	caret := CollapsedSelection(first.Key, first.Start)

	if len(spans) == 1 {
		if first.Start >= first.End {
			return c, caret
		}
		out := c.ReplaceBlock(first.Index, c.Blocks[first.Index].DeleteSpan(first.Start, first.End))
		return out.PruneEntities(), caret
	}

	head := c.Blocks[first.Index].DeleteSpan(first.Start, c.Blocks[first.Index].Len())
	tail := c.Blocks[last.Index].DeleteSpan(0, last.End)
	merged := MergeBlocks(head, tail)

	out := c.Clone()
	blocks := make([]Block, 0, len(out.Blocks)-(last.Index-first.Index))
	blocks = append(blocks, out.Blocks[:first.Index]...)
	blocks = append(blocks, merged)
	blocks = append(blocks, out.Blocks[last.Index+1:]...)
	out.Blocks = blocks
	return out.PruneEntities(), caret
}

// MergeBlocks appends b's text, styles, and entities onto a. The merged
// block keeps a's key, type, and depth.
func MergeBlocks(a, b Block) Block {
	out := a.Clone()
	base := a.Len()
	out.Text = a.Text + b.Text

	styles := out.Styles
	for _, r := range b.Styles {
		styles = append(styles, StyleRange{Style: r.Style, Start: r.Start + base, End: r.End + base})
	}
	out.Styles = normalizeStyles(styles)

	entities := out.Entities
	for _, r := range b.Entities {
		entities = append(entities, EntityRange{Key: r.Key, Start: r.Start + base, End: r.End + base})
	}
	out.Entities = sortEntities(entities)

	return out
}

// InsertBlockAfter returns content with blk inserted directly after index i.
func (c Content) InsertBlockAfter(i int, blk Block) Content {
	out := c.Clone()
	blocks := make([]Block, 0, len(out.Blocks)+1)
	blocks = append(blocks, out.Blocks[:i+1]...)
	blocks = append(blocks, blk)
	blocks = append(blocks, out.Blocks[i+1:]...)
	out.Blocks = blocks
	return out
}
