package document

// Selection is the cursor: an anchor point (where the selection started) and
// a focus point (where it ends). The two may be in either document order.
type Selection struct {
	AnchorKey    string
	AnchorOffset int
	FocusKey     string
	FocusOffset  int
}

// CollapsedSelection returns a caret at the given block and rune offset.
func CollapsedSelection(key string, offset int) Selection {
	return Selection{
		AnchorKey:    key,
		AnchorOffset: offset,
		FocusKey:     key,
		FocusOffset:  offset,
	}
}

// IsCollapsed reports whether the selection is a caret with no extent.
func (s Selection) IsCollapsed() bool {
	return s.AnchorKey == s.FocusKey && s.AnchorOffset == s.FocusOffset
}

// BlockSpan is the portion of one block covered by a selection.
type BlockSpan struct {
	// Index is the block's position in Content.Blocks.
	Index int

	// Key is the block's key.
	Key string

	// Start and End are the covered rune span [Start, End) within the
	// block. Middle blocks of a multi-block selection are fully covered.
	Start int
	End   int
}

// SelectionSpans resolves the selection to per-block spans in document
// order. Stale selections (keys not present in the content) resolve to nil.
func (c Content) SelectionSpans(sel Selection) []BlockSpan {
	ai := c.BlockIndex(sel.AnchorKey)
	fi := c.BlockIndex(sel.FocusKey)
	if ai < 0 || fi < 0 {
		return nil
	}

	startIdx, startOff := ai, sel.AnchorOffset
	endIdx, endOff := fi, sel.FocusOffset
	if startIdx > endIdx || (startIdx == endIdx && startOff > endOff) {
		startIdx, endIdx = endIdx, startIdx
		startOff, endOff = endOff, startOff
	}

	spans := make([]BlockSpan, 0, endIdx-startIdx+1)
	for i := startIdx; i <= endIdx; i++ {
		b := c.Blocks[i]
		span := BlockSpan{Index: i, Key: b.Key, Start: 0, End: b.Len()}
		if i == startIdx {
			span.Start = clampOffset(startOff, b.Len())
		}
		if i == endIdx {
			span.End = clampOffset(endOff, b.Len())
		}
		spans = append(spans, span)
	}
	return spans
}

// SelectedText returns the plain text covered by the selection, with
// block boundaries rendered as newlines.
func (c Content) SelectedText(sel Selection) string {
	spans := c.SelectionSpans(sel)
	out := ""
	for i, span := range spans {
		if i > 0 {
			out += "\n"
		}
		out += c.Blocks[span.Index].SliceText(span.Start, span.End)
	}
	return out
}

// ClampSelection clamps both selection points into the content's bounds,
// resolving stale block keys to the nearest valid position.
func (c Content) ClampSelection(sel Selection) Selection {
	if len(c.Blocks) == 0 {
		return Selection{}
	}
	sel.AnchorKey, sel.AnchorOffset = c.clampPoint(sel.AnchorKey, sel.AnchorOffset)
	sel.FocusKey, sel.FocusOffset = c.clampPoint(sel.FocusKey, sel.FocusOffset)
	return sel
}

func (c Content) clampPoint(key string, offset int) (string, int) {
	i := c.BlockIndex(key)
	if i < 0 {
		last := c.Blocks[len(c.Blocks)-1]
		return last.Key, last.Len()
	}
	return key, clampOffset(offset, c.Blocks[i].Len())
}
