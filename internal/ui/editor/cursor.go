package editor

import "github.com/yaklabco/inkwell/pkg/document"

// Caret movement over the block list. Movement only changes the selection,
// never the content, so none of it touches the history stacks.

// pointBefore reports whether point a precedes point b in document order.
func pointBefore(c document.Content, aKey string, aOff int, bKey string, bOff int) bool {
	ai := c.BlockIndex(aKey)
	bi := c.BlockIndex(bKey)
	if ai != bi {
		return ai < bi
	}
	return aOff < bOff
}

// selectionEdges returns the selection's start and end points in document
// order.
func selectionEdges(c document.Content, sel document.Selection) (document.Selection, document.Selection) {
	start := document.CollapsedSelection(sel.AnchorKey, sel.AnchorOffset)
	end := document.CollapsedSelection(sel.FocusKey, sel.FocusOffset)
	if pointBefore(c, sel.FocusKey, sel.FocusOffset, sel.AnchorKey, sel.AnchorOffset) {
		return end, start
	}
	return start, end
}

// moveHorizontal moves the focus one rune left (delta -1) or right (delta 1).
// Without extend, an active selection collapses to its edge in the movement
// direction instead of moving.
func moveHorizontal(st document.State, delta int, extend bool) document.State {
	sel := st.Content.ClampSelection(st.Selection)

	if !extend && !sel.IsCollapsed() {
		start, end := selectionEdges(st.Content, sel)
		if delta < 0 {
			return st.WithSelection(start)
		}
		return st.WithSelection(end)
	}

	i := st.Content.BlockIndex(sel.FocusKey)
	if i < 0 {
		return st
	}
	blk := st.Content.Blocks[i]
	off := sel.FocusOffset + delta

	key := sel.FocusKey
	switch {
	case off < 0:
		if i == 0 {
			off = 0
		} else {
			prev := st.Content.Blocks[i-1]
			key = prev.Key
			off = prev.Len()
		}
	case off > blk.Len():
		if i == len(st.Content.Blocks)-1 {
			off = blk.Len()
		} else {
			key = st.Content.Blocks[i+1].Key
			off = 0
		}
	}

	if extend {
		sel.FocusKey = key
		sel.FocusOffset = off
		return st.WithSelection(sel)
	}
	return st.WithSelection(document.CollapsedSelection(key, off))
}

// moveVertical moves the caret to the previous (delta -1) or next (delta 1)
// block, keeping the offset where the block allows.
func moveVertical(st document.State, delta int) document.State {
	sel := st.Content.ClampSelection(st.Selection)

	i := st.Content.BlockIndex(sel.FocusKey)
	if i < 0 {
		return st
	}
	j := i + delta
	if j < 0 || j >= len(st.Content.Blocks) {
		return st
	}

	target := st.Content.Blocks[j]
	off := sel.FocusOffset
	if off > target.Len() {
		off = target.Len()
	}
	return st.WithSelection(document.CollapsedSelection(target.Key, off))
}

// moveLineEdge moves the caret to the start or end of the focus block.
func moveLineEdge(st document.State, toEnd bool) document.State {
	sel := st.Content.ClampSelection(st.Selection)

	i := st.Content.BlockIndex(sel.FocusKey)
	if i < 0 {
		return st
	}
	off := 0
	if toEnd {
		off = st.Content.Blocks[i].Len()
	}
	return st.WithSelection(document.CollapsedSelection(sel.FocusKey, off))
}
