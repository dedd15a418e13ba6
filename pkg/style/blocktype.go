package style

import "github.com/yaklabco/inkwell/pkg/document"

// allBlockTypes enumerates every block type for the transition table.
//
//nolint:gochecknoglobals // Read-only lookup table.
var allBlockTypes = []document.BlockType{
	document.BlockParagraph,
	document.BlockHeaderOne,
	document.BlockHeaderTwo,
	document.BlockHeaderThree,
	document.BlockUnorderedList,
	document.BlockOrderedList,
	document.BlockQuote,
	document.BlockCode,
}

type transition struct {
	current   document.BlockType
	requested document.BlockType
}

// blockTransitions maps (current, requested) to the resulting block type.
// The rules, expressed as a table so the edge cases stay auditable:
//   - requesting a block's current type toggles it back to paragraph,
//   - except headings, which are idempotent and never toggle off,
//   - any other request switches to the requested type (this is what makes
//     the two list types mutually exclusive).
//
//nolint:gochecknoglobals // Read-only lookup table.
var blockTransitions = func() map[transition]document.BlockType {
	m := make(map[transition]document.BlockType, len(allBlockTypes)*len(allBlockTypes))
	for _, cur := range allBlockTypes {
		for _, req := range allBlockTypes {
			next := req
			if cur == req && !req.IsHeading() {
				next = document.BlockParagraph
			}
			m[transition{current: cur, requested: req}] = next
		}
	}
	return m
}()

// NextBlockType resolves one step of the block type transition table.
// Unknown types pass the request through unchanged.
func NextBlockType(current, requested document.BlockType) document.BlockType {
	if next, ok := blockTransitions[transition{current: current, requested: requested}]; ok {
		return next
	}
	return requested
}

// ToggleBlock applies the requested block type to every block intersected
// by the selection, through the transition table. Depth resets to 0 when a
// block enters a list type from a non-list type and whenever it leaves the
// list types; switching between the two list types keeps the depth.
func ToggleBlock(st document.State, requested document.BlockType) document.State {
	if !requested.IsValid() {
		return st
	}

	spans := st.Content.SelectionSpans(st.Selection)
	if len(spans) == 0 {
		return st
	}

	content := st.Content
	changed := false
	for _, span := range spans {
		b := content.Blocks[span.Index]
		next := NextBlockType(b.Type, requested)
		if next == b.Type {
			continue
		}

		nb := b.Clone()
		nb.Type = next
		switch {
		case !next.IsList():
			nb.Depth = 0
		case !b.Type.IsList():
			nb.Depth = 0
		}
		if next != document.BlockCode {
			nb.Language = ""
		}
		content = content.ReplaceBlock(span.Index, nb)
		changed = true
	}

	if !changed {
		return st
	}
	return st.Commit(content, st.Selection)
}
