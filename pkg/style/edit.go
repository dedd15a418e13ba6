package style

import (
	"unicode/utf8"

	"github.com/yaklabco/inkwell/pkg/document"
)

// Text-editing commands. The shell funnels keystrokes through these; each
// is a pure (State, input) -> State function like the styling commands.

// InsertText types text at the caret, replacing the selection if one is
// active. Inserted text takes on the styles active at the caret.
func InsertText(st document.State, text string) document.State {
	if text == "" {
		return st
	}

	content, caret := st.Content, st.Selection
	if !caret.IsCollapsed() {
		content, caret = content.RemoveRange(caret)
	}

	i := content.BlockIndex(caret.AnchorKey)
	if i < 0 {
		return st
	}

	active := ActiveStyles(document.State{Content: content, Selection: caret})

	b := content.Blocks[i].InsertTextAt(caret.AnchorOffset, text)
	n := utf8.RuneCountInString(text)
	for styleName := range active.Inline {
		b = b.AddStyle(styleName, caret.AnchorOffset, caret.AnchorOffset+n)
	}
	content = content.ReplaceBlock(i, b)

	next := document.CollapsedSelection(caret.AnchorKey, caret.AnchorOffset+n)
	return st.Commit(content, next)
}

// InsertSoftBreak inserts a literal line break inside the current block
// instead of splitting it (the modifier-return path).
func InsertSoftBreak(st document.State) document.State {
	return InsertText(st, "\n")
}

// DeleteBackward deletes the selection, or the rune before a collapsed
// caret. At the start of a block it merges the block into its predecessor.
// At the very start of the document it is a defined no-op.
func DeleteBackward(st document.State) document.State {
	if !st.Selection.IsCollapsed() {
		content, caret := st.Content.RemoveRange(st.Selection)
		return st.Commit(content, caret)
	}

	i := st.Content.BlockIndex(st.Selection.AnchorKey)
	if i < 0 {
		return st
	}
	off := st.Selection.AnchorOffset

	if off > 0 {
		b := st.Content.Blocks[i].DeleteSpan(off-1, off)
		content := st.Content.ReplaceBlock(i, b).PruneEntities()
		return st.Commit(content, document.CollapsedSelection(b.Key, off-1))
	}

	// Caret at block start: nothing before the first block.
	if i == 0 {
		return st
	}

	prev := st.Content.Blocks[i-1]
	merged := document.MergeBlocks(prev, st.Content.Blocks[i])
	content := st.Content.Clone()
	blocks := make([]document.Block, 0, len(content.Blocks)-1)
	blocks = append(blocks, content.Blocks[:i-1]...)
	blocks = append(blocks, merged)
	blocks = append(blocks, content.Blocks[i+1:]...)
	content.Blocks = blocks

	return st.Commit(content.PruneEntities(), document.CollapsedSelection(prev.Key, prev.Len()))
}

// SplitBlock splits the current block at the caret (the plain return path),
// replacing the selection first if one is active. The new block keeps the
// type and depth of the original, except that splitting an empty list item
// leaves the list by turning it into a paragraph.
func SplitBlock(st document.State) document.State {
	content, caret := st.Content, st.Selection
	if !caret.IsCollapsed() {
		content, caret = content.RemoveRange(caret)
	}

	i := content.BlockIndex(caret.AnchorKey)
	if i < 0 {
		return st
	}
	b := content.Blocks[i]

	if b.Type.IsList() && b.Len() == 0 {
		nb := b.Clone()
		nb.Type = document.BlockParagraph
		nb.Depth = 0
		return st.Commit(content.ReplaceBlock(i, nb), caret)
	}

	head, tail := b.SplitAt(caret.AnchorOffset)
	content = content.ReplaceBlock(i, head).InsertBlockAfter(i, tail)

	return st.Commit(content.PruneEntities(), document.CollapsedSelection(tail.Key, 0))
}
