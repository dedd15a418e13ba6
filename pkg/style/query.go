package style

import "github.com/yaklabco/inkwell/pkg/document"

// Active describes what the UI should highlight for the current selection.
type Active struct {
	// Inline holds the styles covering the entire selection.
	Inline map[document.InlineStyle]bool

	// Block is the type of the block containing the selection's anchor.
	Block document.BlockType

	// LinkKey is the entity key under the selection anchor, if any.
	LinkKey string
}

// ActiveStyles derives the selection's active inline styles and block type.
// An inline style counts as active only when it spans the whole selection,
// matching the toggle semantics of ToggleInline. For a collapsed selection
// the styles of the character before the caret apply, so typing continues
// the run under the cursor.
func ActiveStyles(st document.State) Active {
	out := Active{Inline: make(map[document.InlineStyle]bool)}

	anchor, ok := st.Content.Block(st.Selection.AnchorKey)
	if !ok {
		out.Block = document.BlockParagraph
		return out
	}
	out.Block = anchor.Type
	if key, found := anchor.EntityAt(caretProbe(st.Selection.AnchorOffset)); found {
		out.LinkKey = key
	}

	if st.Selection.IsCollapsed() {
		if anchor.Len() == 0 {
			return out
		}
		out.Inline = anchor.StylesAt(caretProbe(st.Selection.AnchorOffset))
		return out
	}

	spans := nonEmptySpans(st.Content.SelectionSpans(st.Selection))
	if len(spans) == 0 {
		return out
	}

	for _, style := range document.AllInlineStyles {
		covered := true
		for _, span := range spans {
			if !st.Content.Blocks[span.Index].HasStyleOver(style, span.Start, span.End) {
				covered = false
				break
			}
		}
		if covered {
			out.Inline[style] = true
		}
	}
	return out
}

// caretProbe picks the rune a caret offset refers to: the character before
// the caret, except at the block start.
func caretProbe(offset int) int {
	if offset > 0 {
		return offset - 1
	}
	return 0
}
