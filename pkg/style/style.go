// Package style is the command layer between UI actions and the document
// model. Every command is a pure function from a document.State to a new
// document.State: a valid request commits a new snapshot onto the history,
// and an invalid or empty request returns its input unchanged. Commands
// never error and never log.
package style

import "github.com/yaklabco/inkwell/pkg/document"

// ToggleInline toggles an inline style over the current selection. The
// style is removed only when the entire selection already carries it;
// otherwise it is added. Other styles and entities in the range are left
// alone. A collapsed selection is a no-op.
func ToggleInline(st document.State, style document.InlineStyle) document.State {
	if st.Selection.IsCollapsed() {
		return st
	}

	spans := nonEmptySpans(st.Content.SelectionSpans(st.Selection))
	if len(spans) == 0 {
		return st
	}

	covered := true
	for _, span := range spans {
		if !st.Content.Blocks[span.Index].HasStyleOver(style, span.Start, span.End) {
			covered = false
			break
		}
	}

	content := st.Content
	for _, span := range spans {
		b := content.Blocks[span.Index]
		if covered {
			b = b.RemoveStyle(style, span.Start, span.End)
		} else {
			b = b.AddStyle(style, span.Start, span.End)
		}
		content = content.ReplaceBlock(span.Index, b)
	}

	return st.Commit(content, st.Selection)
}

// nonEmptySpans drops zero-width spans, such as the tail of a selection
// that ends at offset 0 of a block.
func nonEmptySpans(spans []document.BlockSpan) []document.BlockSpan {
	out := spans[:0:0]
	for _, span := range spans {
		if span.Start < span.End {
			out = append(out, span)
		}
	}
	return out
}
