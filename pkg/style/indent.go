package style

import "github.com/yaklabco/inkwell/pkg/document"

// IndentDirection selects the direction for AdjustIndent.
type IndentDirection int

// Indent directions.
const (
	IndentIncrease IndentDirection = 1
	IndentDecrease IndentDirection = -1
)

// AdjustIndent changes the list nesting depth of the selected blocks by one
// step, clamped to [0, document.MaxIndent]. The command applies only when
// every block intersected by the selection is a list item; otherwise it is
// a no-op, as is a step that moves no block.
func AdjustIndent(st document.State, dir IndentDirection) document.State {
	if dir != IndentIncrease && dir != IndentDecrease {
		return st
	}

	spans := st.Content.SelectionSpans(st.Selection)
	if len(spans) == 0 {
		return st
	}
	for _, span := range spans {
		if !st.Content.Blocks[span.Index].Type.IsList() {
			return st
		}
	}

	content := st.Content
	changed := false
	for _, span := range spans {
		b := content.Blocks[span.Index]
		depth := b.Depth + int(dir)
		if depth < 0 {
			depth = 0
		}
		if depth > document.MaxIndent {
			depth = document.MaxIndent
		}
		if depth == b.Depth {
			continue
		}
		nb := b.Clone()
		nb.Depth = depth
		content = content.ReplaceBlock(span.Index, nb)
		changed = true
	}

	if !changed {
		return st
	}
	return st.Commit(content, st.Selection)
}
