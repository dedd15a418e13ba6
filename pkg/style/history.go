package style

import "github.com/yaklabco/inkwell/pkg/document"

// Undo restores the most recent snapshot from the undo stack, pushing the
// current state onto the redo stack. No-op at the first state.
func Undo(st document.State) document.State {
	if !st.CanUndo() {
		return st
	}

	i := len(st.Undo) - 1
	prev := st.Undo[i]

	undo := make([]document.Snapshot, i)
	copy(undo, st.Undo[:i])

	redo := make([]document.Snapshot, len(st.Redo), len(st.Redo)+1)
	copy(redo, st.Redo)
	redo = append(redo, document.Snapshot{Content: st.Content, Selection: st.Selection})

	return document.State{
		Content:      prev.Content,
		Selection:    prev.Content.ClampSelection(prev.Selection),
		Undo:         undo,
		Redo:         redo,
		HistoryLimit: st.HistoryLimit,
	}
}

// Redo reapplies the most recently undone snapshot. No-op at the last
// state.
func Redo(st document.State) document.State {
	if !st.CanRedo() {
		return st
	}

	i := len(st.Redo) - 1
	next := st.Redo[i]

	redo := make([]document.Snapshot, i)
	copy(redo, st.Redo[:i])

	undo := make([]document.Snapshot, len(st.Undo), len(st.Undo)+1)
	copy(undo, st.Undo)
	undo = append(undo, document.Snapshot{Content: st.Content, Selection: st.Selection})

	return document.State{
		Content:      next.Content,
		Selection:    next.Content.ClampSelection(next.Selection),
		Undo:         undo,
		Redo:         redo,
		HistoryLimit: st.HistoryLimit,
	}
}
