package style_test

import (
	"testing"

	"github.com/yaklabco/inkwell/pkg/document"
	"github.com/yaklabco/inkwell/pkg/style"
)

// singleBlockState builds a state over one block of text with the given
// rune span selected.
func singleBlockState(text string, selStart, selEnd int) document.State {
	c := document.NewContent()
	c.Blocks[0].Text = text
	st := document.NewState(c)
	key := c.Blocks[0].Key
	return st.WithSelection(document.Selection{
		AnchorKey:    key,
		AnchorOffset: selStart,
		FocusKey:     key,
		FocusOffset:  selEnd,
	})
}

func TestToggleInlineAddsStyle(t *testing.T) {
	t.Parallel()

	st := singleBlockState("hello", 0, 5)
	out := style.ToggleInline(st, document.StyleBold)

	b := out.Content.Blocks[0]
	if !b.HasStyleOver(document.StyleBold, 0, 5) {
		t.Fatalf("expected BOLD over [0,5), styles = %v", b.Styles)
	}

	active := style.ActiveStyles(out)
	if !active.Inline[document.StyleBold] {
		t.Error("ActiveStyles should report BOLD after toggle-on")
	}
}

func TestToggleInlineDoubleToggleRestoresCoverage(t *testing.T) {
	t.Parallel()

	st := singleBlockState("hello world", 2, 8)
	st = style.ToggleInline(st, document.StyleItalic)

	once := style.ToggleInline(st, document.StyleBold)
	twice := style.ToggleInline(once, document.StyleBold)

	got := twice.Content.Blocks[0].Styles
	want := st.Content.Blocks[0].Styles
	if len(got) != len(want) {
		t.Fatalf("style coverage after double toggle = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("range %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestToggleInlineRemovesFullyCoveredSelection(t *testing.T) {
	t.Parallel()

	st := singleBlockState("hello", 0, 5)
	st = style.ToggleInline(st, document.StyleBold)

	// Select a sub-range that is fully bold: toggling removes it there only.
	st = st.WithSelection(document.Selection{
		AnchorKey:    st.Content.Blocks[0].Key,
		AnchorOffset: 1,
		FocusKey:     st.Content.Blocks[0].Key,
		FocusOffset:  4,
	})
	out := style.ToggleInline(st, document.StyleBold)

	b := out.Content.Blocks[0]
	if b.HasStyleOver(document.StyleBold, 1, 4) {
		t.Error("BOLD should be cleared over the selection")
	}
	if !b.HasStyleOver(document.StyleBold, 0, 1) || !b.HasStyleOver(document.StyleBold, 4, 5) {
		t.Errorf("BOLD should survive outside the selection, styles = %v", b.Styles)
	}
}

func TestToggleInlinePartialCoverageExtends(t *testing.T) {
	t.Parallel()

	st := singleBlockState("hello world", 0, 5)
	st = style.ToggleInline(st, document.StyleBold)

	// Selection half-bold: toggle adds over the whole selection.
	st = st.WithSelection(document.Selection{
		AnchorKey:    st.Content.Blocks[0].Key,
		AnchorOffset: 3,
		FocusKey:     st.Content.Blocks[0].Key,
		FocusOffset:  9,
	})
	out := style.ToggleInline(st, document.StyleBold)

	if !out.Content.Blocks[0].HasStyleOver(document.StyleBold, 0, 9) {
		t.Errorf("expected BOLD over [0,9), styles = %v", out.Content.Blocks[0].Styles)
	}
}

func TestToggleInlineCollapsedSelectionIsNoop(t *testing.T) {
	t.Parallel()

	st := singleBlockState("hello", 2, 2)
	out := style.ToggleInline(st, document.StyleBold)

	if len(out.Content.Blocks[0].Styles) != 0 {
		t.Errorf("collapsed selection should not gain styles: %v", out.Content.Blocks[0].Styles)
	}
	if out.CanUndo() {
		t.Error("a no-op must not push history")
	}
}

func TestToggleInlinePreservesOtherStylesAndEntities(t *testing.T) {
	t.Parallel()

	st := singleBlockState("hello", 0, 5)
	st = style.ToggleInline(st, document.StyleItalic)
	st = style.AddLink(st, "https://example.com")

	out := style.ToggleInline(st, document.StyleBold)
	out = style.ToggleInline(out, document.StyleBold)

	b := out.Content.Blocks[0]
	if !b.HasStyleOver(document.StyleItalic, 0, 5) {
		t.Error("ITALIC should survive a BOLD double toggle")
	}
	if len(b.Entities) != 1 {
		t.Errorf("entities should survive, got %v", b.Entities)
	}
}

func TestActiveStylesScenario(t *testing.T) {
	t.Parallel()

	// Selection covering "hello" with no styles.
	st := singleBlockState("hello", 0, 5)

	active := style.ActiveStyles(st)
	if len(active.Inline) != 0 {
		t.Errorf("no styles expected, got %v", active.Inline)
	}
	if active.Block != document.BlockParagraph {
		t.Errorf("block type = %v", active.Block)
	}

	out := style.ToggleInline(st, document.StyleBold)
	b := out.Content.Blocks[0]
	if !b.HasStyleOver(document.StyleBold, 0, 5) {
		t.Fatalf("expected ('BOLD', 0, 5) in %v", b.Styles)
	}
	if !style.ActiveStyles(out).Inline[document.StyleBold] {
		t.Error("queryActiveStyles should now report BOLD")
	}
}

func TestActiveStylesRequiresFullCoverage(t *testing.T) {
	t.Parallel()

	st := singleBlockState("hello world", 0, 5)
	st = style.ToggleInline(st, document.StyleBold)

	st = st.WithSelection(document.Selection{
		AnchorKey:    st.Content.Blocks[0].Key,
		AnchorOffset: 0,
		FocusKey:     st.Content.Blocks[0].Key,
		FocusOffset:  11,
	})
	if style.ActiveStyles(st).Inline[document.StyleBold] {
		t.Error("BOLD covers only part of the selection and must not count as active")
	}
}

func TestActiveStylesCollapsedUsesPrecedingRune(t *testing.T) {
	t.Parallel()

	st := singleBlockState("hello", 0, 5)
	st = style.ToggleInline(st, document.StyleBold)

	st = st.WithSelection(document.CollapsedSelection(st.Content.Blocks[0].Key, 5))
	if !style.ActiveStyles(st).Inline[document.StyleBold] {
		t.Error("caret after a bold run should report BOLD")
	}
}
