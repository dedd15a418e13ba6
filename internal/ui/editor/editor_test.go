package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/inkwell/pkg/config"
	"github.com/yaklabco/inkwell/pkg/document"
)

func testModel(blocks ...document.Block) Model {
	content := document.Content{Blocks: blocks, Entities: map[string]document.LinkEntity{}}
	if len(blocks) == 0 {
		content = document.NewContent()
	}
	return New(config.NewConfig(), nil, content, false)
}

func textBlock(text string) document.Block {
	b := document.NewBlock()
	b.Text = text
	return b
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		panic("unexpected model type")
	}
	return out
}

func TestTypingInsertsText(t *testing.T) {
	t.Parallel()

	m := testModel()
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("there")})

	got := m.State().Content.PlainText()
	if got != "hi there" {
		t.Errorf("content = %q, want %q", got, "hi there")
	}

	export, err := m.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(export, "hi there") {
		t.Errorf("export %q missing typed text", export)
	}
}

func TestBoldToggleOverSelection(t *testing.T) {
	t.Parallel()

	b := textBlock("make this bold")
	m := testModel(b)
	m.state = m.state.WithSelection(document.Selection{
		AnchorKey: b.Key, AnchorOffset: 10,
		FocusKey: b.Key, FocusOffset: 14,
	})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlB})

	blk := m.State().Content.Blocks[0]
	if !blk.HasStyleOver(document.StyleBold, 10, 14) {
		t.Error("expected BOLD over the selection")
	}

	export, err := m.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(export, "**bold**") {
		t.Errorf("export %q missing bold marker", export)
	}
}

func TestEnterSplitsBlock(t *testing.T) {
	t.Parallel()

	b := textBlock("splitme")
	m := testModel(b)
	m.state = m.state.WithSelection(document.CollapsedSelection(b.Key, 5))

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	blocks := m.State().Content.Blocks
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "split" || blocks[1].Text != "me" {
		t.Errorf("split produced %q / %q", blocks[0].Text, blocks[1].Text)
	}
}

func TestBackspaceDeletesRune(t *testing.T) {
	t.Parallel()

	b := textBlock("abc")
	m := testModel(b)
	m.state = m.state.WithSelection(document.CollapsedSelection(b.Key, 3))

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})

	if got := m.State().Content.Blocks[0].Text; got != "ab" {
		t.Errorf("text = %q, want %q", got, "ab")
	}
}

func TestHeadingCycle(t *testing.T) {
	t.Parallel()

	m := testModel(textBlock("title"))

	want := []document.BlockType{
		document.BlockHeaderOne,
		document.BlockHeaderTwo,
		document.BlockHeaderThree,
		document.BlockParagraph,
	}
	for _, typ := range want {
		m = press(m, tea.KeyMsg{Type: tea.KeyCtrlH})
		if got := m.State().Content.Blocks[0].Type; got != typ {
			t.Fatalf("heading cycle: got %q, want %q", got, typ)
		}
	}
}

func TestUndoKeyRestoresContent(t *testing.T) {
	t.Parallel()

	m := testModel()
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})

	if got := m.State().Content.PlainText(); got != "" {
		t.Errorf("content after undo = %q, want empty", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.State().Content.PlainText(); got != "x" {
		t.Errorf("content after redo = %q, want %q", got, "x")
	}
}

func TestFormatToggleChangesExport(t *testing.T) {
	t.Parallel()

	m := testModel(textBlock("hello"))

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	if m.Format().String() != "html" {
		t.Fatalf("format = %q, want html", m.Format())
	}
	export, err := m.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(export, "<p>hello</p>") {
		t.Errorf("html export = %q", export)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	if m.Format().String() != "markdown" {
		t.Errorf("format = %q, want markdown", m.Format())
	}
}

func TestLinkPromptFlow(t *testing.T) {
	t.Parallel()

	b := textBlock("visit example today")
	m := testModel(b)
	m.state = m.state.WithSelection(document.Selection{
		AnchorKey: b.Key, AnchorOffset: 6,
		FocusKey: b.Key, FocusOffset: 13,
	})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlK})
	if !m.linking {
		t.Fatal("expected link prompt to open")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("https://example.com")})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.linking {
		t.Fatal("expected link prompt to close")
	}
	blk := m.State().Content.Blocks[0]
	if len(blk.Entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(blk.Entities))
	}
	link, ok := m.State().Content.Entity(blk.Entities[0].Key)
	if !ok || link.URL != "https://example.com" {
		t.Errorf("entity = %+v, ok = %v", link, ok)
	}
}

func TestLinkPromptRequiresSelection(t *testing.T) {
	t.Parallel()

	m := testModel(textBlock("nothing selected"))
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlK})

	if m.linking {
		t.Error("collapsed selection must not open the link prompt")
	}
}

func TestThemeCycle(t *testing.T) {
	t.Parallel()

	m := testModel()
	seen := map[string]bool{m.theme: true}
	for range len(config.ThemeNames()) - 1 {
		m = press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
		seen[m.theme] = true
	}

	if len(seen) != len(config.ThemeNames()) {
		t.Errorf("theme cycle visited %d themes, want %d", len(seen), len(config.ThemeNames()))
	}
}

func TestQuitEmitsQuit(t *testing.T) {
	t.Parallel()

	m := testModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if out, ok := next.(Model); !ok || !out.quitting {
		t.Error("expected quitting model")
	}
}

func TestViewShowsStatus(t *testing.T) {
	t.Parallel()

	m := testModel(textBlock("hello"))
	view := m.View()
	if !strings.Contains(view, "paragraph") {
		t.Errorf("view missing block type: %q", view)
	}
	if !strings.Contains(view, "markdown") {
		t.Errorf("view missing format: %q", view)
	}
}

func TestMoveHorizontalCrossesBlocks(t *testing.T) {
	t.Parallel()

	first := textBlock("ab")
	second := textBlock("cd")
	m := testModel(first, second)
	m.state = m.state.WithSelection(document.CollapsedSelection(first.Key, 2))

	st := moveHorizontal(m.state, 1, false)
	if st.Selection.FocusKey != second.Key || st.Selection.FocusOffset != 0 {
		t.Errorf("right at block end: focus %q:%d", st.Selection.FocusKey, st.Selection.FocusOffset)
	}

	st = moveHorizontal(st, -1, false)
	if st.Selection.FocusKey != first.Key || st.Selection.FocusOffset != 2 {
		t.Errorf("left at block start: focus %q:%d", st.Selection.FocusKey, st.Selection.FocusOffset)
	}
}

func TestMoveHorizontalCollapsesSelection(t *testing.T) {
	t.Parallel()

	b := textBlock("hello")
	m := testModel(b)
	m.state = m.state.WithSelection(document.Selection{
		AnchorKey: b.Key, AnchorOffset: 1,
		FocusKey: b.Key, FocusOffset: 4,
	})

	st := moveHorizontal(m.state, -1, false)
	if !st.Selection.IsCollapsed() || st.Selection.FocusOffset != 1 {
		t.Errorf("left should collapse to start, got %+v", st.Selection)
	}

	st = moveHorizontal(m.state, 1, false)
	if !st.Selection.IsCollapsed() || st.Selection.FocusOffset != 4 {
		t.Errorf("right should collapse to end, got %+v", st.Selection)
	}
}

func TestShiftArrowsExtendSelection(t *testing.T) {
	t.Parallel()

	b := textBlock("hello")
	m := testModel(b)
	m.state = m.state.WithSelection(document.CollapsedSelection(b.Key, 0))

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftRight})
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftRight})

	sel := m.State().Selection
	if sel.IsCollapsed() || sel.FocusOffset != 2 || sel.AnchorOffset != 0 {
		t.Errorf("selection = %+v, want anchor 0 focus 2", sel)
	}
}
