package editor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/document"
	"github.com/yaklabco/inkwell/pkg/style"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("inkwell"))
	sb.WriteString("\n\n")

	if m.preview {
		sb.WriteString(m.previewText)
	} else {
		sb.WriteString(m.renderer.RenderWithCaret(
			m.state.Content, m.state.Selection.FocusKey, m.state.Selection.FocusOffset))
	}
	sb.WriteString("\n\n")

	if m.linking {
		sb.WriteString(m.styles.Prompt.Render("link url: "))
		sb.WriteString(m.linkInput.View())
		sb.WriteString("\n")
	}

	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.helpLine())
	return sb.String()
}

// statusLine shows the caret's block type, active inline styles, the output
// format, and the last command's result.
func (m Model) statusLine() string {
	active := style.ActiveStyles(m.state)

	indicators := []struct {
		style document.InlineStyle
		mark  string
	}{
		{document.StyleBold, "B"},
		{document.StyleItalic, "I"},
		{document.StyleUnderline, "U"},
		{document.StyleStrikethrough, "S"},
	}

	var marks strings.Builder
	for _, ind := range indicators {
		if active.Inline[ind.style] {
			marks.WriteString(m.styles.StatusKey.Render(ind.mark))
		} else {
			marks.WriteString(m.styles.Dim.Render(ind.mark))
		}
	}

	parts := []string{
		string(active.Block),
		marks.String(),
		m.format.String(),
		m.theme,
		fmt.Sprintf("undo:%d", len(m.state.Undo)),
	}
	if active.LinkKey != "" {
		if link, ok := m.state.Content.Entity(active.LinkKey); ok {
			parts = append(parts, "→ "+link.URL)
		}
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	return m.styles.StatusBar.Render(strings.Join(parts, "  "))
}

func (m Model) helpLine() string {
	pairs := []string{
		"ctrl+b bold", "ctrl+i italic", "ctrl+u under", "ctrl+d strike",
		"ctrl+h heading", "ctrl+l list", "ctrl+k link", "ctrl+z undo",
		"ctrl+p preview", "ctrl+s save", "esc quit",
	}
	return m.styles.Help.Render(strings.Join(pairs, " · "))
}

// Run starts the editor program and returns its final model.
func Run(m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("run editor: %w", err)
	}
	out, ok := final.(Model)
	if !ok {
		logging.Default().Error("unexpected model type from editor program")
		return m, nil
	}
	return out, nil
}
