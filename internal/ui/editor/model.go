// Package editor implements the interactive Bubble Tea editor over a
// document state.
package editor

import (
	"context"
	"slices"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/internal/ui/pretty"
	"github.com/yaklabco/inkwell/pkg/bridge"
	"github.com/yaklabco/inkwell/pkg/config"
	"github.com/yaklabco/inkwell/pkg/document"
	"github.com/yaklabco/inkwell/pkg/session"
	"github.com/yaklabco/inkwell/pkg/style"
)

// Model is the Bubble Tea model for the editor.
type Model struct {
	keys keyMap
	cfg  *config.Config

	state  document.State
	format bridge.Format

	// export is the active format's serialization of the current content,
	// refreshed after every state change.
	export    string
	exportErr error

	theme        string
	colorEnabled bool
	styles       *pretty.Styles
	renderer     *pretty.Renderer

	preview     bool
	previewText string

	linking   bool
	linkInput textinput.Model

	store  *session.Store
	status string

	width  int
	height int

	quitting bool
}

// New creates an editor model over the given content.
func New(cfg *config.Config, store *session.Store, content document.Content, colorEnabled bool) Model {
	st := document.NewState(content)
	st.HistoryLimit = cfg.HistoryLimit

	format := bridge.FormatMarkdown
	if f, err := bridge.ParseFormat(cfg.Format); err == nil {
		format = f
	}

	input := textinput.New()
	input.Placeholder = "https://"
	input.Prompt = ""
	input.CharLimit = 2048

	m := Model{
		keys:         defaultKeyMap(),
		cfg:          cfg,
		state:        st,
		format:       format,
		theme:        cfg.Theme,
		colorEnabled: colorEnabled,
		linkInput:    input,
		store:        store,
	}
	m.applyTheme(cfg.Theme)
	m.refreshExport()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Export returns the current serialized document in the active format.
func (m Model) Export() (string, error) {
	return m.export, m.exportErr
}

// State returns the current document state.
func (m Model) State() document.State {
	return m.state
}

// Format returns the active export format.
func (m Model) Format() bridge.Format {
	return m.format
}

func (m *Model) applyTheme(theme string) {
	m.theme = theme
	m.styles = pretty.NewStyles(theme, m.colorEnabled)
	m.renderer = pretty.NewRenderer(m.styles)
}

func (m *Model) refreshExport() {
	br, err := bridge.New(m.format, bridge.Options{Flavor: string(m.cfg.Flavor)})
	if err != nil {
		m.exportErr = err
		return
	}
	m.export, m.exportErr = br.Export(m.state.Content)

	if m.preview {
		m.refreshPreview()
	}
}

func (m *Model) refreshPreview() {
	if m.format != bridge.FormatMarkdown {
		m.previewText = m.export
		return
	}
	rendered, err := glamour.Render(m.export, glamourStyle(m.theme))
	if err != nil {
		m.previewText = m.export
		return
	}
	m.previewText = rendered
}

// glamourStyle maps an editor theme to a glamour style name.
func glamourStyle(theme string) string {
	switch theme {
	case config.ThemeLight:
		return "light"
	case config.ThemeMono:
		return "notty"
	default:
		return "dark"
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.linking {
		return m.handleLinkPrompt(msg)
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Bold):
		return m.commit(style.ToggleInline(m.state, document.StyleBold)), nil
	case key.Matches(msg, m.keys.Italic):
		return m.commit(style.ToggleInline(m.state, document.StyleItalic)), nil
	case key.Matches(msg, m.keys.Underline):
		return m.commit(style.ToggleInline(m.state, document.StyleUnderline)), nil
	case key.Matches(msg, m.keys.Strike):
		return m.commit(style.ToggleInline(m.state, document.StyleStrikethrough)), nil
	case key.Matches(msg, m.keys.Heading):
		return m.commit(cycleHeading(m.state)), nil
	case key.Matches(msg, m.keys.BulletList):
		return m.commit(style.ToggleBlock(m.state, document.BlockUnorderedList)), nil
	case key.Matches(msg, m.keys.NumberList):
		return m.commit(style.ToggleBlock(m.state, document.BlockOrderedList)), nil
	case key.Matches(msg, m.keys.Quote):
		return m.commit(style.ToggleBlock(m.state, document.BlockQuote)), nil
	case key.Matches(msg, m.keys.Indent):
		return m.commit(style.AdjustIndent(m.state, style.IndentIncrease)), nil
	case key.Matches(msg, m.keys.Outdent):
		return m.commit(style.AdjustIndent(m.state, style.IndentDecrease)), nil
	case key.Matches(msg, m.keys.Link):
		return m.openLinkPrompt()
	case key.Matches(msg, m.keys.Unlink):
		return m.commit(style.RemoveLink(m.state)), nil
	case key.Matches(msg, m.keys.Undo):
		return m.commit(style.Undo(m.state)), nil
	case key.Matches(msg, m.keys.Redo):
		return m.commit(style.Redo(m.state)), nil
	case key.Matches(msg, m.keys.SoftBreak):
		return m.commit(style.InsertSoftBreak(m.state)), nil
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme(), nil
	case key.Matches(msg, m.keys.Format):
		return m.toggleFormat(), nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyExport(), nil
	case key.Matches(msg, m.keys.Save):
		return m.saveSession(), nil
	case key.Matches(msg, m.keys.Preview):
		m.preview = !m.preview
		if m.preview {
			m.refreshPreview()
		}
		return m, nil
	}

	return m.handleEditingKey(msg)
}

func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.commit(style.SplitBlock(m.state)), nil
	case "backspace":
		return m.commit(style.DeleteBackward(m.state)), nil
	case "left":
		m.state = moveHorizontal(m.state, -1, false)
		return m, nil
	case "right":
		m.state = moveHorizontal(m.state, 1, false)
		return m, nil
	case "shift+left":
		m.state = moveHorizontal(m.state, -1, true)
		return m, nil
	case "shift+right":
		m.state = moveHorizontal(m.state, 1, true)
		return m, nil
	case "up":
		m.state = moveVertical(m.state, -1)
		return m, nil
	case "down":
		m.state = moveVertical(m.state, 1)
		return m, nil
	case "home":
		m.state = moveLineEdge(m.state, false)
		return m, nil
	case "end":
		m.state = moveLineEdge(m.state, true)
		return m, nil
	case " ":
		return m.commit(style.InsertText(m.state, " ")), nil
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		return m.commit(style.InsertText(m.state, string(msg.Runes))), nil
	}
	return m, nil
}

// commit replaces the state and refreshes the export.
func (m Model) commit(st document.State) Model {
	m.state = st
	m.refreshExport()
	return m
}

// cycleHeading rotates paragraph -> h1 -> h2 -> h3 -> paragraph.
func cycleHeading(st document.State) document.State {
	anchor, ok := st.Content.Block(st.Selection.AnchorKey)
	if !ok {
		return st
	}
	switch anchor.Type {
	case document.BlockHeaderOne:
		return style.ToggleBlock(st, document.BlockHeaderTwo)
	case document.BlockHeaderTwo:
		return style.ToggleBlock(st, document.BlockHeaderThree)
	case document.BlockHeaderThree:
		return style.ToggleBlock(st, document.BlockParagraph)
	default:
		return style.ToggleBlock(st, document.BlockHeaderOne)
	}
}

func (m Model) cycleTheme() Model {
	names := config.ThemeNames()
	i := slices.Index(names, m.theme)
	next := names[(i+1)%len(names)]
	m.applyTheme(next)
	m.cfg.Theme = next
	if m.preview {
		m.refreshPreview()
	}
	m.status = "theme: " + next
	return m
}

func (m Model) toggleFormat() Model {
	if m.format == bridge.FormatMarkdown {
		m.format = bridge.FormatHTML
	} else {
		m.format = bridge.FormatMarkdown
	}
	m.cfg.Format = m.format.String()
	m.refreshExport()
	if m.preview {
		m.refreshPreview()
	}
	m.status = "format: " + m.format.String()
	return m
}

func (m Model) copyExport() Model {
	if m.exportErr != nil {
		m.status = "export failed: " + m.exportErr.Error()
		return m
	}
	if err := clipboard.WriteAll(m.export); err != nil {
		m.status = "clipboard: " + err.Error()
		return m
	}
	m.status = "copied " + m.format.String() + " to clipboard"
	return m
}

func (m Model) saveSession() Model {
	if err := m.persist(); err != nil {
		m.status = "save failed: " + err.Error()
		return m
	}
	m.status = "session saved"
	return m
}

func (m *Model) persist() error {
	if m.store == nil {
		return nil
	}
	if m.exportErr != nil {
		return m.exportErr
	}
	return m.store.Save(context.Background(), session.State{
		ContentType: m.format.String(),
		Content:     m.export,
	})
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cfg.Autosave {
		if err := m.persist(); err != nil {
			logging.Default().Error("autosave failed", logging.FieldError, err)
		}
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) openLinkPrompt() (tea.Model, tea.Cmd) {
	if m.state.Selection.IsCollapsed() {
		m.status = "select text to link"
		return m, nil
	}
	m.linking = true
	m.linkInput.SetValue("")
	m.linkInput.Focus()
	return m, textinput.Blink
}

func (m Model) handleLinkPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		url := m.linkInput.Value()
		m.linking = false
		m.linkInput.Blur()
		if url != "" {
			m = m.commit(style.AddLink(m.state, url))
			m.status = "linked to " + url
		}
		return m, nil
	case "esc", "ctrl+c":
		m.linking = false
		m.linkInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.linkInput, cmd = m.linkInput.Update(msg)
	return m, cmd
}
