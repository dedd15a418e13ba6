package editor

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the editor key bindings.
type keyMap struct {
	Bold      key.Binding
	Italic    key.Binding
	Underline key.Binding
	Strike    key.Binding

	Heading    key.Binding
	BulletList key.Binding
	NumberList key.Binding
	Quote      key.Binding

	Indent  key.Binding
	Outdent key.Binding

	Link   key.Binding
	Unlink key.Binding

	Undo key.Binding
	Redo key.Binding

	SoftBreak key.Binding

	Theme   key.Binding
	Format  key.Binding
	Copy    key.Binding
	Save    key.Binding
	Preview key.Binding

	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Bold:      key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:    key.NewBinding(key.WithKeys("ctrl+i"), key.WithHelp("ctrl+i", "italic")),
		Underline: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "underline")),
		Strike:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "strike")),

		Heading:    key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "heading")),
		BulletList: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "bullets")),
		NumberList: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "numbers")),
		Quote:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quote")),

		Indent:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Outdent: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent")),

		Link:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "link")),
		Unlink: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "unlink")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		SoftBreak: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "soft break")),

		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Format:  key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "format")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "copy export")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Preview: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "preview")),

		Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}
