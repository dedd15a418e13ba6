// Package pretty provides Lipgloss-based styled rendering of documents.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// palette holds the colors a theme is built from.
type palette struct {
	heading lipgloss.Color
	text    lipgloss.Color
	dim     lipgloss.Color
	accent  lipgloss.Color
	link    lipgloss.Color
	code    lipgloss.Color
	quote   lipgloss.Color
	bar     lipgloss.Color
	barText lipgloss.Color
}

// palettes maps theme names to their colors. Mono is absent: it renders
// with attributes only.
//
//nolint:gochecknoglobals // Read-only lookup table.
var palettes = map[string]palette{
	"default": {
		heading: lipgloss.Color("12"),
		text:    lipgloss.Color("7"),
		dim:     lipgloss.Color("8"),
		accent:  lipgloss.Color("13"),
		link:    lipgloss.Color("14"),
		code:    lipgloss.Color("10"),
		quote:   lipgloss.Color("11"),
		bar:     lipgloss.Color("8"),
		barText: lipgloss.Color("15"),
	},
	"dark": {
		heading: lipgloss.Color("39"),
		text:    lipgloss.Color("252"),
		dim:     lipgloss.Color("240"),
		accent:  lipgloss.Color("170"),
		link:    lipgloss.Color("80"),
		code:    lipgloss.Color("114"),
		quote:   lipgloss.Color("179"),
		bar:     lipgloss.Color("236"),
		barText: lipgloss.Color("252"),
	},
	"light": {
		heading: lipgloss.Color("26"),
		text:    lipgloss.Color("235"),
		dim:     lipgloss.Color("245"),
		accent:  lipgloss.Color("127"),
		link:    lipgloss.Color("31"),
		code:    lipgloss.Color("28"),
		quote:   lipgloss.Color("130"),
		bar:     lipgloss.Color("253"),
		barText: lipgloss.Color("235"),
	},
}

// Styles contains the styled renderers for one editor theme.
type Styles struct {
	// Block styles.
	Heading1  lipgloss.Style
	Heading2  lipgloss.Style
	Heading3  lipgloss.Style
	Paragraph lipgloss.Style
	Quote     lipgloss.Style
	QuoteBar  lipgloss.Style
	CodeBlock lipgloss.Style
	CodeLang  lipgloss.Style
	Bullet    lipgloss.Style

	// Inline styles.
	Bold      lipgloss.Style
	Italic    lipgloss.Style
	Underline lipgloss.Style
	Strike    lipgloss.Style
	Link      lipgloss.Style

	// Editor chrome.
	Title     lipgloss.Style
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style
	Prompt    lipgloss.Style
	Help      lipgloss.Style
	Dim       lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style
}

// NewStyles creates the styles for a named theme. Unknown themes and the
// mono theme render with attributes only; colorEnabled false strips color
// from every theme.
func NewStyles(theme string, colorEnabled bool) *Styles {
	p, ok := palettes[theme]
	if !ok || !colorEnabled {
		return newMonoStyles(colorEnabled)
	}

	return &Styles{
		Heading1:  lipgloss.NewStyle().Foreground(p.heading).Bold(true),
		Heading2:  lipgloss.NewStyle().Foreground(p.heading).Bold(true),
		Heading3:  lipgloss.NewStyle().Foreground(p.heading),
		Paragraph: lipgloss.NewStyle().Foreground(p.text),
		Quote:     lipgloss.NewStyle().Foreground(p.quote).Italic(true),
		QuoteBar:  lipgloss.NewStyle().Foreground(p.dim),
		CodeBlock: lipgloss.NewStyle().Foreground(p.code),
		CodeLang:  lipgloss.NewStyle().Foreground(p.dim).Italic(true),
		Bullet:    lipgloss.NewStyle().Foreground(p.accent),

		Bold:      lipgloss.NewStyle().Bold(true),
		Italic:    lipgloss.NewStyle().Italic(true),
		Underline: lipgloss.NewStyle().Underline(true),
		Strike:    lipgloss.NewStyle().Strikethrough(true),
		Link:      lipgloss.NewStyle().Foreground(p.link).Underline(true),

		Title:     lipgloss.NewStyle().Foreground(p.barText).Background(p.bar).Bold(true).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(p.barText).Background(p.bar).Padding(0, 1),
		StatusKey: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(p.accent),
		Help:      lipgloss.NewStyle().Foreground(p.dim),
		Dim:       lipgloss.NewStyle().Foreground(p.dim),
		Success:   lipgloss.NewStyle().Foreground(p.code).Bold(true),
		Failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// newMonoStyles creates styles using only text attributes. With color
// disabled, even the attributes are dropped so output stays clean when
// piped.
func newMonoStyles(attributes bool) *Styles {
	plain := lipgloss.NewStyle()
	if !attributes {
		return &Styles{
			Heading1: plain, Heading2: plain, Heading3: plain,
			Paragraph: plain, Quote: plain, QuoteBar: plain,
			CodeBlock: plain, CodeLang: plain, Bullet: plain,
			Bold: plain, Italic: plain, Underline: plain, Strike: plain,
			Link: plain, Title: plain, StatusBar: plain, StatusKey: plain,
			Prompt: plain, Help: plain, Dim: plain,
			Success: plain, Failure: plain,
		}
	}

	return &Styles{
		Heading1:  lipgloss.NewStyle().Bold(true),
		Heading2:  lipgloss.NewStyle().Bold(true),
		Heading3:  lipgloss.NewStyle().Bold(true),
		Paragraph: plain,
		Quote:     lipgloss.NewStyle().Italic(true),
		QuoteBar:  plain,
		CodeBlock: plain,
		CodeLang:  lipgloss.NewStyle().Italic(true),
		Bullet:    plain,

		Bold:      lipgloss.NewStyle().Bold(true),
		Italic:    lipgloss.NewStyle().Italic(true),
		Underline: lipgloss.NewStyle().Underline(true),
		Strike:    lipgloss.NewStyle().Strikethrough(true),
		Link:      lipgloss.NewStyle().Underline(true),

		Title:     lipgloss.NewStyle().Reverse(true).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Reverse(true).Padding(0, 1),
		StatusKey: lipgloss.NewStyle().Bold(true),
		Prompt:    lipgloss.NewStyle().Bold(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Success:   lipgloss.NewStyle().Bold(true),
		Failure:   lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
