package pretty

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/inkwell/pkg/document"
)

// Renderer draws document content as styled terminal lines.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer over the given styles.
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render draws the whole document without a caret.
func (r *Renderer) Render(c document.Content) string {
	return r.RenderWithCaret(c, "", -1)
}

// RenderWithCaret draws the document with a caret shown in the block whose
// key matches caretKey. A caret offset equal to the block length renders as
// a highlighted trailing cell.
func (r *Renderer) RenderWithCaret(c document.Content, caretKey string, caretOffset int) string {
	counters := make(map[int]int)
	lines := make([]string, 0, len(c.Blocks))

	for _, b := range c.Blocks {
		if b.Type == document.BlockOrderedList {
			counters[b.Depth]++
			for d := range counters {
				if d > b.Depth {
					delete(counters, d)
				}
			}
		} else {
			counters = make(map[int]int)
		}

		caret := -1
		if b.Key == caretKey {
			caret = caretOffset
		}
		lines = append(lines, r.renderBlock(b, counters[b.Depth], caret))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderBlock(b document.Block, ordinal int, caret int) string {
	switch b.Type {
	case document.BlockHeaderOne:
		return r.renderInline(b, caret, r.styles.Heading1)
	case document.BlockHeaderTwo:
		return r.renderInline(b, caret, r.styles.Heading2)
	case document.BlockHeaderThree:
		return r.renderInline(b, caret, r.styles.Heading3)
	case document.BlockQuote:
		bar := r.styles.QuoteBar.Render("│ ")
		body := r.renderInline(b, caret, r.styles.Quote)
		return bar + strings.ReplaceAll(body, "\n", "\n"+bar)
	case document.BlockCode:
		return r.renderCode(b, caret)
	case document.BlockUnorderedList:
		indent := strings.Repeat("  ", b.Depth)
		marker := r.styles.Bullet.Render("• ")
		return indent + marker + r.renderInline(b, caret, r.styles.Paragraph)
	case document.BlockOrderedList:
		indent := strings.Repeat("  ", b.Depth)
		marker := r.styles.Bullet.Render(fmt.Sprintf("%d. ", ordinal))
		return indent + marker + r.renderInline(b, caret, r.styles.Paragraph)
	default:
		return r.renderInline(b, caret, r.styles.Paragraph)
	}
}

func (r *Renderer) renderCode(b document.Block, caret int) string {
	var sb strings.Builder
	lang := b.Language
	if lang == "" {
		lang = "code"
	}
	sb.WriteString(r.styles.CodeLang.Render("[" + lang + "]"))
	sb.WriteString("\n")

	body := b.Text
	if caret >= 0 {
		body = r.withCaretPlain(body, caret)
	} else {
		body = r.styles.CodeBlock.Render(body)
	}
	sb.WriteString(body)
	return sb.String()
}

// withCaretPlain styles plain text with the code style and a reversed caret
// cell.
func (r *Renderer) withCaretPlain(text string, caret int) string {
	runes := []rune(text)
	if caret > len(runes) {
		caret = len(runes)
	}
	cursor := r.styles.CodeBlock.Reverse(true)
	if caret == len(runes) {
		return r.styles.CodeBlock.Render(string(runes)) + cursor.Render(" ")
	}
	return r.styles.CodeBlock.Render(string(runes[:caret])) +
		cursor.Render(string(runes[caret:caret+1])) +
		r.styles.CodeBlock.Render(string(runes[caret+1:]))
}

// renderInline styles a block's text segment by segment. Boundaries fall on
// style range edges, entity edges, newlines, and the caret.
func (r *Renderer) renderInline(b document.Block, caret int, base lipgloss.Style) string {
	runes := []rune(b.Text)
	n := len(runes)
	if caret > n {
		caret = n
	}

	boundset := map[int]bool{0: true, n: true}
	for _, s := range b.Styles {
		boundset[s.Start] = true
		boundset[s.End] = true
	}
	for _, e := range b.Entities {
		boundset[e.Start] = true
		boundset[e.End] = true
	}
	if caret >= 0 && caret < n {
		boundset[caret] = true
		boundset[caret+1] = true
	}

	bounds := make([]int, 0, len(boundset))
	for v := range boundset {
		if v >= 0 && v <= n {
			bounds = append(bounds, v)
		}
	}
	sort.Ints(bounds)

	var sb strings.Builder
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		seg := string(runes[lo:hi])
		style := r.segmentStyle(b, lo, base)
		if caret >= 0 && lo == caret {
			style = style.Reverse(true)
		}
		// Newlines inside a styled segment would drag the style across
		// lines; render them bare.
		parts := strings.Split(seg, "\n")
		for j, part := range parts {
			if j > 0 {
				sb.WriteString("\n")
			}
			if part != "" {
				sb.WriteString(style.Render(part))
			}
		}
	}

	if caret == n {
		sb.WriteString(base.Reverse(true).Render(" "))
	}
	return sb.String()
}

// segmentStyle computes the lipgloss style for the segment starting at lo.
func (r *Renderer) segmentStyle(b document.Block, lo int, base lipgloss.Style) lipgloss.Style {
	style := base
	for _, e := range b.Entities {
		if e.Start <= lo && lo < e.End {
			style = r.styles.Link
			break
		}
	}
	for s := range b.StylesAt(lo) {
		switch s {
		case document.StyleBold:
			style = style.Bold(true)
		case document.StyleItalic:
			style = style.Italic(true)
		case document.StyleUnderline:
			style = style.Underline(true)
		case document.StyleStrikethrough:
			style = style.Strikethrough(true)
		}
	}
	return style
}
