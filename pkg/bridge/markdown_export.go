package bridge

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/inkwell/pkg/document"
	"github.com/yaklabco/inkwell/pkg/edits"
	"github.com/yaklabco/inkwell/pkg/langdetect"
)

// Export serializes document content as markdown. Underline has no markdown
// syntax and is emitted as inline <u> tags.
func (b *markdownBridge) Export(content document.Content) (string, error) {
	rendered := make([]string, 0, len(content.Blocks))
	counters := make(map[int]int)

	for _, blk := range content.Blocks {
		if blk.Type != document.BlockOrderedList {
			clear(counters)
		}
		rendered = append(rendered, renderMarkdownBlock(content, blk, counters))
	}

	out := strings.Join(rendered, "\n\n")
	if out != "" {
		out += "\n"
	}
	return out, nil
}

func renderMarkdownBlock(content document.Content, blk document.Block, counters map[int]int) string {
	if blk.Type == document.BlockCode {
		fence := "```"
		if strings.Contains(blk.Text, "```") {
			fence = "~~~"
		}
		lang := blk.Language
		if lang == "" {
			lang = langdetect.Detect([]byte(blk.Text))
		}
		return fence + lang + "\n" + blk.Text + "\n" + fence
	}

	inline := renderMarkdownInline(content, blk)

	switch blk.Type {
	case document.BlockHeaderOne:
		return "# " + flattenBreaks(inline)
	case document.BlockHeaderTwo:
		return "## " + flattenBreaks(inline)
	case document.BlockHeaderThree:
		return "### " + flattenBreaks(inline)
	case document.BlockQuote:
		return "> " + strings.ReplaceAll(inline, "\n", "\n> ")
	case document.BlockUnorderedList:
		prefix := strings.Repeat("    ", blk.Depth) + "- "
		return prefix + continueLines(inline, len(prefix))
	case document.BlockOrderedList:
		for k := range counters {
			if k > blk.Depth {
				delete(counters, k)
			}
		}
		counters[blk.Depth]++
		prefix := strings.Repeat("    ", blk.Depth) + fmt.Sprintf("%d. ", counters[blk.Depth])
		return prefix + continueLines(inline, len(prefix))
	default:
		return inline
	}
}

// flattenBreaks replaces soft breaks with spaces for single-line contexts.
func flattenBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// continueLines indents continuation lines so they stay inside the list item.
func continueLines(s string, col int) string {
	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", col))
}

func renderMarkdownInline(content document.Content, blk document.Block) string {
	var sb strings.Builder
	for _, span := range splitBlock(blk) {
		var inner strings.Builder
		for _, seg := range span.Segments {
			inner.WriteString(markdownSegment(seg))
		}
		if span.Key != "" {
			if ent, ok := content.Entity(span.Key); ok {
				sb.WriteString("[" + inner.String() + "](" + ent.URL + ")")
				continue
			}
		}
		sb.WriteString(inner.String())
	}
	return sb.String()
}

// markdownSegment wraps one constant-style run in its markers. Edge
// whitespace moves outside the markers so emphasis still parses.
func markdownSegment(seg inlineSegment) string {
	text := seg.Text
	if text == "" {
		return text
	}
	if len(seg.Styles) == 0 {
		return escapeMarkdown(text)
	}

	trimmed := strings.TrimLeft(text, " \n")
	lead := text[:len(text)-len(trimmed)]
	core := strings.TrimRight(trimmed, " \n")
	trail := trimmed[len(core):]
	if core == "" {
		return text
	}

	var open, closing strings.Builder
	if seg.Styles[document.StyleUnderline] {
		open.WriteString("<u>")
	}
	if seg.Styles[document.StyleBold] {
		open.WriteString("**")
	}
	if seg.Styles[document.StyleItalic] {
		open.WriteString("*")
	}
	if seg.Styles[document.StyleStrikethrough] {
		open.WriteString("~~")
	}

	if seg.Styles[document.StyleStrikethrough] {
		closing.WriteString("~~")
	}
	if seg.Styles[document.StyleItalic] {
		closing.WriteString("*")
	}
	if seg.Styles[document.StyleBold] {
		closing.WriteString("**")
	}
	if seg.Styles[document.StyleUnderline] {
		closing.WriteString("</u>")
	}

	return lead + open.String() + core + closing.String() + trail
}

// escapeMarkdown backslash-escapes metacharacters in plain text so it
// re-imports as the same literal text. Escapes are collected as insert
// edits and applied in one pass, so the growing output never shifts the
// remaining offsets. Heading and quote markers only need escaping when
// they open a line.
func escapeMarkdown(text string) string {
	b := edits.NewBuilder()
	lineStart := true
	for i, r := range []rune(text) {
		switch r {
		case '\\', '*', '_', '`', '[', '~':
			b.Insert(i, `\`)
		case '#', '>':
			if lineStart {
				b.Insert(i, `\`)
			}
		}
		lineStart = r == '\n'
	}

	prepared, err := edits.Prepare(b.Edits, utf8.RuneCountInString(text))
	if err != nil || len(prepared) == 0 {
		return text
	}
	return edits.Apply(text, prepared)
}
