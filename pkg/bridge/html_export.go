package bridge

import (
	"html"
	"strings"

	"github.com/yaklabco/inkwell/pkg/document"
)

// Export serializes document content as HTML. Consecutive list items at
// increasing depth render as nested ul/ol wrappers.
func (b *htmlBridge) Export(content document.Content) (string, error) {
	var sb strings.Builder
	var open []document.BlockType

	closeList := func() {
		top := open[len(open)-1]
		open = open[:len(open)-1]
		if top == document.BlockOrderedList {
			sb.WriteString("</ol>\n")
		} else {
			sb.WriteString("</ul>\n")
		}
	}
	openList := func(typ document.BlockType) {
		open = append(open, typ)
		if typ == document.BlockOrderedList {
			sb.WriteString("<ol>\n")
		} else {
			sb.WriteString("<ul>\n")
		}
	}

	for _, blk := range content.Blocks {
		if blk.Type.IsList() {
			want := blk.Depth + 1
			for len(open) > want || (len(open) == want && open[len(open)-1] != blk.Type) {
				closeList()
			}
			for len(open) < want {
				openList(blk.Type)
			}
			sb.WriteString("<li>" + renderHTMLInline(content, blk) + "</li>\n")
			continue
		}

		for len(open) > 0 {
			closeList()
		}

		switch blk.Type {
		case document.BlockHeaderOne:
			sb.WriteString("<h1>" + renderHTMLInline(content, blk) + "</h1>\n")
		case document.BlockHeaderTwo:
			sb.WriteString("<h2>" + renderHTMLInline(content, blk) + "</h2>\n")
		case document.BlockHeaderThree:
			sb.WriteString("<h3>" + renderHTMLInline(content, blk) + "</h3>\n")
		case document.BlockQuote:
			sb.WriteString("<blockquote><p>" + renderHTMLInline(content, blk) + "</p></blockquote>\n")
		case document.BlockCode:
			sb.WriteString(renderHTMLCode(blk))
		default:
			sb.WriteString("<p>" + renderHTMLInline(content, blk) + "</p>\n")
		}
	}

	for len(open) > 0 {
		closeList()
	}
	return sb.String(), nil
}

func renderHTMLCode(blk document.Block) string {
	openTag := "<code>"
	if blk.Language != "" {
		openTag = `<code class="language-` + html.EscapeString(blk.Language) + `">`
	}
	return "<pre>" + openTag + html.EscapeString(blk.Text) + "</code></pre>\n"
}

func renderHTMLInline(content document.Content, blk document.Block) string {
	var sb strings.Builder
	for _, span := range splitBlock(blk) {
		var inner strings.Builder
		for _, seg := range span.Segments {
			inner.WriteString(htmlSegment(seg))
		}
		if span.Key != "" {
			if ent, ok := content.Entity(span.Key); ok {
				sb.WriteString(`<a href="` + html.EscapeString(ent.URL) + `">` + inner.String() + "</a>")
				continue
			}
		}
		sb.WriteString(inner.String())
	}
	return sb.String()
}

func htmlSegment(seg inlineSegment) string {
	text := strings.ReplaceAll(html.EscapeString(seg.Text), "\n", "<br>")
	if text == "" {
		return ""
	}
	if seg.Styles[document.StyleStrikethrough] {
		text = "<s>" + text + "</s>"
	}
	if seg.Styles[document.StyleUnderline] {
		text = "<u>" + text + "</u>"
	}
	if seg.Styles[document.StyleItalic] {
		text = "<em>" + text + "</em>"
	}
	if seg.Styles[document.StyleBold] {
		text = "<strong>" + text + "</strong>"
	}
	return text
}
