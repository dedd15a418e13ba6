package bridge

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	gtext "github.com/yuin/goldmark/text"

	"github.com/yaklabco/inkwell/pkg/document"
	"github.com/yaklabco/inkwell/pkg/langdetect"
)

// markdownBridge converts markdown to document content and back using
// goldmark for parsing.
type markdownBridge struct {
	flavor string
	md     goldmark.Markdown
}

func newMarkdownBridge(flavor string) *markdownBridge {
	f := flavorOrDefault(flavor)
	return &markdownBridge{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to GFM.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorGFM
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts,
			goldmark.WithExtensions(
				extension.GFM,
			),
		)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

// Import parses markdown into document content. Heading levels beyond three
// clamp to header-three; nested list levels map to depth up to the maximum.
func (b *markdownBridge) Import(input string) (document.Content, error) {
	src := []byte(input)
	reader := gtext.NewReader(src)
	root := b.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	im := &mdImporter{
		src:   src,
		links: make(map[string]document.LinkEntity),
	}
	im.walkBlocks(root, 0)

	content := document.Content{Blocks: im.blocks, Entities: im.links}
	if len(content.Blocks) == 0 {
		return document.NewContent(), nil
	}
	return content.PruneEntities(), nil
}

// mdImporter walks a goldmark AST, flattening it into document blocks.
type mdImporter struct {
	src    []byte
	blocks []document.Block
	links  map[string]document.LinkEntity
}

func (im *mdImporter) walkBlocks(parent ast.Node, depth int) {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		im.mapBlock(child, depth)
	}
}

func (im *mdImporter) mapBlock(n ast.Node, depth int) {
	switch gmn := n.(type) {
	case *ast.Heading:
		im.appendInlineBlock(gmn, headingType(gmn.Level), 0)

	case *ast.Paragraph:
		im.appendInlineBlock(gmn, document.BlockParagraph, 0)

	case *ast.TextBlock:
		im.appendInlineBlock(gmn, document.BlockParagraph, 0)

	case *ast.Blockquote:
		im.mapBlockquote(gmn)

	case *ast.List:
		im.mapList(gmn, depth)

	case *ast.FencedCodeBlock:
		im.appendCodeBlock(gmn.Lines(), fenceInfo(gmn, im.src))

	case *ast.CodeBlock:
		im.appendCodeBlock(gmn.Lines(), "")

	case *ast.ThematicBreak:
		// Not representable as a block type.

	case *ast.HTMLBlock:
		// Raw HTML blocks are dropped rather than passed through.

	default:
		if n.Type() == ast.TypeBlock {
			im.appendInlineBlock(n, document.BlockParagraph, 0)
		}
	}
}

// mapBlockquote flattens quote children to blockquote blocks, one per
// contained paragraph.
func (im *mdImporter) mapBlockquote(q *ast.Blockquote) {
	for child := q.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			im.appendInlineBlock(child, document.BlockQuote, 0)
		default:
			im.mapBlock(child, 0)
		}
	}
}

func (im *mdImporter) mapList(list *ast.List, depth int) {
	typ := document.BlockUnorderedList
	if list.IsOrdered() {
		typ = document.BlockOrderedList
	}
	if depth > document.MaxIndent {
		depth = document.MaxIndent
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch gmn := child.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				im.appendInlineBlock(child, typ, depth)
			case *ast.List:
				im.mapList(gmn, depth+1)
			default:
				im.mapBlock(child, depth)
			}
		}
	}
}

func (im *mdImporter) appendInlineBlock(n ast.Node, typ document.BlockType, depth int) {
	a := newInlineAccum()
	im.walkInline(n, a, nil)
	im.blocks = append(im.blocks, a.block(typ, depth, im.links))
}

func (im *mdImporter) appendCodeBlock(lines *gtext.Segments, info string) {
	var sb strings.Builder
	for i := range lines.Len() {
		seg := lines.At(i)
		sb.Write(im.src[seg.Start:seg.Stop])
	}

	b := document.NewBlock()
	b.Type = document.BlockCode
	b.Text = strings.TrimSuffix(sb.String(), "\n")
	if fields := strings.Fields(info); len(fields) > 0 {
		b.Language = langdetect.NormalizeFence(fields[0])
	}
	im.blocks = append(im.blocks, b)
}

// walkInline accumulates inline content under n, carrying the active style
// set down through emphasis-like wrappers.
func (im *mdImporter) walkInline(n ast.Node, a *inlineAccum, active []document.InlineStyle) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch gmn := child.(type) {
		case *ast.Text:
			a.append(string(gmn.Value(im.src)), active)
			if gmn.SoftLineBreak() || gmn.HardLineBreak() {
				a.append("\n", active)
			}

		case *ast.String:
			a.append(string(gmn.Value), active)

		case *ast.Emphasis:
			st := document.StyleItalic
			if gmn.Level >= 2 {
				st = document.StyleBold
			}
			im.walkInline(child, a, withStyle(active, st))

		case *east.Strikethrough:
			im.walkInline(child, a, withStyle(active, document.StyleStrikethrough))

		case *ast.CodeSpan:
			a.append(codeSpanText(gmn, im.src), active)

		case *ast.Link:
			start := a.mark()
			im.walkInline(child, a, active)
			a.addLink(string(gmn.Destination), start)

		case *ast.AutoLink:
			url := string(gmn.URL(im.src))
			start := a.mark()
			a.append(string(gmn.Label(im.src)), active)
			a.addLink(url, start)

		case *ast.Image:
			// Images carry no block representation; keep the alt text.
			im.walkInline(child, a, active)

		case *ast.RawHTML:
			switch strings.ToLower(rawHTMLText(gmn, im.src)) {
			case "<u>":
				a.openUnderline()
			case "</u>":
				a.closeUnderline()
			}

		default:
			im.walkInline(child, a, active)
		}
	}
}

// headingType clamps markdown heading levels to the three supported types.
func headingType(level int) document.BlockType {
	switch level {
	case 1:
		return document.BlockHeaderOne
	case 2:
		return document.BlockHeaderTwo
	default:
		return document.BlockHeaderThree
	}
}

func fenceInfo(codeBlock *ast.FencedCodeBlock, src []byte) string {
	if codeBlock.Info == nil {
		return ""
	}
	return string(codeBlock.Info.Value(src))
}

func codeSpanText(codeSpan *ast.CodeSpan, src []byte) string {
	var sb strings.Builder
	for child := codeSpan.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			sb.Write(textNode.Value(src))
		}
	}
	return sb.String()
}

func rawHTMLText(raw *ast.RawHTML, src []byte) string {
	var sb strings.Builder
	for i := range raw.Segments.Len() {
		seg := raw.Segments.At(i)
		sb.Write(src[seg.Start:seg.Stop])
	}
	return strings.TrimSpace(sb.String())
}
