package bridge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/yaklabco/inkwell/pkg/document"
	"github.com/yaklabco/inkwell/pkg/langdetect"
)

// htmlBridge converts HTML to document content and back. Imported markup is
// sanitized down to exactly the representable elements before parsing.
type htmlBridge struct {
	policy *bluemonday.Policy
}

func newHTMLBridge() *htmlBridge {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"p", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "pre", "code", "br",
		"b", "strong", "i", "em", "u", "s", "del", "strike", "a",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").OnElements("code")
	return &htmlBridge{policy: p}
}

// Import sanitizes and parses HTML into document content. Heading levels
// beyond three clamp to header-three; nested lists map to depth.
func (b *htmlBridge) Import(input string) (document.Content, error) {
	clean := b.policy.Sanitize(input)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(clean))
	if err != nil {
		return document.Content{}, fmt.Errorf("parse html: %w", err)
	}

	im := &htmlImporter{links: make(map[string]document.LinkEntity)}
	for _, node := range doc.Find("body").Nodes {
		im.walkBlocks(node, 0)
	}

	content := document.Content{Blocks: im.blocks, Entities: im.links}
	if len(content.Blocks) == 0 {
		return document.NewContent(), nil
	}
	return content.PruneEntities(), nil
}

// htmlImporter flattens a sanitized HTML tree into document blocks.
type htmlImporter struct {
	blocks []document.Block
	links  map[string]document.LinkEntity
}

func (im *htmlImporter) walkBlocks(n *html.Node, depth int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		im.mapBlock(c, depth)
	}
}

func (im *htmlImporter) mapBlock(n *html.Node, depth int) {
	if n.Type == html.TextNode {
		if strings.TrimSpace(n.Data) != "" {
			im.appendInlineBlock(n, document.BlockParagraph, 0)
		}
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	switch n.Data {
	case "p":
		im.appendInlineBlock(n, document.BlockParagraph, 0)
	case "h1":
		im.appendInlineBlock(n, document.BlockHeaderOne, 0)
	case "h2":
		im.appendInlineBlock(n, document.BlockHeaderTwo, 0)
	case "h3", "h4", "h5", "h6":
		im.appendInlineBlock(n, document.BlockHeaderThree, 0)
	case "blockquote":
		im.mapBlockquote(n)
	case "ul":
		im.mapList(n, document.BlockUnorderedList, depth)
	case "ol":
		im.mapList(n, document.BlockOrderedList, depth)
	case "pre":
		im.mapPre(n)
	default:
		im.appendInlineBlock(n, document.BlockParagraph, 0)
	}
}

// mapBlockquote flattens quoted paragraphs to blockquote blocks. A quote
// holding bare inline content becomes a single block.
func (im *htmlImporter) mapBlockquote(n *html.Node) {
	flattened := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "p" {
			im.appendInlineBlock(c, document.BlockQuote, 0)
			flattened = true
		}
	}
	if !flattened {
		im.appendInlineBlock(n, document.BlockQuote, 0)
	}
}

func (im *htmlImporter) mapList(n *html.Node, typ document.BlockType, depth int) {
	if depth > document.MaxIndent {
		depth = document.MaxIndent
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "li":
			im.mapListItem(c, typ, depth)
		case "ul":
			im.mapList(c, document.BlockUnorderedList, depth+1)
		case "ol":
			im.mapList(c, document.BlockOrderedList, depth+1)
		}
	}
}

func (im *htmlImporter) mapListItem(li *html.Node, typ document.BlockType, depth int) {
	a := newInlineAccum()
	var nested []*html.Node
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			nested = append(nested, c)
			continue
		}
		im.walkInlineNode(c, a, nil)
	}
	im.blocks = append(im.blocks, a.block(typ, depth, im.links))

	for _, list := range nested {
		next := document.BlockUnorderedList
		if list.Data == "ol" {
			next = document.BlockOrderedList
		}
		im.mapList(list, next, depth+1)
	}
}

func (im *htmlImporter) mapPre(pre *html.Node) {
	code := pre
	for c := pre.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "code" {
			code = c
			break
		}
	}

	b := document.NewBlock()
	b.Type = document.BlockCode
	b.Text = strings.TrimSuffix(textContent(code), "\n")
	b.Language = langdetect.NormalizeFence(languageFromClass(attr(code, "class")))
	im.blocks = append(im.blocks, b)
}

func (im *htmlImporter) appendInlineBlock(n *html.Node, typ document.BlockType, depth int) {
	a := newInlineAccum()
	im.walkInlineNode(n, a, nil)
	im.blocks = append(im.blocks, a.block(typ, depth, im.links))
}

// walkInlineNode accumulates one node's inline content, carrying the active
// style set through formatting elements.
func (im *htmlImporter) walkInlineNode(n *html.Node, a *inlineAccum, active []document.InlineStyle) {
	if n.Type == html.TextNode {
		text := collapseSpace(n.Data)
		if a.mark() == 0 {
			text = strings.TrimLeft(text, " ")
		}
		a.append(text, active)
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	switch n.Data {
	case "b", "strong":
		im.walkInlineChildren(n, a, withStyle(active, document.StyleBold))
	case "i", "em":
		im.walkInlineChildren(n, a, withStyle(active, document.StyleItalic))
	case "u":
		im.walkInlineChildren(n, a, withStyle(active, document.StyleUnderline))
	case "s", "del", "strike":
		im.walkInlineChildren(n, a, withStyle(active, document.StyleStrikethrough))
	case "a":
		start := a.mark()
		im.walkInlineChildren(n, a, active)
		a.addLink(attr(n, "href"), start)
	case "br":
		a.append("\n", active)
	default:
		im.walkInlineChildren(n, a, active)
	}
}

func (im *htmlImporter) walkInlineChildren(n *html.Node, a *inlineAccum, active []document.InlineStyle) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		im.walkInlineNode(c, a, active)
	}
}

var spaceRuns = regexp.MustCompile(`[ \t\r\n]+`)

// collapseSpace applies HTML whitespace collapsing to a text node.
func collapseSpace(s string) string {
	return spaceRuns.ReplaceAllString(s, " ")
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// languageFromClass extracts the language from a "language-*" class token.
func languageFromClass(class string) string {
	for _, token := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(token, "language-"); ok {
			return lang
		}
	}
	return ""
}
