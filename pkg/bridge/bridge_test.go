package bridge_test

import (
	"testing"

	"github.com/yaklabco/inkwell/pkg/bridge"
	"github.com/yaklabco/inkwell/pkg/document"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    bridge.Format
		wantErr bool
	}{
		{in: "markdown", want: bridge.FormatMarkdown},
		{in: "md", want: bridge.FormatMarkdown},
		{in: "", want: bridge.FormatMarkdown},
		{in: "HTML", want: bridge.FormatHTML},
		{in: "htm", want: bridge.FormatHTML},
		{in: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := bridge.ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want bridge.Format
	}{
		{name: "html paragraph", in: "<p>hello</p>", want: bridge.FormatHTML},
		{name: "html with leading space", in: "  <h1>Title</h1>", want: bridge.FormatHTML},
		{name: "doctype", in: "<!DOCTYPE html>", want: bridge.FormatHTML},
		{name: "markdown heading", in: "# Title", want: bridge.FormatMarkdown},
		{name: "plain text", in: "just words", want: bridge.FormatMarkdown},
		{name: "less-than in prose", in: "a < b", want: bridge.FormatMarkdown},
		{name: "empty", in: "", want: bridge.FormatMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := bridge.DetectFormat(tt.in); got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

const markdownFixture = `# Title

Some **bold** and *italic* text with [a link](https://example.com).

- one
- two
    - nested

> quoted

` + "```go\nfmt.Println()\n```\n"

func TestMarkdownImport(t *testing.T) {
	t.Parallel()

	content, err := bridge.Import(bridge.FormatMarkdown, markdownFixture)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	wantTypes := []document.BlockType{
		document.BlockHeaderOne,
		document.BlockParagraph,
		document.BlockUnorderedList,
		document.BlockUnorderedList,
		document.BlockUnorderedList,
		document.BlockQuote,
		document.BlockCode,
	}
	if len(content.Blocks) != len(wantTypes) {
		t.Fatalf("blocks = %d, want %d: %+v", len(content.Blocks), len(wantTypes), content.Blocks)
	}
	for i, want := range wantTypes {
		if content.Blocks[i].Type != want {
			t.Errorf("block %d type = %v, want %v", i, content.Blocks[i].Type, want)
		}
	}

	if content.Blocks[0].Text != "Title" {
		t.Errorf("heading text = %q", content.Blocks[0].Text)
	}

	para := content.Blocks[1]
	if !para.HasStyleOver(document.StyleBold, 5, 9) {
		t.Errorf("expected BOLD over 'bold', styles = %v, text = %q", para.Styles, para.Text)
	}
	if !para.HasStyleOver(document.StyleItalic, 14, 20) {
		t.Errorf("expected ITALIC over 'italic', styles = %v", para.Styles)
	}
	if len(para.Entities) != 1 {
		t.Fatalf("entities = %v", para.Entities)
	}
	ent, ok := content.Entity(para.Entities[0].Key)
	if !ok || ent.URL != "https://example.com" {
		t.Errorf("entity = %+v", ent)
	}
	if ent.Text != "a link" {
		t.Errorf("entity text = %q", ent.Text)
	}

	if d := content.Blocks[4].Depth; d != 1 {
		t.Errorf("nested item depth = %d", d)
	}
	if content.Blocks[4].Text != "nested" {
		t.Errorf("nested item text = %q", content.Blocks[4].Text)
	}

	code := content.Blocks[6]
	if code.Language != "go" || code.Text != "fmt.Println()" {
		t.Errorf("code block = %+v", code)
	}
}

func TestMarkdownImportClampsHeadings(t *testing.T) {
	t.Parallel()

	content, err := bridge.Import(bridge.FormatMarkdown, "##### deep heading\n")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if got := content.Blocks[0].Type; got != document.BlockHeaderThree {
		t.Errorf("type = %v, want header-three", got)
	}
}

func TestMarkdownImportStrikethrough(t *testing.T) {
	t.Parallel()

	content, err := bridge.Import(bridge.FormatMarkdown, "~~gone~~ kept\n")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	b := content.Blocks[0]
	if !b.HasStyleOver(document.StyleStrikethrough, 0, 4) {
		t.Errorf("styles = %v, text = %q", b.Styles, b.Text)
	}
}

func TestMarkdownImportUnderlineTags(t *testing.T) {
	t.Parallel()

	content, err := bridge.Import(bridge.FormatMarkdown, "a <u>under</u> b\n")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	b := content.Blocks[0]
	if b.Text != "a under b" {
		t.Fatalf("text = %q", b.Text)
	}
	if !b.HasStyleOver(document.StyleUnderline, 2, 7) {
		t.Errorf("styles = %v", b.Styles)
	}
}

func TestMarkdownImportEmpty(t *testing.T) {
	t.Parallel()

	content, err := bridge.Import(bridge.FormatMarkdown, "")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(content.Blocks) != 1 || content.Blocks[0].Type != document.BlockParagraph {
		t.Errorf("empty input should import as one empty paragraph, got %+v", content.Blocks)
	}
}

func TestMarkdownExport(t *testing.T) {
	t.Parallel()

	c := document.NewContent()
	c.Blocks[0].Type = document.BlockHeaderOne
	c.Blocks[0].Text = "Title"

	para := document.NewBlock()
	para.Text = "bold text"
	para = para.AddStyle(document.StyleBold, 0, 4)
	c.Blocks = append(c.Blocks, para)

	for _, text := range []string{"one", "two"} {
		item := document.NewBlock()
		item.Type = document.BlockOrderedList
		item.Text = text
		c.Blocks = append(c.Blocks, item)
	}

	quote := document.NewBlock()
	quote.Type = document.BlockQuote
	quote.Text = "wise words"
	c.Blocks = append(c.Blocks, quote)

	code := document.NewBlock()
	code.Type = document.BlockCode
	code.Language = "go"
	code.Text = "fmt.Println()"
	c.Blocks = append(c.Blocks, code)

	got, err := bridge.Export(bridge.FormatMarkdown, c)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	want := "# Title\n\n**bold** text\n\n1. one\n\n2. two\n\n> wise words\n\n```go\nfmt.Println()\n```\n"
	if got != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
}

func TestMarkdownExportLink(t *testing.T) {
	t.Parallel()

	c := document.NewContent()
	c.Blocks[0].Text = "visit example now"
	c.Blocks[0].Entities = []document.EntityRange{{Key: "k1", Start: 6, End: 13}}
	c = c.SetEntity("k1", document.LinkEntity{URL: "https://example.com", Text: "example"})

	got, err := bridge.Export(bridge.FormatMarkdown, c)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	want := "visit [example](https://example.com) now\n"
	if got != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
}

func TestMarkdownExportUnderline(t *testing.T) {
	t.Parallel()

	c := document.NewContent()
	c.Blocks[0].Text = "under"
	c.Blocks[0] = c.Blocks[0].AddStyle(document.StyleUnderline, 0, 5)

	got, err := bridge.Export(bridge.FormatMarkdown, c)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if got != "<u>under</u>\n" {
		t.Errorf("Export() = %q", got)
	}
}

func TestMarkdownExportEscapesPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "asterisks", text: "2 * 3 * 4", want: "2 \\* 3 \\* 4\n"},
		{name: "leading hash", text: "# not a heading", want: "\\# not a heading\n"},
		{name: "leading quote marker", text: "> not a quote", want: "\\> not a quote\n"},
		{name: "bracket and underscore", text: "see [ref] under_score", want: "see \\[ref] under\\_score\n"},
		{name: "backtick", text: "run `ls`", want: "run \\`ls\\`\n"},
		{name: "backslash", text: `a\b`, want: "a\\\\b\n"},
		{name: "hash mid-line stays", text: "issue #42", want: "issue #42\n"},
		{name: "nothing to escape", text: "plain words", want: "plain words\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := document.NewContent()
			c.Blocks[0].Text = tt.text

			got, err := bridge.Export(bridge.FormatMarkdown, c)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Export(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestMarkdownEscapedPlainTextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"2 * 3 * 4", "# shell prompt", "a_b [c] ~d~"} {
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			c := document.NewContent()
			c.Blocks[0].Text = text

			out, err := bridge.Export(bridge.FormatMarkdown, c)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			again, err := bridge.Import(bridge.FormatMarkdown, out)
			if err != nil {
				t.Fatalf("re-Import() error = %v", err)
			}

			if len(again.Blocks) != 1 {
				t.Fatalf("blocks = %+v", again.Blocks)
			}
			b := again.Blocks[0]
			if b.Type != document.BlockParagraph {
				t.Errorf("type = %v, want paragraph", b.Type)
			}
			if b.Text != text {
				t.Errorf("text = %q, want %q", b.Text, text)
			}
			if len(b.Styles) != 0 {
				t.Errorf("unexpected styles %v", b.Styles)
			}
		})
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	t.Parallel()

	content, err := bridge.Import(bridge.FormatMarkdown, markdownFixture)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	out, err := bridge.Export(bridge.FormatMarkdown, content)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	again, err := bridge.Import(bridge.FormatMarkdown, out)
	if err != nil {
		t.Fatalf("re-Import() error = %v", err)
	}

	if len(again.Blocks) != len(content.Blocks) {
		t.Fatalf("round trip block count %d != %d\nexport:\n%s", len(again.Blocks), len(content.Blocks), out)
	}
	for i := range content.Blocks {
		if again.Blocks[i].Type != content.Blocks[i].Type {
			t.Errorf("block %d type %v != %v", i, again.Blocks[i].Type, content.Blocks[i].Type)
		}
		if again.Blocks[i].Text != content.Blocks[i].Text {
			t.Errorf("block %d text %q != %q", i, again.Blocks[i].Text, content.Blocks[i].Text)
		}
		if again.Blocks[i].Depth != content.Blocks[i].Depth {
			t.Errorf("block %d depth %d != %d", i, again.Blocks[i].Depth, content.Blocks[i].Depth)
		}
	}
}

const htmlFixture = `<h1>Title</h1>` +
	`<p>Some <strong>bold</strong> and <em>italic</em> text.</p>` +
	`<ul><li>one</li><li>two<ul><li>nested</li></ul></li></ul>` +
	`<blockquote><p>quoted</p></blockquote>` +
	`<pre><code class="language-go">fmt.Println()</code></pre>`

func TestHTMLImport(t *testing.T) {
	t.Parallel()

	content, err := bridge.Import(bridge.FormatHTML, htmlFixture)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	wantTypes := []document.BlockType{
		document.BlockHeaderOne,
		document.BlockParagraph,
		document.BlockUnorderedList,
		document.BlockUnorderedList,
		document.BlockUnorderedList,
		document.BlockQuote,
		document.BlockCode,
	}
	if len(content.Blocks) != len(wantTypes) {
		t.Fatalf("blocks = %d, want %d: %+v", len(content.Blocks), len(wantTypes), content.Blocks)
	}
	for i, want := range wantTypes {
		if content.Blocks[i].Type != want {
			t.Errorf("block %d type = %v, want %v", i, content.Blocks[i].Type, want)
		}
	}

	para := content.Blocks[1]
	if para.Text != "Some bold and italic text." {
		t.Fatalf("paragraph text = %q", para.Text)
	}
	if !para.HasStyleOver(document.StyleBold, 5, 9) {
		t.Errorf("styles = %v", para.Styles)
	}
	if !para.HasStyleOver(document.StyleItalic, 14, 20) {
		t.Errorf("styles = %v", para.Styles)
	}

	if d := content.Blocks[4].Depth; d != 1 {
		t.Errorf("nested item depth = %d", d)
	}

	code := content.Blocks[6]
	if code.Language != "go" || code.Text != "fmt.Println()" {
		t.Errorf("code block = %+v", code)
	}
}

func TestHTMLImportLink(t *testing.T) {
	t.Parallel()

	content, err := bridge.Import(bridge.FormatHTML, `<p>visit <a href="https://example.com">example</a> now</p>`)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	b := content.Blocks[0]
	if len(b.Entities) != 1 {
		t.Fatalf("entities = %v", b.Entities)
	}
	ent, ok := content.Entity(b.Entities[0].Key)
	if !ok || ent.URL != "https://example.com" || ent.Text != "example" {
		t.Errorf("entity = %+v", ent)
	}
}

func TestHTMLImportClampsHeadings(t *testing.T) {
	t.Parallel()

	content, err := bridge.Import(bridge.FormatHTML, "<h5>deep</h5>")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if got := content.Blocks[0].Type; got != document.BlockHeaderThree {
		t.Errorf("type = %v", got)
	}
}

func TestHTMLExport(t *testing.T) {
	t.Parallel()

	c := document.NewContent()
	c.Blocks[0].Text = "a & b"
	c.Blocks[0] = c.Blocks[0].AddStyle(document.StyleBold, 0, 1)

	one := document.NewBlock()
	one.Type = document.BlockUnorderedList
	one.Text = "one"
	two := document.NewBlock()
	two.Type = document.BlockUnorderedList
	two.Text = "nested"
	two.Depth = 1
	c.Blocks = append(c.Blocks, one, two)

	got, err := bridge.Export(bridge.FormatHTML, c)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	want := "<p><strong>a</strong> &amp; b</p>\n" +
		"<ul>\n<li>one</li>\n<ul>\n<li>nested</li>\n</ul>\n</ul>\n"
	if got != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
}

func TestHTMLRoundTripUnderline(t *testing.T) {
	t.Parallel()

	c := document.NewContent()
	c.Blocks[0].Text = "keep underline"
	c.Blocks[0] = c.Blocks[0].AddStyle(document.StyleUnderline, 5, 14)

	out, err := bridge.Export(bridge.FormatHTML, c)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	again, err := bridge.Import(bridge.FormatHTML, out)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !again.Blocks[0].HasStyleOver(document.StyleUnderline, 5, 14) {
		t.Errorf("underline lost: %+v", again.Blocks[0])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := bridge.New(bridge.Format("docx"), bridge.Options{}); err == nil {
		t.Error("expected error for unknown format")
	}
}
