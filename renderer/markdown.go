package renderer

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlRenderer "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const classPrefix = "z-"

// Heading is one entry of a page outline.
type Heading struct {
	Text  string
	Level int
	Slug  string
}

// Document is a parsed markdown source ready to be rendered.
type Document struct {
	Headings  []Heading
	PlainText string
	Meta      map[string]any
	// MetaErr is set when the front matter block could not be decoded.
	MetaErr error
	// Untitled lists the levels of headings that had no extractable text.
	Untitled []int

	source []byte
	root   ast.Node
}

// MetaString returns a trimmed string front matter value.
func (d *Document) MetaString(key string) string {
	if d == nil || d.Meta == nil {
		return ""
	}
	value, ok := d.Meta[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// Result wraps rendered markup and the document it came from.
type Result struct {
	*Document
	HTML []byte
}

// Options selects the renderer profile.
type Options struct {
	HighlightStyle string
	Minify         bool
}

// Renderer transforms markdown sources into HTML fragments.
type Renderer struct {
	md       goldmark.Markdown
	style    string
	minifier minifier
}

// New constructs a renderer with GitHub-flavored markdown extensions and syntax highlighting.
func New(opts Options) *Renderer {
	style := strings.TrimSpace(opts.HighlightStyle)
	if style == "" {
		style = "github"
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.DefinitionList,
			extension.Footnote,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(formatOptions()...),
				highlighting.WithWrapperRenderer(codeWrapper),
			),
			meta.Meta,
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			htmlRenderer.WithUnsafe(),
		),
	)

	r := &Renderer{md: md, style: style}
	if opts.Minify {
		r.minifier = newMinifier()
	}
	return r
}

func formatOptions() []chromahtml.Option {
	return []chromahtml.Option{
		chromahtml.WithClasses(true),
		chromahtml.WithAllClasses(true),
		chromahtml.ClassPrefix(classPrefix),
		chromahtml.PreventSurroundingPre(true),
	}
}

// Parse builds the syntax tree and extracts the heading outline. Headings
// receive an id attribute matching their slug so outline anchors resolve.
// Repeated slugs on one page get a numeric suffix: intro, intro-1, intro-2.
func (r *Renderer) Parse(src []byte) *Document {
	pc := parser.NewContext()
	root := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(pc))

	doc := &Document{source: src, root: root}
	doc.Meta, doc.MetaErr = meta.TryGet(pc)

	plain := &strings.Builder{}
	slugs := newSlugSet()

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				plain.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			title, ok := headingText(node, src)
			if !ok {
				doc.Untitled = append(doc.Untitled, node.Level)
				return ast.WalkContinue, nil
			}
			slug := ""
			if attr, found := node.AttributeString("id"); found {
				slug = attributeToString(attr)
			}
			if slug == "" {
				slug = Slugify(title)
			}
			slug = slugs.unique(slug)
			node.SetAttributeString("id", []byte(slug))
			doc.Headings = append(doc.Headings, Heading{Text: title, Level: node.Level, Slug: slug})
		case *ast.Text:
			plain.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				plain.WriteByte(' ')
			}
		case *ast.String:
			plain.WriteString(html.UnescapeString(string(node.Value)))
		}
		return ast.WalkContinue, nil
	})

	doc.PlainText = strings.Join(strings.Fields(plain.String()), " ")
	return doc
}

// HTML renders a parsed document into an HTML fragment.
func (r *Renderer) HTML(doc *Document) ([]byte, error) {
	if doc == nil || doc.root == nil {
		return nil, fmt.Errorf("render: document not parsed")
	}
	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, doc.source, doc.root); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// Render parses and renders in one step.
func (r *Renderer) Render(src []byte) (*Result, error) {
	doc := r.Parse(src)
	out, err := r.HTML(doc)
	if err != nil {
		return nil, err
	}
	return &Result{Document: doc, HTML: out}, nil
}

// HighlightCSS returns the stylesheet for the classes emitted by code blocks.
func (r *Renderer) HighlightCSS() (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(formatOptions()...)
	if err := formatter.WriteCSS(&buf, styles.Get(r.style)); err != nil {
		return "", fmt.Errorf("highlight css: %w", err)
	}
	return buf.String(), nil
}

// headingText returns the heading text when its first child is plain text.
// Typographer replacements such as curly quotes count as plain text.
func headingText(node *ast.Heading, source []byte) (string, bool) {
	switch node.FirstChild().(type) {
	case *ast.Text, *ast.String:
	default:
		return "", false
	}
	title := extractText(node, source)
	if title == "" {
		return "", false
	}
	return title, true
}

func extractText(root ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n == root || !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(node.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(html.UnescapeString(sb.String()))
}

func attributeToString(value interface{}) string {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return ""
	}
}

func codeWrapper(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	lang := "text"
	if raw, ok := ctx.Language(); ok && len(raw) > 0 {
		lang = string(raw)
	}
	lang = string(util.EscapeHTML([]byte(lang)))
	if entering {
		_, _ = fmt.Fprintf(w, `<pre tabindex="0" class="%[2]schroma %[2]scode language-%[1]s" data-lang="%[1]s"><code class="language-%[1]s" data-lang="%[1]s">`, lang, classPrefix)
		return
	}
	_, _ = w.WriteString("</code></pre>\n")
}
