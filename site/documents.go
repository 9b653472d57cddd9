package site

import (
	"html"
	"html/template"
	"log/slog"
	"os"

	"github.com/iedon/frankmark-go/logfields"
	"github.com/iedon/frankmark-go/renderer"
)

// DocumentLoader reads page sources and turns them into Page values.
// Problems with a single file degrade to substitute content and a warning.
type DocumentLoader struct {
	renderer *renderer.Renderer
	logger   *slog.Logger
}

// NewDocumentLoader constructs a loader rendering with r.
func NewDocumentLoader(r *renderer.Renderer, logger *slog.Logger) *DocumentLoader {
	return &DocumentLoader{renderer: r, logger: ensureLogger(logger)}
}

// Load builds the page for one resolved source. It never fails.
func (l *DocumentLoader) Load(folder string, rp ResolvedPage) *Page {
	pg := &Page{
		ID:          DeriveID(fullName(folder, rp.Name)),
		DisplayName: rp.Name,
		FolderName:  folder,
		Source:      rp.Path,
		Title:       rp.Name,
	}
	logger := l.logger.With(logfields.Folder(folder), logfields.Page(rp.Name))

	src, err := os.ReadFile(rp.Path)
	if err != nil {
		logger.Warn("cannot read page, using placeholder", logfields.Path(rp.Path), logfields.Error(err))
		src = placeholderMarkdown(rp.Name)
	}

	doc := l.renderer.Parse(src)
	for _, level := range doc.Untitled {
		logger.Warn("heading has no text, omitted from outline", logfields.Heading(level))
	}
	if doc.MetaErr != nil {
		logger.Warn("ignoring malformed front matter", logfields.Error(doc.MetaErr))
	}

	pg.Headings = doc.Headings
	pg.PlainText = doc.PlainText
	pg.Summary = summarize(doc.PlainText)
	if title := doc.MetaString("title"); title != "" {
		pg.Title = title
	}
	pg.Description = doc.MetaString("description")

	body, err := l.renderer.HTML(doc)
	if err != nil {
		logger.Warn("cannot render page, using fallback body", logfields.Error(err))
		body = fallbackBody(rp.Name)
	}
	pg.Content = template.HTML(body)
	return pg
}

func placeholderMarkdown(name string) []byte {
	return []byte("# " + name + "\n")
}

func fallbackBody(name string) []byte {
	return []byte("<h1>" + html.EscapeString(name) + "</h1>")
}
