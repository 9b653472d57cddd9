package templatex

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

const (
	// LayoutTemplate is the template every theme must define.
	LayoutTemplate = "layout"

	layoutFile = "layout.html"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

// Engine is a thin wrapper around Go templates with a fallback default layout.
type Engine struct {
	templates *template.Template
	// StaticDir holds theme assets copied next to the pages, if the theme has any.
	StaticDir string
}

// PageData is the data model handed to the layout for one document.
type PageData struct {
	Book         Book
	Title        string
	PageTitle    string
	Folder       string
	HeaderHTML   template.HTML
	FooterHTML   template.HTML
	ContentHTML  template.HTML
	Sections     []TOCEntry
	Folders      []FolderEntry
	Breadcrumbs  []Breadcrumb
	Previous     *NavLink
	Next         *NavLink
	HomeURL      string
	SearchURL    string
	ThemeURL     string
	HighlightCSS template.CSS
	Meta         Meta
}

// Book is the site metadata shown on every page.
type Book struct {
	Title         string
	ShortTitle    string
	Description   string
	Author        string
	RepositoryURL string
}

// Meta holds SEO-oriented metadata for the rendered page.
type Meta struct {
	Description   string
	OpenGraphType string
	OpenGraphSite string
}

// TOCEntry models a single heading of the current page.
type TOCEntry struct {
	ID    string
	Text  string
	Level int
}

// Anchor is the in-page link to the heading.
func (e TOCEntry) Anchor() string { return "#" + e.ID }

// FolderEntry is one folder of the sidebar listing.
type FolderEntry struct {
	Name  string
	Open  bool
	Pages []PageLink
}

// PageLink is a sidebar link to a page.
type PageLink struct {
	Title  string
	URL    string
	Active bool
}

// NavLink points to the previous or next page in reading order.
type NavLink struct {
	Label string
	URL   string
}

// Breadcrumb models a single breadcrumb entry for navigation.
type Breadcrumb struct {
	Title   string
	Path    string
	Current bool
}

// Load builds an engine from themeDir/layout.html plus themeDir/partials/*.html.
// Without a theme layout the embedded default layout is used. Files under
// themeDir/assets are published with either layout.
func Load(themeDir string) (*Engine, error) {
	funcs := template.FuncMap{
		"safeHTML": func(v any) template.HTML {
			switch value := v.(type) {
			case template.HTML:
				return value
			case string:
				return template.HTML(value)
			default:
				return ""
			}
		},
		"openClass": func(open bool) string {
			if open {
				return "uk-open"
			}
			return ""
		},
	}

	engine := &Engine{}
	root := template.New("root").Funcs(funcs)

	files, err := themeFiles(themeDir)
	if err != nil {
		return nil, err
	}

	var tpl *template.Template
	if len(files) > 0 {
		tpl, err = root.ParseFiles(files...)
		if err != nil {
			return nil, fmt.Errorf("parse theme templates: %w", err)
		}
	} else {
		tpl, err = root.ParseFS(defaultTemplates, "templates/*.html")
		if err != nil {
			return nil, fmt.Errorf("parse default templates: %w", err)
		}
	}

	if tpl.Lookup(LayoutTemplate) == nil {
		return nil, fmt.Errorf("template %q is not defined", LayoutTemplate)
	}
	engine.templates = tpl

	if themeDir != "" {
		assetsPath := filepath.Join(themeDir, "assets")
		if info, err := os.Stat(assetsPath); err == nil && info.IsDir() {
			engine.StaticDir = assetsPath
		}
	}
	return engine, nil
}

// themeFiles lists the theme templates, or nothing when the theme has no layout.
func themeFiles(themeDir string) ([]string, error) {
	if themeDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(filepath.Join(themeDir, layoutFile)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat theme layout: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(themeDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("glob main templates: %w", err)
	}
	partials, err := filepath.Glob(filepath.Join(themeDir, "partials", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("glob partial templates: %w", err)
	}
	files = append(files, partials...)
	sort.Strings(files)
	return files, nil
}

// Render writes the rendered layout into the provided writer.
func (e *Engine) Render(w io.Writer, data *PageData) error {
	if e.templates == nil {
		return fmt.Errorf("template engine not initialized")
	}
	return e.templates.ExecuteTemplate(w, LayoutTemplate, data)
}
