package site

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iedon/frankmark-go/config"
	"github.com/iedon/frankmark-go/templatex"
)

const searchIndexFile = "search-index.json"

// pageView is a document to render: the page shown and where the produced
// file lives, which decides every link in it.
type pageView struct {
	page *Page
	dir  string
	link LinkFunc
}

func viewOf(st *Site, pg *Page) pageView {
	return pageView{page: pg, dir: filepath.Dir(pg.OutputPath), link: st.LinkFrom(pg)}
}

func rootViewOf(st *Site, pg *Page) pageView {
	return pageView{page: pg, dir: st.OutputDir, link: st.LinkFromRoot()}
}

// renderPage produces the final bytes of one document.
func (s *Service) renderPage(st *Site, view pageView, layout layoutFragments) ([]byte, error) {
	data, err := s.pageData(st, view, layout)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRender, view.page.FullName(), err)
	}

	var buf bytes.Buffer
	if err := s.templates.Render(&buf, data); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRender, view.page.FullName(), err)
	}

	out, err := s.renderer.MinifyHTML(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w %s: minify: %w", ErrRender, view.page.FullName(), err)
	}
	return out, nil
}

func (s *Service) pageData(st *Site, view pageView, layout layoutFragments) (*templatex.PageData, error) {
	current := view.page
	nav := st.Navigator()

	folders, err := folderListing(st.Folders, current, view.link)
	if err != nil {
		return nil, err
	}
	previous, err := navLink(current, nav.Previous(current), view.link)
	if err != nil {
		return nil, err
	}
	next, err := navLink(current, nav.Next(current), view.link)
	if err != nil {
		return nil, err
	}
	homeURL, err := view.link(st.Landing())
	if err != nil {
		return nil, err
	}

	sections := make([]templatex.TOCEntry, 0, len(current.Headings))
	for _, heading := range current.Headings {
		sections = append(sections, templatex.TOCEntry{ID: heading.Slug, Text: heading.Text, Level: heading.Level})
	}

	data := &templatex.PageData{
		Book:         bookData(st.Book),
		Title:        current.Title,
		PageTitle:    pageTitle(current.Title, st.Book.Title),
		Folder:       current.FolderName,
		HeaderHTML:   layout.Header,
		FooterHTML:   layout.Footer,
		ContentHTML:  current.Content,
		Sections:     sections,
		Folders:      folders,
		Breadcrumbs:  buildBreadcrumbs(st.Book.Title, homeURL, current),
		Previous:     previous,
		Next:         next,
		HomeURL:      homeURL,
		HighlightCSS: s.highlightCSS,
		Meta:         buildMeta(current, st.Book),
	}

	if s.cfg.Output.SearchIndex {
		if data.SearchURL, err = outputURL(view.dir, st.OutputDir, searchIndexFile); err != nil {
			return nil, err
		}
	}
	if s.templates.StaticDir != "" {
		if data.ThemeURL, err = outputURL(view.dir, st.OutputDir, config.ThemeOutputDir); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// outputURL links from a document directory to a file below the output root.
func outputURL(fromDir, outputDir, name string) (string, error) {
	rel, err := filepath.Rel(fromDir, filepath.Join(outputDir, name))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func bookData(book config.Book) templatex.Book {
	return templatex.Book{
		Title:         book.Title,
		ShortTitle:    book.ShortTitle(),
		Description:   book.Description,
		Author:        book.Author,
		RepositoryURL: book.GithubURL,
	}
}

func buildMeta(current *Page, book config.Book) templatex.Meta {
	description := metaDescription(current.Description, current.Summary)
	if description == "" {
		description = metaDescription(book.Description, book.Title)
	}
	return templatex.Meta{
		Description:   description,
		OpenGraphType: "article",
		OpenGraphSite: book.Title,
	}
}

func pageTitle(title, site string) string {
	title = strings.TrimSpace(title)
	site = strings.TrimSpace(site)
	switch {
	case title == "":
		return site
	case site == "" || title == site:
		return title
	default:
		return fmt.Sprintf("%s - %s", title, site)
	}
}
