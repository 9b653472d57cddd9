package site

import "github.com/iedon/frankmark-go/templatex"

// buildBreadcrumbs returns book > folder > page for the current document.
func buildBreadcrumbs(bookTitle, homeURL string, current *Page) []templatex.Breadcrumb {
	crumbs := make([]templatex.Breadcrumb, 0, 3)
	if bookTitle != "" {
		crumbs = append(crumbs, templatex.Breadcrumb{Title: bookTitle, Path: homeURL})
	}
	crumbs = append(crumbs,
		templatex.Breadcrumb{Title: current.FolderName},
		templatex.Breadcrumb{Title: current.Title, Current: true},
	)
	return crumbs
}
