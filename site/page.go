package site

import (
	"html/template"

	"github.com/iedon/frankmark-go/renderer"
)

// Heading is one outline entry of a page.
type Heading = renderer.Heading

// Folder is a manifest folder with the pages that survived resolution.
type Folder struct {
	Name  string
	Pages []*Page
}

// Page is one markdown document of the site tree. OutputPath stays empty
// until the output paths are planned by NewSite.
type Page struct {
	ID          string
	DisplayName string
	// FolderName refers to the owning folder by name; see Site.Folder.
	FolderName string
	Source     string

	Title       string
	Description string
	Content     template.HTML
	Headings    []Heading
	PlainText   string
	Summary     string

	OutputPath string
}

// FullName returns the folder-qualified page name.
func (p *Page) FullName() string {
	return fullName(p.FolderName, p.DisplayName)
}

func fullName(folder, page string) string {
	return folder + "/" + page
}
