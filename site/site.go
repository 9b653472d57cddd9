package site

import (
	"path/filepath"

	"github.com/iedon/frankmark-go/config"
)

// LinkFunc resolves the link to a page from a fixed document location.
type LinkFunc func(target *Page) (string, error)

// Site is the finished site tree: output paths planned and the reading
// order indexed. Nothing mutates it afterwards.
type Site struct {
	Book      config.Book
	Folders   []*Folder
	OutputDir string

	nav     *Navigator
	folders map[string]*Folder
}

// NewSite plans output paths for the draft folders under outputDir and then
// indexes them.
func NewSite(book config.Book, outputDir string, folders []*Folder) (*Site, error) {
	PlanOutputPaths(outputDir, folders)

	nav, err := NewNavigator(folders)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*Folder, len(folders))
	for _, folder := range folders {
		byName[folder.Name] = folder
	}
	return &Site{
		Book:      book,
		Folders:   folders,
		OutputDir: outputDir,
		nav:       nav,
		folders:   byName,
	}, nil
}

// Navigator returns the reading order index.
func (s *Site) Navigator() *Navigator { return s.nav }

// Landing is the first page of the first folder, published again as the root index.
func (s *Site) Landing() *Page { return s.nav.Landing() }

// Folder looks a folder up by name.
func (s *Site) Folder(name string) *Folder { return s.folders[name] }

// LinkFrom resolves links relative to the directory of current's output file.
func (s *Site) LinkFrom(current *Page) LinkFunc {
	dir := filepath.Dir(current.OutputPath)
	return func(target *Page) (string, error) {
		return RelativeLink(dir, target)
	}
}

// LinkFromRoot resolves links for documents stored directly in the output root.
func (s *Site) LinkFromRoot() LinkFunc {
	return func(target *Page) (string, error) {
		return RelativeLink(s.OutputDir, target)
	}
}

// IndexPath is where the landing page is published a second time.
func (s *Site) IndexPath() string {
	return filepath.Join(s.OutputDir, indexFileName)
}
