package site

import (
	"errors"
	"fmt"
	"path/filepath"
)

const (
	htmlExt       = ".html"
	indexFileName = "index.html"
)

// ErrUnplanned is returned when a link targets a page without an output path.
var ErrUnplanned = errors.New("output path not planned")

// PlanOutputPaths assigns every page its file under outputRoot, mirroring
// the folder: <outputRoot>/<folder>/<page>.html.
func PlanOutputPaths(outputRoot string, folders []*Folder) {
	for _, folder := range folders {
		for _, pg := range folder.Pages {
			pg.OutputPath = outputPathFor(outputRoot, folder.Name, pg.DisplayName)
		}
	}
}

func outputPathFor(outputRoot, folder, page string) string {
	return filepath.Join(outputRoot, folder, page+htmlExt)
}

// RelativeLink returns the link from a document stored in fromDir to the
// target page, using forward slashes as HTML expects.
func RelativeLink(fromDir string, target *Page) (string, error) {
	if target == nil || target.OutputPath == "" {
		return "", ErrUnplanned
	}
	rel, err := filepath.Rel(fromDir, target.OutputPath)
	if err != nil {
		return "", fmt.Errorf("link %s: %w", target.FullName(), err)
	}
	return filepath.ToSlash(rel), nil
}
