package site

import "github.com/iedon/frankmark-go/templatex"

// folderListing builds the sidebar for the current document: every folder
// with links to all of its pages, the current folder flagged as open.
func folderListing(folders []*Folder, current *Page, link LinkFunc) ([]templatex.FolderEntry, error) {
	entries := make([]templatex.FolderEntry, 0, len(folders))
	for _, folder := range folders {
		entry := templatex.FolderEntry{
			Name:  folder.Name,
			Open:  folder.Name == current.FolderName,
			Pages: make([]templatex.PageLink, 0, len(folder.Pages)),
		}
		for _, pg := range folder.Pages {
			url, err := link(pg)
			if err != nil {
				return nil, err
			}
			entry.Pages = append(entry.Pages, templatex.PageLink{
				Title:  pg.Title,
				URL:    url,
				Active: pg.ID == current.ID,
			})
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// navLabel names a neighbour page: the bare page name inside the current
// folder, folder/page across folders.
func navLabel(current, target *Page) string {
	if target.FolderName == current.FolderName {
		return target.DisplayName
	}
	return target.FullName()
}

func navLink(current, target *Page, link LinkFunc) (*templatex.NavLink, error) {
	if target == nil {
		return nil, nil
	}
	url, err := link(target)
	if err != nil {
		return nil, err
	}
	return &templatex.NavLink{Label: navLabel(current, target), URL: url}, nil
}
