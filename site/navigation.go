package site

import "fmt"

// Navigator is the global reading order of a finished site tree: all pages
// of all folders, folders and pages in manifest order. It is read-only.
type Navigator struct {
	order []*Page
	index map[string]int
}

// NewNavigator flattens folders into the reading order. Two pages sharing
// an id make the index ambiguous and are rejected.
func NewNavigator(folders []*Folder) (*Navigator, error) {
	total := 0
	for _, folder := range folders {
		total += len(folder.Pages)
	}

	nav := &Navigator{
		order: make([]*Page, 0, total),
		index: make(map[string]int, total),
	}
	for _, folder := range folders {
		for _, pg := range folder.Pages {
			if prev, dup := nav.index[pg.ID]; dup {
				return nil, fmt.Errorf("%w: %s and %s share %s", ErrDuplicateID, nav.order[prev].FullName(), pg.FullName(), pg.ID)
			}
			nav.index[pg.ID] = len(nav.order)
			nav.order = append(nav.order, pg)
		}
	}
	return nav, nil
}

// Previous returns the page read before p, or nil when p comes first.
func (n *Navigator) Previous(p *Page) *Page {
	if i := n.position(p); i > 0 {
		return n.order[i-1]
	}
	return nil
}

// Next returns the page read after p, or nil when p comes last.
func (n *Navigator) Next(p *Page) *Page {
	if i := n.position(p); i+1 < len(n.order) {
		return n.order[i+1]
	}
	return nil
}

// Pages returns the reading order.
func (n *Navigator) Pages() []*Page {
	return append([]*Page(nil), n.order...)
}

// Len reports the number of indexed pages.
func (n *Navigator) Len() int {
	return len(n.order)
}

// Landing returns the first page of the reading order, or nil for an empty site.
func (n *Navigator) Landing() *Page {
	if len(n.order) == 0 {
		return nil
	}
	return n.order[0]
}

// position panics for pages outside the indexed tree: asking about them is
// a programming error, not a recoverable condition.
func (n *Navigator) position(p *Page) int {
	if p == nil {
		panic("site: navigator queried with a nil page")
	}
	i, ok := n.index[p.ID]
	if !ok {
		panic(fmt.Sprintf("site: page %s (%s) is not part of the navigation index", p.FullName(), p.ID))
	}
	return i
}
