package site

import (
	"errors"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iedon/frankmark-go/logfields"
)

const (
	headerFragment = "_Header.md"
	footerFragment = "_Footer.md"
)

// layoutFragments holds the optional header and footer shared by all pages.
type layoutFragments struct {
	Header template.HTML
	Footer template.HTML
}

func (s *Service) loadLayout() layoutFragments {
	return layoutFragments{
		Header: s.renderFragment(headerFragment),
		Footer: s.renderFragment(footerFragment),
	}
}

// renderFragment renders <root>/name. A missing fragment is simply absent;
// an unreadable or broken one is logged and left out.
func (s *Service) renderFragment(name string) template.HTML {
	source := filepath.Join(s.cfg.Root, name)
	data, err := os.ReadFile(source)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("cannot read layout fragment", logfields.Path(source), logfields.Error(err))
		}
		return ""
	}
	rendered, err := s.renderer.Render(data)
	if err != nil {
		s.logger.Warn("cannot render layout fragment", logfields.Path(source), logfields.Error(err))
		return ""
	}
	return template.HTML(rendered.HTML)
}
