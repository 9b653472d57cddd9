package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iedon/frankmark-go/config"
	"github.com/iedon/frankmark-go/fsutil"
	"github.com/iedon/frankmark-go/logfields"
	"github.com/iedon/frankmark-go/renderer"
	"github.com/iedon/frankmark-go/templatex"
)

// Service turns a loaded manifest into the static site under <root>/output.
type Service struct {
	cfg       *config.Config
	templates *templatex.Engine
	renderer  *renderer.Renderer
	logger    *slog.Logger

	highlightCSS template.CSS
}

// Report summarizes a finished build.
type Report struct {
	Folders int
	Pages   int
	Files   int
}

// NewService constructs a Service instance.
func NewService(cfg *config.Config, templates *templatex.Engine, logger *slog.Logger) *Service {
	return &Service{
		cfg:       cfg,
		templates: templates,
		renderer: renderer.New(renderer.Options{
			HighlightStyle: cfg.Output.HighlightStyle,
			Minify:         cfg.MinifyEnabled(),
		}),
		logger: ensureLogger(logger),
	}
}

// Build runs the whole pipeline once. The output directory is deleted and
// recreated before the first page is written; a failure after that point
// leaves a partial tree behind.
func (s *Service) Build(ctx context.Context) (Report, error) {
	resolved, err := ResolveManifest(s.cfg.Root, s.cfg.Directories, s.logger)
	if err != nil {
		return Report{}, err
	}

	folders := BuildFolders(resolved, NewDocumentLoader(s.renderer, s.logger))
	st, err := NewSite(s.cfg.Book, s.cfg.OutputDir, folders)
	if err != nil {
		return Report{}, err
	}

	css, err := s.renderer.HighlightCSS()
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrRender, err)
	}
	s.highlightCSS = template.CSS(css)
	layout := s.loadLayout()

	if err := fsutil.ResetDir(st.OutputDir); err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	report := Report{Folders: len(st.Folders)}
	for _, pg := range st.Navigator().Pages() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := s.writePage(st, viewOf(st, pg), pg.OutputPath, layout); err != nil {
			return report, err
		}
		report.Pages++
		report.Files++
	}

	if landing := st.Landing(); landing != nil {
		if err := s.writePage(st, rootViewOf(st, landing), st.IndexPath(), layout); err != nil {
			return report, err
		}
		report.Files++
	} else {
		s.logger.Warn("site has no pages, nothing to publish", logfields.Output(st.OutputDir))
	}

	if s.cfg.Output.SearchIndex {
		if err := s.writeSearchIndex(st); err != nil {
			return report, err
		}
		report.Files++
	}

	copied, err := s.copyStatic()
	report.Files += copied
	if err != nil {
		return report, err
	}
	return report, nil
}

func (s *Service) writePage(st *Site, view pageView, target string, layout layoutFragments) error {
	out, err := s.renderPage(st, view, layout)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFile(target, out); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	s.logger.Debug("page written", logfields.Page(view.page.FullName()), logfields.Output(target))
	return nil
}

func (s *Service) writeSearchIndex(st *Site) error {
	payload, err := buildSearchIndex(st.Navigator().Pages(), st.LinkFromRoot())
	if err != nil {
		return fmt.Errorf("%w: search index: %w", ErrRender, err)
	}
	if err := fsutil.WriteFile(filepath.Join(st.OutputDir, searchIndexFile), payload); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// copyStatic copies the configured assets directory and the theme assets
// into the output tree.
func (s *Service) copyStatic() (int, error) {
	total := 0
	if s.cfg.Output.Assets != "" {
		src := filepath.Join(s.cfg.Root, filepath.FromSlash(s.cfg.Output.Assets))
		if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("assets directory not found, skipping", logfields.Path(src))
		} else {
			n, err := fsutil.CopyTree(src, filepath.Join(s.cfg.OutputDir, config.AssetsOutputDir))
			total += n
			if err != nil {
				return total, fmt.Errorf("%w: copy assets: %w", ErrWrite, err)
			}
		}
	}
	if s.templates.StaticDir != "" {
		n, err := fsutil.CopyTree(s.templates.StaticDir, filepath.Join(s.cfg.OutputDir, config.ThemeOutputDir))
		total += n
		if err != nil {
			return total, fmt.Errorf("%w: copy theme assets: %w", ErrWrite, err)
		}
	}
	return total, nil
}
