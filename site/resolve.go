package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iedon/frankmark-go/config"
	"github.com/iedon/frankmark-go/logfields"
)

const markdownExt = ".md"

// ResolvedPage is a manifest page whose source file exists.
type ResolvedPage struct {
	Name string
	Path string
}

// ResolvedFolder is a manifest folder found under the site root together
// with the pages that exist in it, in manifest order.
type ResolvedFolder struct {
	Name  string
	Dir   string
	Pages []ResolvedPage
}

// ResolveManifest matches the manifest against the filesystem. Missing
// folders and pages are logged and skipped; only a root that cannot be
// listed is an error. Folders left without pages are not returned.
func ResolveManifest(root string, dirs []config.Directory, logger *slog.Logger) ([]ResolvedFolder, error) {
	logger = ensureLogger(logger)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnumerate, err)
	}
	present := make(map[string]string, len(entries))
	for _, entry := range entries {
		full := filepath.Join(root, entry.Name())
		if !entry.IsDir() {
			// Symlinked folders report their own type; follow them.
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(full)
			if err != nil || !info.IsDir() {
				continue
			}
		}
		present[entry.Name()] = full
	}

	resolved := make([]ResolvedFolder, 0, len(dirs))
	for _, dir := range dirs {
		folderDir, ok := present[dir.Name]
		if !ok {
			logger.Warn("folder not found, skipping", logfields.Folder(dir.Name), logfields.Path(filepath.Join(root, dir.Name)))
			continue
		}

		folder := ResolvedFolder{Name: dir.Name, Dir: folderDir}
		for _, name := range dir.Pages {
			source := filepath.Join(folderDir, name+markdownExt)
			if _, err := os.Stat(source); err != nil {
				logger.Warn("page not found, skipping", logfields.Folder(dir.Name), logfields.Page(name), logfields.Path(source))
				continue
			}
			folder.Pages = append(folder.Pages, ResolvedPage{Name: name, Path: source})
		}

		if len(folder.Pages) == 0 {
			logger.Warn("folder has no pages, skipping", logfields.Folder(dir.Name))
			continue
		}
		logger.Debug("folder resolved", logfields.Folder(dir.Name), logfields.Count(len(folder.Pages)))
		resolved = append(resolved, folder)
	}
	return resolved, nil
}

func ensureLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
