package site

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files below root; keys are slash separated paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		target := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		require.NoError(t, os.WriteFile(target, []byte(content), 0o644))
	}
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// draftTree builds pages without touching the filesystem.
func draftTree(tree ...[]string) []*Folder {
	folders := make([]*Folder, 0, len(tree))
	for _, names := range tree {
		folder := &Folder{Name: names[0]}
		for _, name := range names[1:] {
			folder.Pages = append(folder.Pages, &Page{
				ID:          DeriveID(fullName(folder.Name, name)),
				DisplayName: name,
				FolderName:  folder.Name,
				Title:       name,
			})
		}
		folders = append(folders, folder)
	}
	return folders
}

func fullNames(pages []*Page) []string {
	names := make([]string, 0, len(pages))
	for _, pg := range pages {
		names = append(names, pg.FullName())
	}
	return names
}
