package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iedon/frankmark-go/config"
)

func TestResolveManifestKeepsOrderAndSkipsMissing(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"B/z.md":        "# z",
		"A/y.md":        "# y",
		"A/x.md":        "# x",
		"A/unlisted.md": "# not in the manifest",
		"Empty/.keep":   "",
		"notadir":       "file named like a folder",
	})
	logger, logs := bufferLogger()

	resolved, err := ResolveManifest(root, []config.Directory{
		{Name: "A", Pages: []string{"x", "gone", "y"}},
		{Name: "Ghost", Pages: []string{"p"}},
		{Name: "Empty", Pages: []string{"nothing"}},
		{Name: "notadir", Pages: []string{"p"}},
		{Name: "B", Pages: []string{"z"}},
	}, logger)
	require.NoError(t, err)

	require.Len(t, resolved, 2)
	assert.Equal(t, "A", resolved[0].Name)
	assert.Equal(t, filepath.Join(root, "A"), resolved[0].Dir)
	assert.Equal(t, []ResolvedPage{
		{Name: "x", Path: filepath.Join(root, "A", "x.md")},
		{Name: "y", Path: filepath.Join(root, "A", "y.md")},
	}, resolved[0].Pages)
	assert.Equal(t, "B", resolved[1].Name)

	out := logs.String()
	missingPage := strings.Index(out, `msg="page not found, skipping" folder=A page=gone`)
	ghost := strings.Index(out, `msg="folder not found, skipping" folder=Ghost`)
	empty := strings.Index(out, `msg="folder has no pages, skipping" folder=Empty`)
	notDir := strings.Index(out, `msg="folder not found, skipping" folder=notadir`)
	require.True(t, missingPage >= 0 && ghost >= 0 && empty >= 0 && notDir >= 0, out)
	assert.True(t, missingPage < ghost && ghost < empty && empty < notDir, "warnings follow manifest order:\n%s", out)
	assert.Contains(t, out, `msg="folder resolved" folder=A count=2`)
	assert.Contains(t, out, `msg="folder resolved" folder=B count=1`)
}

func TestResolveManifestFollowsSymlinkedFolders(t *testing.T) {
	root := t.TempDir()
	elsewhere := t.TempDir()
	writeTree(t, elsewhere, map[string]string{"page.md": "# page"})
	if err := os.Symlink(elsewhere, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	resolved, err := ResolveManifest(root, []config.Directory{{Name: "linked", Pages: []string{"page"}}}, nil)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Len(t, resolved[0].Pages, 1)
}

func TestResolveManifestRootMissing(t *testing.T) {
	_, err := ResolveManifest(filepath.Join(t.TempDir(), "missing"), []config.Directory{{Name: "A"}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnumerate)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
