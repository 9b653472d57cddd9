package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
book:
  title: Frankmark Handbook
  description: A small book
  author: Jane
  github_url: https://example.com/repo
directories:
  zeta:
    - intro
    - setup.md
  alpha:
    - basics
  empty:
output:
  minify: false
  search_index: true
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ManifestName), []byte(content), 0o644))
	return root
}

func TestLoadKeepsManifestOrder(t *testing.T) {
	root := writeManifest(t, sampleManifest)

	cfg, err := Load(root)
	require.NoError(t, err)

	require.Len(t, cfg.Directories, 3)
	assert.Equal(t, "zeta", cfg.Directories[0].Name)
	assert.Equal(t, []string{"intro", "setup"}, cfg.Directories[0].Pages)
	assert.Equal(t, "alpha", cfg.Directories[1].Name)
	assert.Equal(t, "empty", cfg.Directories[2].Name)
	assert.Empty(t, cfg.Directories[2].Pages)

	assert.Equal(t, "Frankmark Handbook", cfg.Book.Title)
	assert.Equal(t, "https://example.com/repo", cfg.Book.GithubURL)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, OutputDirName), cfg.OutputDir)
	assert.False(t, cfg.MinifyEnabled())
	assert.True(t, cfg.Output.SearchIndex)
	assert.Equal(t, defaultHighlightStyle, cfg.Output.HighlightStyle)
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsMalformedManifests(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"not yaml":          "book: [unclosed",
		"missing title":     "book: {}\ndirectories: {a: [x]}\n",
		"missing dirs":      "book: {title: T}\n",
		"dirs not mapping":  "book: {title: T}\ndirectories: [a, b]\n",
		"pages not list":    "book: {title: T}\ndirectories: {a: x}\n",
		"unknown key":       "book: {title: T}\ndirectories: {a: [x]}\ncolour: red\n",
		"separator":         "book: {title: T}\ndirectories: {a: [sub/x]}\n",
		"dot dot":           "book: {title: T}\ndirectories: {'..': [x]}\n",
		"duplicate page":    "book: {title: T}\ndirectories: {a: [x, x.md]}\n",
		"reserved folder":   "book: {title: T}\ndirectories: {output: [x]}\n",
		"reserved assets":   "book: {title: T}\ndirectories: {_Assets: [x]}\n",
		"assets escape":     "book: {title: T}\ndirectories: {a: [x]}\noutput: {assets: ../up}\n",
		"empty page name":   "book: {title: T}\ndirectories: {a: ['']}\n",
		"duplicate folders": "book: {title: T}\ndirectories:\n  a: [x]\n  a: [y]\n",
	}
	for name, manifest := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(manifest))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("book: {title: '  T  '}\ndirectories: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, "T", cfg.Book.Title)
	assert.NotNil(t, cfg.Directories)
	assert.Empty(t, cfg.Directories)
	assert.True(t, cfg.MinifyEnabled())
	assert.False(t, cfg.Output.SearchIndex)
	assert.Equal(t, "github", cfg.Output.HighlightStyle)
}

func TestShortTitle(t *testing.T) {
	assert.Equal(t, "Handbook", Book{Title: "Handbook"}.ShortTitle())
	assert.Equal(t, "Frankmar...", Book{Title: "Frankmark Handbook"}.ShortTitle())
	assert.Equal(t, "ドキュメントガイ...", Book{Title: "ドキュメントガイドブック"}.ShortTitle())
}

func TestEnvOverrides(t *testing.T) {
	root := writeManifest(t, sampleManifest)
	t.Setenv(EnvMinify, "true")
	t.Setenv(EnvSearchIndex, "0")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.True(t, cfg.MinifyEnabled())
	assert.False(t, cfg.Output.SearchIndex)
}

func TestEnvOverrideInvalid(t *testing.T) {
	root := writeManifest(t, sampleManifest)
	t.Setenv(EnvMinify, "sometimes")

	_, err := Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadEnvFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, LoadEnvFile(root), "missing .env is not an error")

	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(EnvLogLevel+"=DEBUG\n"), 0o644))
	require.NoError(t, LoadEnvFile(root))

	assert.Equal(t, "debug", ResolveLogLevel(""))
	assert.Equal(t, "warn", ResolveLogLevel("WARN"))
}

func TestResolveLogLevelDefault(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, "info", ResolveLogLevel(""))
}
