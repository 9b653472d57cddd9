package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ManifestName is the manifest file looked up in the site root.
	ManifestName = "frankmark.yaml"
	// OutputDirName is the directory under the site root that receives the build.
	OutputDirName = "output"
	// DefaultRoot is used when no root folder is given on the command line.
	DefaultRoot = "demo"
	// ThemeDirName is the optional theme directory under the site root.
	ThemeDirName = "theme"
	// AssetsOutputDir and ThemeOutputDir receive copied files inside the output.
	AssetsOutputDir = "_assets"
	ThemeOutputDir  = "_theme"

	defaultHighlightStyle = "github"
	shortTitleLimit       = 8
)

// Folder names that would clash with generated output.
var reservedFolders = map[string]struct{}{
	OutputDirName:   {},
	AssetsOutputDir: {},
	ThemeOutputDir:  {},
}

// ErrConfig marks a missing or malformed manifest. It is always fatal.
var ErrConfig = errors.New("configuration error")

// Book holds the site metadata shown on every page.
type Book struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	GithubURL   string `yaml:"github_url"`
}

// ShortTitle returns the title truncated for the page header.
func (b Book) ShortTitle() string {
	runes := []rune(b.Title)
	if len(runes) <= shortTitleLimit {
		return b.Title
	}
	return string(runes[:shortTitleLimit]) + "..."
}

// Directory is one manifest folder and the ordered pages declared for it.
type Directory struct {
	Name  string
	Pages []string
}

// Directories keeps the manifest folder order as declared in the file.
type Directories []Directory

// UnmarshalYAML decodes a folder -> pages mapping without losing key order.
func (d *Directories) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: directories must map folder names to page lists", node.Line)
	}
	out := make(Directories, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var name string
		if err := key.Decode(&name); err != nil {
			return fmt.Errorf("line %d: folder name: %w", key.Line, err)
		}
		var pages []string
		if value.ShortTag() != "!!null" {
			if value.Kind != yaml.SequenceNode {
				return fmt.Errorf("line %d: folder %q must list its pages", value.Line, name)
			}
			if err := value.Decode(&pages); err != nil {
				return fmt.Errorf("line %d: folder %q: %w", value.Line, name, err)
			}
		}
		out = append(out, Directory{Name: name, Pages: pages})
	}
	*d = out
	return nil
}

// OutputConfig tunes how pages are written.
type OutputConfig struct {
	Minify         *bool  `yaml:"minify"`
	SearchIndex    bool   `yaml:"search_index"`
	HighlightStyle string `yaml:"highlight_style"`
	Assets         string `yaml:"assets"`
}

// Config is the parsed manifest plus the paths derived from the site root.
type Config struct {
	Book        Book         `yaml:"book"`
	Directories Directories  `yaml:"directories"`
	Output      OutputConfig `yaml:"output"`

	Root      string `yaml:"-"`
	OutputDir string `yaml:"-"`
}

// MinifyEnabled reports whether written pages are minified.
func (c *Config) MinifyEnabled() bool {
	return c.Output.Minify == nil || *c.Output.Minify
}

// Load reads <root>/frankmark.yaml and applies defaults and environment overrides.
func Load(root string) (*Config, error) {
	manifest := filepath.Join(root, ManifestName)
	file, err := os.Open(filepath.Clean(manifest))
	if err != nil {
		return nil, fmt.Errorf("%w: open manifest: %w", ErrConfig, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: read manifest: %w", ErrConfig, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Root = root
	cfg.OutputDir = filepath.Join(root, OutputDirName)
	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// Parse decodes manifest bytes. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	cfg := &Config{}
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: manifest is empty", ErrConfig)
		}
		return nil, fmt.Errorf("%w: parse manifest: %w", ErrConfig, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Book.Title = strings.TrimSpace(c.Book.Title)
	c.Book.Description = strings.TrimSpace(c.Book.Description)
	c.Book.Author = strings.TrimSpace(c.Book.Author)
	c.Book.GithubURL = strings.TrimSpace(c.Book.GithubURL)

	for i := range c.Directories {
		dir := &c.Directories[i]
		dir.Name = strings.TrimSpace(dir.Name)
		for j, page := range dir.Pages {
			page = strings.TrimSpace(page)
			if strings.HasSuffix(strings.ToLower(page), ".md") {
				page = page[:len(page)-len(".md")]
			}
			dir.Pages[j] = page
		}
	}

	c.Output.HighlightStyle = strings.TrimSpace(c.Output.HighlightStyle)
	if c.Output.HighlightStyle == "" {
		c.Output.HighlightStyle = defaultHighlightStyle
	}
	c.Output.Assets = strings.TrimSpace(c.Output.Assets)
}

func (c *Config) validate() error {
	if c.Book.Title == "" {
		return fmt.Errorf("book.title is required")
	}
	if c.Directories == nil {
		return fmt.Errorf("directories is required")
	}

	folders := make(map[string]struct{}, len(c.Directories))
	for _, dir := range c.Directories {
		if err := validateName(dir.Name); err != nil {
			return fmt.Errorf("folder %q: %w", dir.Name, err)
		}
		if _, reserved := reservedFolders[strings.ToLower(dir.Name)]; reserved {
			return fmt.Errorf("folder %q: name is reserved for the build output", dir.Name)
		}
		if _, dup := folders[dir.Name]; dup {
			return fmt.Errorf("folder %q declared twice", dir.Name)
		}
		folders[dir.Name] = struct{}{}

		pages := make(map[string]struct{}, len(dir.Pages))
		for _, page := range dir.Pages {
			if err := validateName(page); err != nil {
				return fmt.Errorf("folder %q page %q: %w", dir.Name, page, err)
			}
			if _, dup := pages[page]; dup {
				return fmt.Errorf("folder %q lists page %q twice", dir.Name, page)
			}
			pages[page] = struct{}{}
		}
	}

	if c.Output.Assets != "" {
		cleaned := path.Clean(filepath.ToSlash(c.Output.Assets))
		if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
			return fmt.Errorf("output.assets must stay inside the site root")
		}
	}
	return nil
}

// validateName rejects names that cannot be a single path segment.
func validateName(name string) error {
	switch {
	case name == "":
		return errors.New("empty name")
	case name == "." || name == "..":
		return errors.New("relative path segment")
	case strings.ContainsAny(name, `/\`):
		return errors.New("contains a path separator")
	case strings.Contains(name, "\x00"):
		return errors.New("contains null byte")
	}
	return nil
}
