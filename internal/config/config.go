// Package config loads the optional YAML site configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidPath    = errors.New("invalid path")
	ErrUnknownStyle   = errors.New("unknown highlight style")
)

// Default locations, relative to the site root.
const (
	DefaultContentDir     = "src/content"
	DefaultTemplateDir    = "src/templates"
	DefaultStaticDir      = "src/static"
	DefaultOutputDir      = "dist"
	DefaultHighlightStyle = "github"
)

// FileNames lists the config file names looked up in the site root, in order.
var FileNames = []string{"md2site.yaml", "md2site.yml"}

// Field length limits.
const (
	MaxPathLength  = 255
	MaxStyleLength = 50
)

// Config holds the site build configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Output   OutputConfig   `yaml:"output"`
	Markdown MarkdownConfig `yaml:"markdown"`
}

// SourceConfig defines where sources are read from.
// Paths are slash-separated and relative to the site root.
type SourceConfig struct {
	Content   string `yaml:"content"`
	Templates string `yaml:"templates"`
	Static    string `yaml:"static"`
}

// OutputConfig defines the output root. It is deleted on every build.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// MarkdownConfig defines Markdown conversion options.
type MarkdownConfig struct {
	Highlight      bool   `yaml:"highlight"`      // Syntax-highlight fenced code blocks
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style name (default: "github")
}

// DefaultConfig returns the built-in site layout with highlighting disabled.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Content:   DefaultContentDir,
			Templates: DefaultTemplateDir,
			Static:    DefaultStaticDir,
		},
		Output:   OutputConfig{Dir: DefaultOutputDir},
		Markdown: MarkdownConfig{HighlightStyle: DefaultHighlightStyle},
	}
}

// applyDefaults fills fields left empty by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Source.Content == "" {
		c.Source.Content = def.Source.Content
	}
	if c.Source.Templates == "" {
		c.Source.Templates = def.Source.Templates
	}
	if c.Source.Static == "" {
		c.Source.Static = def.Source.Static
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Markdown.HighlightStyle == "" {
		c.Markdown.HighlightStyle = def.Markdown.HighlightStyle
	}
}

// Validate checks paths and field lengths. The output directory must not
// overlap any source directory because every build deletes it.
func (c *Config) Validate() error {
	sources := []struct{ field, path string }{
		{"source.content", c.Source.Content},
		{"source.templates", c.Source.Templates},
		{"source.static", c.Source.Static},
	}
	for _, src := range sources {
		if err := validateFieldLength(src.field, src.path, MaxPathLength); err != nil {
			return err
		}
		if !fs.ValidPath(src.path) {
			return fmt.Errorf("%w: %s: %q must be a relative slash path without . or .. elements", ErrInvalidPath, src.field, src.path)
		}
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	out, err := cleanOutputDir(c.Output.Dir)
	if err != nil {
		return err
	}
	for _, src := range sources {
		if overlaps(out, src.path) {
			return fmt.Errorf("%w: output.dir %q overlaps %s %q", ErrInvalidPath, c.Output.Dir, src.field, src.path)
		}
	}

	if err := validateFieldLength("markdown.highlightStyle", c.Markdown.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}
	if c.Markdown.Highlight {
		if _, ok := styles.Registry[c.Markdown.HighlightStyle]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, c.Markdown.HighlightStyle)
		}
	}

	return nil
}

// cleanOutputDir normalizes the output dir to a slash path and rejects
// locations that would make ResetDir destroy the site root or escape it.
func cleanOutputDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("%w: output.dir is empty", ErrInvalidPath)
	}
	if filepath.IsAbs(dir) {
		return "", fmt.Errorf("%w: output.dir %q must be relative to the site root", ErrInvalidPath, dir)
	}
	clean := path.Clean(filepath.ToSlash(dir))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: output.dir %q must be inside the site root", ErrInvalidPath, dir)
	}
	return clean, nil
}

// overlaps reports whether one slash path contains the other.
func overlaps(a, b string) bool {
	return a == b || strings.HasPrefix(a, b+"/") || strings.HasPrefix(b, a+"/")
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig reads, defaults and validates the config file at path.
// Returns ErrConfigNotFound if the file does not exist (no silent fallback).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
		}
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve returns the config for a site root. An explicit path must exist.
// Without one, the first of FileNames found in root is loaded; if none
// exists, DefaultConfig is returned. The second result is the file used,
// empty for defaults.
func Resolve(root, explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := LoadConfig(explicit)
		return cfg, explicit, err
	}

	for _, name := range FileNames {
		candidate := filepath.Join(root, name)
		if fileutil.FileExists(candidate) {
			cfg, err := LoadConfig(candidate)
			return cfg, candidate, err
		}
	}
	return DefaultConfig(), "", nil
}
