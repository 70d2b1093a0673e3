package md2site

import (
	"io/fs"
	"log/slog"

	"github.com/alnah/go-md2site/internal/config"
)

// Option configures a Builder.
type Option func(*Builder)

// WithSourceFS sets the filesystem the content, template and static
// directories are read from. Defaults to os.DirFS(".").
func WithSourceFS(fsys fs.FS) Option {
	return func(b *Builder) {
		b.sourceFS = fsys
	}
}

// WithContentDir sets the content directory within the source filesystem.
func WithContentDir(dir string) Option {
	return func(b *Builder) {
		b.contentDir = dir
	}
}

// WithTemplateDir sets the template directory within the source filesystem.
func WithTemplateDir(dir string) Option {
	return func(b *Builder) {
		b.templateDir = dir
	}
}

// WithStaticDir sets the static asset directory within the source filesystem.
func WithStaticDir(dir string) Option {
	return func(b *Builder) {
		b.staticDir = dir
	}
}

// WithOutputDir sets the OS path of the output directory.
// The directory is deleted and recreated on every build.
func WithOutputDir(dir string) Option {
	return func(b *Builder) {
		b.outputDir = dir
	}
}

// WithHighlighting enables chroma highlighting of fenced code blocks in
// Markdown pages. An empty style disables it.
func WithHighlighting(style string) Option {
	return func(b *Builder) {
		b.highlightStyle = style
	}
}

// WithLogger sets the logger for build progress. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithConfig applies the directories and Markdown settings of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(b *Builder) {
		if cfg == nil {
			return
		}
		b.contentDir = cfg.Source.Content
		b.templateDir = cfg.Source.Templates
		b.staticDir = cfg.Source.Static
		b.outputDir = cfg.Output.Dir
		b.highlightStyle = ""
		if cfg.Markdown.Highlight {
			b.highlightStyle = cfg.Markdown.HighlightStyle
		}
	}
}
