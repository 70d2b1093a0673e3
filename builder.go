package md2site

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface checks.
var (
	_ pipeline.TemplateRenderer = (*assets.Templates)(nil)
	_ pipeline.HTMLConverter    = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.Expander         = (*pipeline.ComponentExpander)(nil)
	_ pipeline.Composer         = (*pipeline.PageComposer)(nil)
)

// Builder runs the site build: pages through the pipeline, then static assets.
// A Builder is not safe for concurrent use; Build is meant to run once per
// process but may be repeated.
type Builder struct {
	sourceFS       fs.FS
	contentDir     string
	templateDir    string
	staticDir      string
	outputDir      string
	highlightStyle string
	logger         *slog.Logger

	templates *assets.Templates
	converter pipeline.HTMLConverter
	expander  pipeline.Expander
	composer  pipeline.Composer
}

// BuildResult describes a completed build.
type BuildResult struct {
	Pages    []string // written page paths, in build order
	Assets   []string // copied asset paths, in build order
	Duration time.Duration
}

// NewBuilder loads the template set and prepares the pipeline stages.
// Template errors are reported here, before the output directory is touched:
// ErrTemplateLoad if a template cannot be read or parsed, ErrMissingTemplate
// if the base template or a component template does not exist.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		contentDir:  config.DefaultContentDir,
		templateDir: config.DefaultTemplateDir,
		staticDir:   config.DefaultStaticDir,
		outputDir:   config.DefaultOutputDir,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.sourceFS == nil {
		b.sourceFS = os.DirFS(".")
	}

	tmpl, err := assets.LoadTemplates(b.sourceFS, b.templateDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateLoad, err)
	}
	if err := checkTemplates(tmpl); err != nil {
		return nil, err
	}
	b.templates = tmpl

	var convOpts []pipeline.GoldmarkOption
	if b.highlightStyle != "" {
		convOpts = append(convOpts, pipeline.WithHighlighting(b.highlightStyle))
	}
	b.converter = pipeline.NewGoldmarkConverter(convOpts...)
	b.expander = pipeline.NewComponentExpander(tmpl, Components)
	b.composer = pipeline.NewPageComposer(tmpl, BaseTemplate)

	return b, nil
}

// checkTemplates verifies every template the pipeline can reference was loaded.
func checkTemplates(tmpl *assets.Templates) error {
	required := []string{BaseTemplate}
	for _, c := range Components {
		required = append(required, c.Template)
	}
	for _, name := range required {
		if !tmpl.Has(name) {
			return fmt.Errorf("%w: %s", ErrMissingTemplate, name)
		}
	}
	return nil
}

// Templates returns the names of the loaded templates.
func (b *Builder) Templates() []string {
	return b.templates.Names()
}

// OutputDir returns the directory the build writes to.
func (b *Builder) OutputDir() string {
	return b.outputDir
}

// Build recreates the output directory, renders every page and copies every
// static asset. The first failure aborts the build; files written before it
// are left in place.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fileutil.ResetDir(b.outputDir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	b.logger.Debug("output directory reset", "dir", b.outputDir)

	result := &BuildResult{}
	for _, page := range Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := b.buildPage(ctx, page)
		if err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, out)
	}

	for _, name := range StaticAssets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := b.copyAsset(name)
		if err != nil {
			return nil, err
		}
		result.Assets = append(result.Assets, out)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// buildPage runs one content file through the pipeline and writes the page.
func (b *Builder) buildPage(ctx context.Context, page Page) (string, error) {
	src := path.Join(b.contentDir, page.Source)

	data, err := fs.ReadFile(b.sourceFS, src)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadInput, src, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: not valid UTF-8", ErrReadInput, src)
	}

	content := string(data)
	if IsMarkdown(page.Source) {
		content, err = b.converter.ToHTML(ctx, content)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrRender, src, err)
		}
	}

	content, err = b.expander.Expand(ctx, content)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRender, src, err)
	}

	content, err = b.composer.Compose(ctx, content)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRender, src, err)
	}

	dst := filepath.Join(b.outputDir, filepath.FromSlash(page.Output))
	if err := fileutil.WriteFile(dst, []byte(content)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutput, err)
	}

	b.logger.Debug("page written", "source", src, "output", dst, "bytes", len(content))
	return dst, nil
}

// copyAsset copies one static file into the output root unchanged.
func (b *Builder) copyAsset(name string) (string, error) {
	src := path.Join(b.staticDir, name)
	if err := assets.ValidateAssetName(name); err != nil {
		return "", &AssetError{Name: name, Path: src, Err: err}
	}

	dst := filepath.Join(b.outputDir, name)
	n, err := fileutil.CopyFromFS(b.sourceFS, src, dst)
	if err != nil {
		return "", &AssetError{Name: name, Path: src, Err: err}
	}

	b.logger.Debug("asset copied", "source", src, "output", dst, "bytes", n)
	return dst, nil
}
