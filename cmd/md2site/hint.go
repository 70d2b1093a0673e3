package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
)

// hintFor returns an actionable hint for err, or "" if none applies.
// cfg may be nil when the config could not be loaded.
func hintFor(err error, cfg *config.Config, root string) string {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	switch {
	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, config.ErrInvalidPath),
		errors.Is(err, config.ErrUnknownStyle):
		return hints.ForConfig(config.FileNames)
	case errors.Is(err, md2site.ErrTemplateLoad):
		return hints.ForTemplateLoad(cfg.Source.Templates)
	case errors.Is(err, md2site.ErrMissingTemplate):
		return hints.ForMissingTemplate(availableTemplates(cfg, root))
	case errors.Is(err, md2site.ErrReadInput):
		return hints.ForReadInput(cfg.Source.Content)
	case errors.Is(err, md2site.ErrRender):
		return hints.ForRender()
	case errors.Is(err, md2site.ErrCopyAsset):
		var assetErr *md2site.AssetError
		if errors.As(err, &assetErr) {
			return hints.ForStaticAsset(cfg.Source.Static, assetErr.Name)
		}
		return ""
	case errors.Is(err, md2site.ErrOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// availableTemplates lists the templates that did load, or nil if the
// template directory cannot be read at all.
func availableTemplates(cfg *config.Config, root string) []string {
	tmpl, err := assets.LoadTemplates(os.DirFS(root), cfg.Source.Templates)
	if err != nil {
		return nil
	}
	return tmpl.Names()
}
