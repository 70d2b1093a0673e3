// Package assets loads the site's HTML templates and validates static asset names.
//
// # Template Set
//
// LoadTemplates walks a template directory of an fs.FS and parses every
// *.html file into a single html/template set. Each template is named by its
// slash path relative to the template directory:
//
//	src/templates/
//	├── base.html                   -> "base.html"
//	└── components/
//	    ├── info_card.html          -> "components/info_card.html"
//	    └── project-teaser.html     -> "components/project-teaser.html"
//
// The set is parsed with missingkey=error, so a template referencing a
// variable the caller did not supply fails to render instead of printing
// "<no value>".
//
// This applies inside conditionals too: {{if .note}} fails when the tag has
// no note attribute. A component template must either be given every
// attribute it names, or read optional ones through index, which yields ""
// for an absent key:
//
//	{{with index . "note"}}<small>{{.}}</small>{{end}}
//
// The returned Templates value is read-only and safe to share.
//
// # Static Assets
//
// ValidateAssetName guards static asset names before they are joined to the
// static and output directories.
package assets
