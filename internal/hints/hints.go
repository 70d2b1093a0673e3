// Package hints provides actionable error hints for common build failures.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path"
	"strings"
)

// ForTemplateLoad returns a hint for template parse or discovery errors.
func ForTemplateLoad(templateDir string) string {
	return format("every *.html file under " + templateDir + " is parsed as a Go html/template")
}

// ForMissingTemplate returns a hint listing the templates that were found.
func ForMissingTemplate(available []string) string {
	if len(available) == 0 {
		return format("no templates were found; check the template directory")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForRender returns a hint for template execution errors.
func ForRender() string {
	return formatHints([]string{
		"component tags need an attribute for every {{.name}} their template uses",
		"the base template may only use {{.content}}",
	})
}

// ForReadInput returns a hint for unreadable content files.
func ForReadInput(contentDir string) string {
	return format("content files are read from " + contentDir + " and must be UTF-8")
}

// ForStaticAsset returns a hint for a static asset that could not be copied.
func ForStaticAsset(staticDir, name string) string {
	return format("expected " + path.Join(staticDir, name))
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check the output directory's parent exists and is writable")
}

// ForConfig returns a hint for config file errors.
func ForConfig(fileNames []string) string {
	return format("use --config /path/to/file.yaml or create " + strings.Join(fileNames, " or ") + " in the site root")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
