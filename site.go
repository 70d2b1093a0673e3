package md2site

import (
	"path"
	"strings"

	"github.com/alnah/go-md2site/internal/pipeline"
)

// Page maps a content file to the output file it produces.
type Page struct {
	Source string // relative to the content directory
	Output string // relative to the output directory
}

// Pages is the fixed list of pages a build produces, in build order.
var Pages = []Page{
	{Source: "index.html", Output: "index.html"},
	{Source: "bike-tribals.md", Output: "bike-tribals.html"},
}

// StaticAssets are copied unchanged from the static directory, in order.
var StaticAssets = []string{
	"global.css",
	"components.css",
	"bike-tribal.svg",
}

// Components maps the custom tags recognized in pages to their templates.
var Components = []pipeline.Component{
	{Tag: "info-card", Template: "components/info_card.html"},
	{Tag: "project-teaser", Template: "components/project-teaser.html"},
}

// BaseTemplate wraps every page.
const BaseTemplate = "base.html"

var markdownExtensions = []string{".md", ".markdown"}

// IsMarkdown reports whether a source file is converted from Markdown.
func IsMarkdown(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, m := range markdownExtensions {
		if ext == m {
			return true
		}
	}
	return false
}
