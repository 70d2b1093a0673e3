// Package md2site builds a small static website from Markdown and HTML
// sources.
//
// # Quick Start
//
//	b, err := md2site.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Pages), "pages written")
//
// With no options the builder reads from the working directory:
//
//	src/content/    index.html, bike-tribals.md
//	src/templates/  base.html, components/*.html
//	src/static/     global.css, components.css, bike-tribal.svg
//
// and writes to dist/, which is deleted and recreated on every build.
//
// # Build Pipeline
//
// Each page in Pages goes through:
//
//  1. Markdown to HTML conversion via Goldmark (Markdown sources only)
//  2. Component expansion: every <info-card> and <project-teaser> element
//     is replaced by its template, rendered with the element's attributes
//  3. Composition into base.html, which receives the page as {{.content}}
//
// Static assets are then copied byte for byte. The first failure aborts
// the build.
//
// # Templates
//
// Templates use Go's html/template syntax. Every *.html file under the
// template directory is loaded once, named by its path relative to that
// directory. A template referring to a variable the page does not supply
// fails the build rather than rendering an empty value.
//
// # Configuration
//
// Use functional options to change the layout:
//
//	b, err := md2site.NewBuilder(
//	    md2site.WithSourceFS(os.DirFS("/path/to/site")),
//	    md2site.WithOutputDir("/path/to/site/dist"),
//	    md2site.WithHighlighting("github"),
//	)
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go and can be checked with errors.Is:
//
//	if errors.Is(err, md2site.ErrMissingTemplate) {
//	    // add the template
//	}
package md2site
