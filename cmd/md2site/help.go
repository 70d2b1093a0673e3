package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site in the current directory into dist/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sources:")
	fmt.Fprintln(w, "  src/content/    index.html, bike-tribals.md")
	fmt.Fprintln(w, "  src/templates/  base.html, components/info_card.html, components/project-teaser.html")
	fmt.Fprintln(w, "  src/static/     global.css, components.css, bike-tribal.svg")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>   Config file (default: md2site.yaml if present)")
	fmt.Fprintln(w, "  -v, --verbose         Log every written file")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "      --version         Show version and exit")
	fmt.Fprintln(w, "  -h, --help            Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The output directory is deleted and recreated on every build.")
}
