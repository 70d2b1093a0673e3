// Package pipeline implements the per-page transformation stages of a site build.
//
// Each page flows through up to three stages:
//   - Markdown to HTML conversion via Goldmark (Markdown sources only)
//   - Component expansion: custom tags such as <info-card> are replaced by
//     the output of a named template, with the tag's attributes as variables
//   - Page composition: the expanded fragment is rendered into the base
//     template as {{.content}}
//
// Component expansion is split in two: ScanComponents finds recognized tags
// in a single forward pass of the HTML tokenizer and yields their byte
// ranges, and splice replaces those ranges with rendered output. Bytes
// outside the ranges are copied unchanged.
//
// Reading sources, writing pages and copying static assets are handled by
// the root md2site package.
package pipeline
