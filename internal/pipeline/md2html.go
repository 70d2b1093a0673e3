package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkOption configures a GoldmarkConverter.
type GoldmarkOption func(*goldmarkOptions)

type goldmarkOptions struct {
	highlightStyle string
}

// WithHighlighting enables syntax highlighting of fenced code blocks using
// the named chroma style. An empty style leaves highlighting off.
func WithHighlighting(style string) GoldmarkOption {
	return func(o *goldmarkOptions) {
		o.highlightStyle = style
	}
}

// GoldmarkConverter converts CommonMark to an HTML fragment using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a plain CommonMark converter.
// Raw HTML is passed through so component tags written in Markdown reach
// the expander.
func NewGoldmarkConverter(opts ...GoldmarkOption) *GoldmarkConverter {
	var o goldmarkOptions
	for _, opt := range opts {
		opt(&o)
	}

	var extensions []goldmark.Extender
	if o.highlightStyle != "" {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(o.highlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(false), // inline styles, the site ships no chroma stylesheet
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}
