package pipeline

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Sentinel errors for component expansion.
var (
	ErrComponentRender   = errors.New("component rendering failed")
	ErrInvalidOccurrence = errors.New("invalid component occurrence")
)

// TemplateRenderer renders a named template with data.
type TemplateRenderer interface {
	Render(name string, data any) (string, error)
}

// Expander defines the contract for component expansion.
type Expander interface {
	Expand(ctx context.Context, htmlContent string) (string, error)
}

// ComponentExpander replaces recognized component tags with rendered templates.
type ComponentExpander struct {
	renderer  TemplateRenderer
	templates map[string]string // tag -> template
	tags      []string
}

// NewComponentExpander creates a ComponentExpander for a fixed component table.
func NewComponentExpander(renderer TemplateRenderer, components []Component) *ComponentExpander {
	e := &ComponentExpander{
		renderer:  renderer,
		templates: make(map[string]string, len(components)),
	}
	for _, c := range components {
		tag := strings.ToLower(c.Tag)
		if _, dup := e.templates[tag]; !dup {
			e.tags = append(e.tags, tag)
		}
		e.templates[tag] = c.Template
	}
	return e
}

// Expand replaces every component tag in htmlContent with its rendered template.
// The first render failure aborts the expansion; no partial output is returned.
func (e *ComponentExpander) Expand(ctx context.Context, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return splice(htmlContent, ScanComponents(htmlContent, e.tags...), e.render)
}

func (e *ComponentExpander) render(tag ComponentTag) (string, error) {
	name := e.templates[tag.Name]
	out, err := e.renderer.Render(name, tag.Context())
	if err != nil {
		return "", fmt.Errorf("%w: <%s> at byte %d via %s: %v", ErrComponentRender, tag.Name, tag.Start, name, err)
	}
	return out, nil
}

// splice copies src, replacing each occurrence's byte range with the output
// of render. Occurrences must be in document order and must not overlap.
func splice(src string, tags iter.Seq[ComponentTag], render func(ComponentTag) (string, error)) (string, error) {
	var b strings.Builder
	b.Grow(len(src))

	prev := 0
	for tag := range tags {
		if tag.Start < prev || tag.End < tag.Start || tag.End > len(src) {
			return "", fmt.Errorf("%w: <%s> spans [%d,%d) after byte %d of %d",
				ErrInvalidOccurrence, tag.Name, tag.Start, tag.End, prev, len(src))
		}

		out, err := render(tag)
		if err != nil {
			return "", err
		}
		b.WriteString(src[prev:tag.Start])
		b.WriteString(out)
		prev = tag.End
	}
	b.WriteString(src[prev:])
	return b.String(), nil
}
