package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrPageRender indicates the base template failed to render.
var ErrPageRender = errors.New("page rendering failed")

// ContentVar is the only variable passed to the base template.
const ContentVar = "content"

// Composer defines the contract for wrapping a fragment in the page template.
type Composer interface {
	Compose(ctx context.Context, content string) (string, error)
}

// PageComposer renders expanded fragments into a base template.
type PageComposer struct {
	renderer TemplateRenderer
	base     string
}

// NewPageComposer creates a PageComposer rendering the named base template.
func NewPageComposer(renderer TemplateRenderer, base string) *PageComposer {
	return &PageComposer{renderer: renderer, base: base}
}

// Compose renders the base template with content bound to {{.content}}.
// The content is already HTML and is inserted without escaping.
func (p *PageComposer) Compose(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := map[string]any{
		ContentVar: template.HTML(content), // #nosec G203 -- content is the site's own expanded HTML
	}
	page, err := p.renderer.Render(p.base, data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPageRender, p.base, err)
	}
	return page, nil
}
