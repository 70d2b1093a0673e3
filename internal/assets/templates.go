package assets

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// TemplateExt is the extension of files picked up by LoadTemplates.
const TemplateExt = ".html"

// Templates is an immutable set of named HTML templates.
type Templates struct {
	root  *template.Template
	names []string
}

// LoadTemplates parses every *.html file below dir in fsys into one set.
// Template names are slash paths relative to dir.
// Returns ErrAssetRead if the tree cannot be walked or a file cannot be read,
// ErrTemplateParse on the first file with invalid syntax.
func LoadTemplates(fsys fs.FS, dir string) (*Templates, error) {
	root := template.New("").Option("missingkey=error")
	var names []string

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		if d.IsDir() || path.Ext(p) != TemplateExt {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrAssetRead, p, err)
		}

		name := templateName(dir, p)
		if _, err := root.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrTemplateParse, p, err)
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(names)
	return &Templates{root: root, names: names}, nil
}

// templateName strips the template directory prefix from p.
func templateName(dir, p string) string {
	if dir == "." || dir == "" {
		return p
	}
	return strings.TrimPrefix(p, strings.TrimSuffix(dir, "/")+"/")
}

// Has reports whether a template with the given name was loaded.
func (t *Templates) Has(name string) bool {
	return slices.Contains(t.names, name)
}

// Names returns the loaded template names in sorted order.
func (t *Templates) Names() []string {
	return slices.Clone(t.names)
}

// Render executes the named template with data and returns the output.
// Returns ErrTemplateNotFound if no such template was loaded,
// ErrTemplateExecute if execution fails (e.g. a missing variable).
func (t *Templates) Render(name string, data any) (string, error) {
	if !t.Has(name) {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := t.root.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateExecute, err)
	}
	return buf.String(), nil
}
