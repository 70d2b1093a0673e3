package main

import (
	"fmt"
	"os"
	"strings"
	"testing"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
)

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", config.ErrConfigParse, "md2site.yaml"},
		{"template load", md2site.ErrTemplateLoad, "src/templates"},
		{"missing template with empty dir", md2site.ErrMissingTemplate, "no templates were found"},
		{"read input", md2site.ErrReadInput, "src/content"},
		{"render", md2site.ErrRender, "{{.content}}"},
		{"copy asset", fmt.Errorf("building: %w", &md2site.AssetError{Name: "global.css", Path: "src/static/global.css", Err: os.ErrNotExist}), "expected src/static/global.css"},
		{"output", md2site.ErrOutput, "writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, nil, t.TempDir())
			if !strings.HasPrefix(got, "\n  hint: ") || !strings.Contains(got, tt.want) {
				t.Errorf("hintFor(%v) = %q, want hint containing %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestHintFor_NoHint(t *testing.T) {
	t.Parallel()

	if got := hintFor(fmt.Errorf("%w: src/static/global.css", md2site.ErrCopyAsset), nil, "."); got != "" {
		t.Errorf("copy error without an AssetError should get no hint, got %q", got)
	}
	if got := hintFor(fmt.Errorf("unrelated"), nil, "."); got != "" {
		t.Errorf("unrelated error should get no hint, got %q", got)
	}
}
