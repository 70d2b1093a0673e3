package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Source.Content != "src/content" {
		t.Errorf("Source.Content = %q, want %q", cfg.Source.Content, "src/content")
	}
	if cfg.Source.Templates != "src/templates" {
		t.Errorf("Source.Templates = %q, want %q", cfg.Source.Templates, "src/templates")
	}
	if cfg.Source.Static != "src/static" {
		t.Errorf("Source.Static = %q, want %q", cfg.Source.Static, "src/static")
	}
	if cfg.Output.Dir != "dist" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "dist")
	}
	if cfg.Markdown.Highlight {
		t.Error("Markdown.Highlight = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "1234567890", 10); err != nil {
		t.Errorf("value at limit: unexpected error %v", err)
	}
	err := validateFieldLength("output.dir", "12345678901", 10)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("error = %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "output.dir") {
		t.Errorf("error %q should name the field", err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Path and style validation
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{
			name:   "custom layout",
			modify: func(c *Config) { c.Source.Content = "pages"; c.Output.Dir = "public" },
		},
		{
			name:   "nested output dir",
			modify: func(c *Config) { c.Output.Dir = "build/site" },
		},
		{
			name:   "highlight with known style",
			modify: func(c *Config) { c.Markdown.Highlight = true; c.Markdown.HighlightStyle = "monokai" },
		},
		{
			name:   "unknown style ignored when highlight disabled",
			modify: func(c *Config) { c.Markdown.HighlightStyle = "no-such-style" },
		},
		{
			name:    "unknown style",
			modify:  func(c *Config) { c.Markdown.Highlight = true; c.Markdown.HighlightStyle = "no-such-style" },
			wantErr: ErrUnknownStyle,
		},
		{
			name:    "source with parent traversal",
			modify:  func(c *Config) { c.Source.Content = "../content" },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "source with leading dot slash",
			modify:  func(c *Config) { c.Source.Static = "./static" },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "empty output dir",
			modify:  func(c *Config) { c.Output.Dir = "" },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "output is site root",
			modify:  func(c *Config) { c.Output.Dir = "./" },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "output escapes site root",
			modify:  func(c *Config) { c.Output.Dir = "../dist" },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "absolute output",
			modify:  func(c *Config) { c.Output.Dir = filepath.Join(string(filepath.Separator), "tmp", "dist") },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "output contains sources",
			modify:  func(c *Config) { c.Output.Dir = "src" },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "output inside static dir",
			modify:  func(c *Config) { c.Output.Dir = "src/static/out" },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "path too long",
			modify:  func(c *Config) { c.Output.Dir = strings.Repeat("d", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{"dist", "src/content", false},
		{"src", "src/content", true},
		{"src/content/out", "src/content", true},
		{"src/contents", "src/content", false},
		{"dist", "dist", true},
	}
	for _, tt := range tests {
		if got := overlaps(tt.a, tt.b); got != tt.want {
			t.Errorf("overlaps(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		p := writeConfig(t, t.TempDir(), "site.yaml", "output:\n  dir: public\nmarkdown:\n  highlight: true\n")
		cfg, err := LoadConfig(p)
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error: %v", err)
		}
		if cfg.Output.Dir != "public" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "public")
		}
		if cfg.Source.Content != DefaultContentDir {
			t.Errorf("Source.Content = %q, want default %q", cfg.Source.Content, DefaultContentDir)
		}
		if !cfg.Markdown.Highlight || cfg.Markdown.HighlightStyle != DefaultHighlightStyle {
			t.Errorf("Markdown = %+v, want highlight with default style", cfg.Markdown)
		}
	})

	t.Run("empty file is defaults", func(t *testing.T) {
		t.Parallel()

		p := writeConfig(t, t.TempDir(), "site.yaml", "\n")
		cfg, err := LoadConfig(p)
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error: %v", err)
		}
		if *cfg != *DefaultConfig() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		p := writeConfig(t, t.TempDir(), "site.yaml", "outptu:\n  dir: public\n")
		_, err := LoadConfig(p)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Parallel()

		p := writeConfig(t, t.TempDir(), "site.yaml", "output:\n  dir: src\n")
		_, err := LoadConfig(p)
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("error = %v, want ErrInvalidPath", err)
		}
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("no file returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, used, err := Resolve(t.TempDir(), "")
		if err != nil {
			t.Fatalf("Resolve() unexpected error: %v", err)
		}
		if used != "" {
			t.Errorf("used = %q, want empty", used)
		}
		if *cfg != *DefaultConfig() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("finds md2site.yml in root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		want := writeConfig(t, root, "md2site.yml", "output:\n  dir: www\n")
		cfg, used, err := Resolve(root, "")
		if err != nil {
			t.Fatalf("Resolve() unexpected error: %v", err)
		}
		if used != want {
			t.Errorf("used = %q, want %q", used, want)
		}
		if cfg.Output.Dir != "www" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "www")
		}
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		t.Parallel()

		_, _, err := Resolve(t.TempDir(), filepath.Join(t.TempDir(), "custom.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}
