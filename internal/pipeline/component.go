package pipeline

import (
	"iter"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Component maps a custom tag name to the template that replaces it.
type Component struct {
	Tag      string // lowercase element name, e.g. "info-card"
	Template string // template name, e.g. "components/info_card.html"
}

// ComponentTag is one occurrence of a recognized tag in a scanned document.
// Start and End delimit the whole element: from the '<' of the start tag to
// just past its matching end tag, or past the start tag if self-closing.
type ComponentTag struct {
	Name  string
	Attrs []html.Attribute
	Start int
	End   int
}

// Context returns the attributes as template variables.
// If an attribute name repeats, the last value wins.
func (t ComponentTag) Context() map[string]string {
	ctx := make(map[string]string, len(t.Attrs))
	for _, a := range t.Attrs {
		ctx[a.Key] = a.Val
	}
	return ctx
}

// ScanComponents returns the occurrences of the named tags in src, in
// document order. Names are matched case-insensitively. The inner content of
// an occurrence is skipped, so nested occurrences are never yielded. An
// element left open extends to the end of src.
func ScanComponents(src string, names ...string) iter.Seq[ComponentTag] {
	return func(yield func(ComponentTag) bool) {
		if len(names) == 0 {
			return
		}
		wanted := make([]string, len(names))
		for i, n := range names {
			wanted[i] = strings.ToLower(n)
		}

		z := html.NewTokenizer(strings.NewReader(src))
		offset := 0
		next := func() html.TokenType {
			tt := z.Next()
			offset += len(z.Raw())
			return tt
		}

		for {
			start := offset
			tt := next()
			if tt == html.ErrorToken {
				return
			}
			if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
				continue
			}

			name, hasAttr := z.TagName()
			tag := string(name)
			if !slices.Contains(wanted, tag) {
				continue
			}

			occ := ComponentTag{Name: tag, Start: start}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				occ.Attrs = append(occ.Attrs, html.Attribute{Key: string(key), Val: string(val)})
			}

			if tt == html.StartTagToken && !skipElement(z, next, tag) {
				offset = len(src)
			}
			occ.End = offset

			if !yield(occ) {
				return
			}
		}
	}
}

// skipElement advances past the end tag matching an already consumed start
// tag. Returns false if the input ends first.
func skipElement(z *html.Tokenizer, next func() html.TokenType, tag string) bool {
	depth := 1
	for {
		switch next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == tag {
				depth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == tag {
				depth--
				if depth == 0 {
					return true
				}
			}
		}
	}
}
