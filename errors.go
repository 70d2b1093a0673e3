package md2site

import (
	"errors"
	"fmt"
)

// Sentinel errors for build operations.
var (
	// Template loading errors, raised by NewBuilder before any output is touched.
	ErrTemplateLoad    = errors.New("template loading failed")
	ErrMissingTemplate = errors.New("required template not found")

	// Per-page errors.
	ErrReadInput = errors.New("reading input failed")
	ErrRender    = errors.New("rendering failed")

	// Output errors.
	ErrOutput    = errors.New("writing output failed")
	ErrCopyAsset = errors.New("copying static asset failed")
)

// AssetError reports a static asset that could not be copied.
// It matches ErrCopyAsset and the underlying cause with errors.Is.
type AssetError struct {
	Name string // asset name, e.g. "global.css"
	Path string // source path within the source filesystem
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrCopyAsset, e.Path, e.Err)
}

func (e *AssetError) Unwrap() []error {
	return []error{ErrCopyAsset, e.Err}
}
