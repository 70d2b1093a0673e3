package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrTemplateNotFound indicates the requested template is not in the set.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateParse indicates a template file has invalid syntax.
	ErrTemplateParse = errors.New("template parse failed")

	// ErrTemplateExecute indicates a template failed while rendering.
	ErrTemplateExecute = errors.New("template execution failed")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")
)
