package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a static asset name is a plain file name.
// Returns ErrInvalidAssetName if the name is empty, hidden, or contains
// path separators, traversal or NUL bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
