// Package fileutil provides file and path utility functions for the build driver.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Permissions for generated files and directories.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// ErrUnsafeDir indicates a directory that must never be removed.
var ErrUnsafeDir = errors.New("refusing to reset directory")

// ResetDir removes dir and everything below it, then recreates it empty.
// A missing dir is not an error. The filesystem root, the empty path and the
// current directory are refused.
func ResetDir(dir string) error {
	clean := filepath.Clean(dir)
	if dir == "" || clean == "." || clean == string(filepath.Separator) || clean == filepath.VolumeName(clean)+string(filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrUnsafeDir, dir)
	}

	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("clearing %s: %w", clean, err)
	}
	if err := os.MkdirAll(clean, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", clean, err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, FilePerm); err != nil { // #nosec G306 -- site output is world-readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CopyFromFS copies the file src of fsys to the OS path dst byte for byte.
// Returns the number of bytes copied.
func CopyFromFS(fsys fs.FS, src, dst string) (n int64, err error) {
	in, err := fsys.Open(src)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", src, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("copying %s: is a directory", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), DirPerm); err != nil {
		return 0, fmt.Errorf("creating directory for %s: %w", dst, err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm) // #nosec G302 G304 -- dst is under the output root
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}

	n, err = io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return n, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
