// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrIsDirectory = errors.New("path is a directory")
)

// defaultFileMode is used when the target file does not exist yet.
const defaultFileMode = 0o644

// WriteFileAtomic replaces path with data without ever leaving a partially
// written file behind. Symlinks are resolved first so the link target is
// updated and the link itself survives. The existing file mode is preserved.
// On any failure the target is left untouched.
func WriteFileAtomic(path string, data []byte) error {
	if path == "" {
		return ErrEmptyPath
	}

	target, err := resolveTarget(path)
	if err != nil {
		return err
	}

	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if err := replaceFile(target, data); err != nil {
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	return nil
}

// resolveTarget returns the file that a write to path should replace.
// A path that does not exist yet is returned as is.
func resolveTarget(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if err == nil {
		return target, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		if _, lerr := os.Lstat(path); errors.Is(lerr, fs.ErrNotExist) {
			return path, nil
		}
	}
	return "", fmt.Errorf("resolving %s: %w", path, err)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "embedlogo" -> false (name)
//   - "./embedlogo.yaml" -> true (relative path)
//   - "/etc/embedlogo.yaml" -> true (absolute)
//   - "C:\cfg\embedlogo.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
