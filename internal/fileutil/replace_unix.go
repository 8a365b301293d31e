//go:build !windows

package fileutil

import (
	"path/filepath"

	"github.com/google/renameio/v2"
)

// replaceFile writes data to a temp file next to path, syncs it and renames
// it over path.
func replaceFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, defaultFileMode,
		renameio.WithExistingPermissions(),
		renameio.WithTempDir(filepath.Dir(path)),
	)
}
