// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-embedlogo/internal/fileutil"
)

// LookupFile reports whether a regular file exists at path.
// Replaced in tests.
var LookupFile = fileutil.FileExists

// ForDocumentNotFound returns hints when the HTML document cannot be read.
// If an index.htm sits next to the expected path, it is suggested.
func ForDocumentNotFound(path string) string {
	var hints []string

	alt := strings.TrimSuffix(path, filepath.Ext(path)) + ".htm"
	if alt != path && LookupFile(alt) {
		hints = append(hints, "found "+alt+"; use --document "+alt)
	} else {
		hints = append(hints, "run from the directory containing "+filepath.Base(path)+" or use --document")
	}

	return formatHints(hints)
}

// ForDocumentWrite returns hints when the document cannot be replaced.
// The replacement goes through a temp file, so the directory must be writable too.
func ForDocumentWrite(path string) string {
	dir := filepath.Dir(path)
	return format("check that " + dir + " is writable (the document is replaced via a temp file)")
}

// ForImageDelete returns hints when the inlined image cannot be removed.
func ForImageDelete(path string) string {
	return formatHints([]string{
		"the document was updated; remove " + path + " manually",
		"use --keep-image to skip deletion",
	})
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "go-embedlogo/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoReplacements returns a hint when the document has no matching src attribute.
func ForNoReplacements(srcValue string) string {
	return format(`no src="` + srcValue + `" found; use --src to match a different value`)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
