package embedlogo

import "strings"

// SrcAttribute returns the exact attribute text matched for value: src="value".
func SrcAttribute(value string) string {
	return `src="` + value + `"`
}

// Substitute replaces every src="srcValue" in doc with src="uri" and returns
// the new document and the number of replacements. Matching is literal and
// case-sensitive; single-quoted or unquoted attributes and any other mention
// of srcValue are not touched.
func Substitute(doc, srcValue, uri string) (string, int) {
	pattern := SrcAttribute(srcValue)
	n := strings.Count(doc, pattern)
	if n == 0 {
		return doc, 0
	}
	return strings.ReplaceAll(doc, pattern, SrcAttribute(uri)), n
}
