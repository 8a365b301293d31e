package embedlogo

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	dataURIScheme   = "data:"
	base64Parameter = ";base64"
)

// EncodeDataURI returns data as a data URI: "data:<mimeType>;base64,<payload>".
// The payload uses standard base64 with padding.
func EncodeDataURI(data []byte, mimeType string) string {
	prefix := dataURIScheme + mimeType + base64Parameter + ","

	var b strings.Builder
	b.Grow(len(prefix) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(prefix)
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// DecodeDataURI splits a base64 data URI into its media type and payload.
// Parameters other than ";base64" stay part of the returned media type.
func DecodeDataURI(uri string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, dataURIScheme)
	if !ok {
		return "", nil, ErrNotDataURI
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing comma", ErrNotDataURI)
	}

	mimeType, ok = strings.CutSuffix(header, base64Parameter)
	if !ok {
		return "", nil, ErrNotBase64DataURI
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding payload: %w", err)
	}

	return mimeType, data, nil
}
