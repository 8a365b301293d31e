package embedlogo

import "errors"

// Sentinel errors for inliner operations.
var (
	ErrReadImage     = errors.New("failed to read image")
	ErrReadDocument  = errors.New("failed to read document")
	ErrWriteDocument = errors.New("failed to write document")
	ErrDeleteImage   = errors.New("failed to delete image")

	// Data URI decoding errors.
	ErrNotDataURI       = errors.New("not a data URI")
	ErrNotBase64DataURI = errors.New("data URI is not base64 encoded")
)
