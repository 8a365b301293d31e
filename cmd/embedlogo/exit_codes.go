package main

import (
	"errors"
	"os"

	embedlogo "github.com/alnah/go-embedlogo"
	"github.com/alnah/go-embedlogo/internal/config"
)

// Exit codes for the embedlogo CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// A missing image is not an error and exits with ExitSuccess.
const (
	ExitSuccess = 0 // Inlined, or nothing to do
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // Read, write or delete failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, embedlogo.ErrReadImage) ||
		errors.Is(err, embedlogo.ErrReadDocument) ||
		errors.Is(err, embedlogo.ErrWriteDocument) ||
		errors.Is(err, embedlogo.ErrDeleteImage) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
