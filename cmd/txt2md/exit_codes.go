package main

import (
	"errors"
	"os"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/config"
)

// Exit codes for txt2md.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid config or environment
	ExitIO      = 3 // File not found, permission denied, unreadable input
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, txt2md.ErrInputNotFound) ||
		errors.Is(err, txt2md.ErrReadInput) ||
		errors.Is(err, txt2md.ErrInvalidEncoding) ||
		errors.Is(err, txt2md.ErrWriteOutput) ||
		errors.Is(err, ErrWritePreview) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, txt2md.ErrEmptyPath) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, ErrPromptAborted) {
		return ExitUsage
	}

	return ExitGeneral
}
