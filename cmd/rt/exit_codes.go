package main

import (
	"errors"
	"os"

	redtape "github.com/alnah/go-redtape"
	"github.com/alnah/go-redtape/internal/config"
	"github.com/alnah/go-redtape/internal/ui"
)

// Exit codes for the rt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// Batch errors aggregate several causes; the first matching class wins.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, redtape.ErrExportTarget) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrDuplicateOutput) ||
		errors.Is(err, ui.ErrInvalidColorMode) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, redtape.ErrEmptyMarkdown) ||
		errors.Is(err, redtape.ErrMarkdownTooLarge) ||
		errors.Is(err, redtape.ErrInvalidFencedMode) ||
		errors.Is(err, redtape.ErrInvalidRenderer) ||
		errors.Is(err, redtape.ErrInvalidChromaStyle) ||
		errors.Is(err, redtape.ErrInvalidTemplate) ||
		errors.Is(err, redtape.ErrStyleNotFound) ||
		errors.Is(err, redtape.ErrTemplateNotFound) ||
		errors.Is(err, redtape.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
