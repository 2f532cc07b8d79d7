package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/hashicorp/go-multierror"

	redtape "github.com/alnah/go-redtape"
	"github.com/alnah/go-redtape/internal/config"
	"github.com/alnah/go-redtape/internal/ui"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"file not found", ErrFileNotFound, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"export target", redtape.ErrExportTarget, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"invalid env", ErrInvalidEnv, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"duplicate output", ErrDuplicateOutput, ExitUsage},
		{"color mode", ui.ErrInvalidColorMode, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"empty markdown", redtape.ErrEmptyMarkdown, ExitUsage},
		{"markdown too large", redtape.ErrMarkdownTooLarge, ExitUsage},
		{"fenced mode", redtape.ErrInvalidFencedMode, ExitUsage},
		{"renderer", redtape.ErrInvalidRenderer, ExitUsage},
		{"chroma style", redtape.ErrInvalidChromaStyle, ExitUsage},
		{"template", redtape.ErrInvalidTemplate, ExitUsage},
		{"style not found", redtape.ErrStyleNotFound, ExitUsage},
		{"template not found", redtape.ErrTemplateNotFound, ExitUsage},
		{"asset path", redtape.ErrInvalidAssetPath, ExitUsage},
		{"wrapped usage", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"cancelled", context.Canceled, ExitGeneral},
		{"html conversion", redtape.ErrHTMLConversion, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor_AggregatedErrors(t *testing.T) {
	t.Parallel()

	var merr *multierror.Error
	merr = multierror.Append(merr, fmt.Errorf("a.md: %w", redtape.ErrEmptyMarkdown))
	merr = multierror.Append(merr, fmt.Errorf("b.md: %w", ErrReadMarkdown))

	if got := exitCodeFor(merr); got != ExitIO {
		t.Errorf("exitCodeFor() = %d, want %d (I/O outranks usage)", got, ExitIO)
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO}
	seen := make(map[int]bool)
	for _, code := range codes {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
		if seen[code] {
			t.Errorf("duplicate exit code %d", code)
		}
		seen[code] = true
	}
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
}
