package redtape

import (
	"errors"

	"github.com/alnah/go-redtape/internal/assets"
	"github.com/alnah/go-redtape/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrMarkdownTooLarge = errors.New("markdown content exceeds maximum size")

	// Pipeline errors, shared with the internal stages so errors.Is matches
	// either way.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrTemplateRender = pipeline.ErrTemplateRender

	// Option validation errors.
	ErrInvalidFencedMode  = errors.New("invalid fenced mode")
	ErrInvalidRenderer    = errors.New("invalid renderer")
	ErrInvalidChromaStyle = errors.New("invalid chroma style")
	ErrInvalidTemplate    = errors.New("invalid document template")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrExportTarget     = assets.ErrExportTarget
)
