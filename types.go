package redtape

import (
	"fmt"
	"time"

	"github.com/alnah/go-redtape/internal/assets"
	"github.com/alnah/go-redtape/internal/gfm"
	"github.com/alnah/go-redtape/internal/pipeline"
)

// MaxMarkdownSize bounds the input accepted by Convert. The block
// extraction scan rescans the remaining text per block, so unbounded
// input is refused rather than processed slowly.
const MaxMarkdownSize = 10 << 20

// FencedMode selects how fenced code blocks are emitted.
type FencedMode = gfm.FencedMode

// Fenced modes.
const (
	// FencedRich highlights blocks server-side with chroma.
	FencedRich = gfm.FencedRich
	// FencedLight emits prettyprint <pre> blocks styled in the browser.
	FencedLight = gfm.FencedLight
	// FencedNone leaves fences for the Markdown renderer.
	FencedNone = gfm.FencedNone

	DefaultFencedMode = gfm.DefaultFencedMode
)

// Highlighter turns code into highlighted HTML for FencedRich.
type Highlighter = gfm.Highlighter

// DefaultChromaStyle is the chroma style used when none is configured.
const DefaultChromaStyle = gfm.DefaultChromaStyle

// Renderer names accepted by WithRenderer.
const (
	RendererGoldmark   = pipeline.RendererGoldmark
	RendererCommonMark = pipeline.RendererCommonMark
)

// DefaultTemplate is the built-in document template.
const DefaultTemplate = assets.DefaultTemplateName

// DefaultAssetsDir is the directory documents link stylesheets from,
// relative to the document.
const DefaultAssetsDir = assets.DefaultExportDir

// Built-in stylesheet names, usable with WithStyle.
const (
	StyleBase     = assets.StyleBase
	StylePrettify = assets.StylePrettify
	StyleChroma   = assets.StyleChroma
)

// Input contains the data for a single conversion.
type Input struct {
	Markdown string // Required: Markdown source
	// SourceDir is the directory the Markdown was read from. With OutputDir,
	// it lets relative links follow the document to another directory.
	SourceDir string
	OutputDir string
	Title     string // Overrides the first <h1>
}

// Result is the output of a conversion.
type Result struct {
	HTML     []byte // Complete document
	Fragment []byte // Rendered Markdown body only
	Title    string // Document title used in <title>
}

// ParseFencedMode parses a fenced mode name or alias.
func ParseFencedMode(s string) (FencedMode, error) {
	mode, err := gfm.ParseFencedMode(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q (must be rich, light, or none)", ErrInvalidFencedMode, s)
	}
	return mode, nil
}

// Preprocess applies the GitHub-flavored rewrites to Markdown text and
// returns Markdown ready for a standard renderer. Rich mode uses chroma
// with DefaultChromaStyle.
func Preprocess(text string, mode FencedMode) string {
	return gfm.Transform(text, gfm.WithFencedMode(mode))
}

// defaultTimeout bounds a single Convert call.
const defaultTimeout = 30 * time.Second
