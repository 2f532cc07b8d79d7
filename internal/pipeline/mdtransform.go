package pipeline

import (
	"context"
	"regexp"

	"github.com/alnah/go-redtape/internal/gfm"
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// GFMPreprocessor applies the GitHub-flavored rewrites before rendering.
type GFMPreprocessor struct {
	// Fenced selects how fenced code blocks are emitted.
	Fenced gfm.FencedMode
	// Highlighter is used in rich mode. Nil means gfm's chroma default.
	Highlighter gfm.Highlighter
}

// NewGFMPreprocessor creates a GFMPreprocessor for the given fenced mode.
func NewGFMPreprocessor(mode gfm.FencedMode, hl gfm.Highlighter) *GFMPreprocessor {
	return &GFMPreprocessor{Fenced: mode, Highlighter: hl}
}

// PreprocessMarkdown normalizes line endings then runs gfm.Transform.
func (p *GFMPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	opts := []gfm.Option{gfm.WithFencedMode(p.Fenced)}
	if p.Highlighter != nil {
		opts = append(opts, gfm.WithHighlighter(p.Highlighter))
	}
	return gfm.Transform(normalizeLineEndings(content), opts...)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
