package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"zombiezen.com/go/commonmark"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// ErrUnknownRenderer indicates a renderer name that is not recognized.
var ErrUnknownRenderer = errors.New("unknown renderer")

// Renderer names.
const (
	RendererGoldmark   = "goldmark"
	RendererCommonMark = "commonmark"
)

// Renderers lists the accepted renderer names.
var Renderers = []string{RendererGoldmark, RendererCommonMark}

// HTMLConverter abstracts Markdown to HTML conversion.
// Implementations return an HTML fragment, not a full document.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NewHTMLConverter returns the converter registered under name.
// An empty name selects goldmark.
func NewHTMLConverter(name, chromaStyle string) (HTMLConverter, error) {
	switch strings.ToLower(name) {
	case "", RendererGoldmark:
		return NewGoldmarkConverter(chromaStyle), nil
	case RendererCommonMark:
		return &CommonMarkConverter{}, nil
	}
	return nil, fmt.Errorf("%w: %q (must be %s)", ErrUnknownRenderer, name, strings.Join(Renderers, " or "))
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions.
// Fenced blocks that reach goldmark untransformed are highlighted with chroma
// classes in chromaStyle.
func NewGoldmarkConverter(chromaStyle string) *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(chromaStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
					chromahtml.WithLineNumbers(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Highlighted fences and <pre> blocks arrive as raw HTML.
			html.WithUnsafe(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	return convertAsync(ctx, func() (string, error) {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return buf.String(), nil
	})
}

// CommonMarkConverter converts Markdown to HTML with a strict CommonMark
// implementation. Raw HTML is passed through.
type CommonMarkConverter struct{}

// ToHTML converts Markdown content to an HTML fragment.
func (c *CommonMarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	return convertAsync(ctx, func() (html string, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrHTMLConversion, r)
			}
		}()

		blocks, refMap := commonmark.Parse([]byte(content))
		var buf bytes.Buffer
		if err := commonmark.RenderHTML(&buf, blocks, refMap); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return buf.String(), nil
	})
}

// convertAsync runs convert in a goroutine so ctx can abandon it.
func convertAsync(ctx context.Context, convert func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		html, err := convert()
		done <- result{html: html, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*GoldmarkConverter)(nil)
	_ HTMLConverter = (*CommonMarkConverter)(nil)
)
