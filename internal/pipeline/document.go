package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrTemplateRender indicates the document template failed to execute.
var ErrTemplateRender = errors.New("document template rendering failed")

// PrettifyLoaderURL is the script that styles light-mode code blocks.
const PrettifyLoaderURL = "https://cdn.jsdelivr.net/gh/google/code-prettify@master/loader/run_prettify.js"

// DefaultLang is the document language when none is configured.
const DefaultLang = "en"

// DocumentData is the context handed to document templates.
type DocumentData struct {
	Title    string
	Lang     string
	Document template.HTML
	// CSS holds stylesheet hrefs emitted as <link> elements.
	CSS []string
	// JS holds script URLs.
	JS    []string
	Embed EmbedData
	// Prettify is set when code blocks carry prettyprint classes.
	Prettify bool
}

// EmbedData holds stylesheets inlined into the document.
type EmbedData struct {
	CSS []template.CSS
}

// EmbedCSS wraps stylesheet content for inlining in a <style> block.
func EmbedCSS(css string) template.CSS {
	return template.CSS(sanitizeCSS(css)) // #nosec G203 -- stylesheet from trusted asset loader
}

// TrustedHTML marks rendered Markdown as safe for the document body.
func TrustedHTML(fragment string) template.HTML {
	return template.HTML(fragment) // #nosec G203 -- output of the Markdown renderer
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// DocumentRenderer defines the contract for wrapping a fragment in a page.
type DocumentRenderer interface {
	RenderDocument(ctx context.Context, data *DocumentData) (string, error)
}

// TemplateRenderer renders documents with an html/template.
// Safe for concurrent use once constructed.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer parses tmplContent under name.
func NewTemplateRenderer(name, tmplContent string) (*TemplateRenderer, error) {
	tmpl, err := template.New(name).Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}
	return &TemplateRenderer{tmpl: tmpl}, nil
}

// RenderDocument executes the template with data.
func (r *TemplateRenderer) RenderDocument(ctx context.Context, data *DocumentData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: nil document data", ErrTemplateRender)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if data.Lang == "" {
		data.Lang = DefaultLang
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

var _ DocumentRenderer = (*TemplateRenderer)(nil)
