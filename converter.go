package redtape

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"slices"
	"strings"

	"github.com/alnah/go-redtape/internal/assets"
	"github.com/alnah/go-redtape/internal/fileutil"
	"github.com/alnah/go-redtape/internal/gfm"
	"github.com/alnah/go-redtape/internal/pipeline"
)

// Converter orchestrates the Markdown-to-HTML pipeline.
// A Converter is immutable after NewConverter and safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	loader        assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	renderer      pipeline.DocumentRenderer

	stylesheets []string // names, in link order
	linkedCSS   []string
	embeddedCSS []template.CSS
	scripts     []string
}

// NewConverter creates a Converter. Options are validated and every asset
// the documents need is loaded up front, so Convert never touches disk.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			fenced:      DefaultFencedMode,
			renderer:    pipeline.RendererGoldmark,
			chromaStyle: DefaultChromaStyle,
			template:    assets.DefaultTemplateName,
			lang:        pipeline.DefaultLang,
			timeout:     defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validateConfig(); err != nil {
		return nil, err
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.loader = resolver

	hl := c.cfg.highlighter
	if hl == nil && c.cfg.fenced == FencedRich {
		hl = gfm.NewChromaHighlighter(c.cfg.chromaStyle)
	}
	c.preprocessor = pipeline.NewGFMPreprocessor(c.cfg.fenced, hl)

	c.htmlConverter, err = pipeline.NewHTMLConverter(c.cfg.renderer, c.cfg.chromaStyle)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRenderer, err)
	}

	if err := c.loadTemplate(); err != nil {
		return nil, err
	}
	if err := c.loadStylesheets(); err != nil {
		return nil, err
	}

	if c.cfg.fenced == FencedLight {
		c.scripts = append(c.scripts, pipeline.PrettifyLoaderURL)
	}
	c.scripts = append(c.scripts, c.cfg.scripts...)

	return c, nil
}

func (c *Converter) validateConfig() error {
	mode, err := ParseFencedMode(string(c.cfg.fenced))
	if err != nil {
		return err
	}
	c.cfg.fenced = mode

	c.cfg.renderer = strings.ToLower(c.cfg.renderer)
	if !slices.Contains(pipeline.Renderers, c.cfg.renderer) {
		return fmt.Errorf("%w: %q (must be %s)", ErrInvalidRenderer, c.cfg.renderer, strings.Join(pipeline.Renderers, " or "))
	}

	if !gfm.IsChromaStyle(c.cfg.chromaStyle) {
		return fmt.Errorf("%w: %q", ErrInvalidChromaStyle, c.cfg.chromaStyle)
	}

	for _, name := range c.cfg.styles {
		if err := assets.ValidateAssetName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrStyleNotFound, err)
		}
	}
	return nil
}

func (c *Converter) loadTemplate() error {
	var (
		content string
		err     error
	)
	if fileutil.IsFilePath(c.cfg.template) {
		content, err = assets.ReadTemplateFile(c.cfg.template)
	} else {
		content, err = c.loader.LoadTemplate(c.cfg.template)
	}
	if err != nil {
		return fmt.Errorf("loading template %q: %w", c.cfg.template, err)
	}

	c.renderer, err = pipeline.NewTemplateRenderer(c.cfg.template, content)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return nil
}

// styleNames returns the stylesheets documents need in this configuration.
func (c *Converter) styleNames() []string {
	names := []string{assets.StyleBase}
	switch {
	case c.cfg.fenced == FencedLight:
		names = append(names, assets.StylePrettify)
	case c.cfg.fenced == FencedRich,
		c.cfg.fenced == FencedNone && c.cfg.renderer == pipeline.RendererGoldmark:
		names = append(names, assets.StyleChroma)
	}
	for _, name := range c.cfg.styles {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

func (c *Converter) loadStylesheets() error {
	c.stylesheets = c.styleNames()

	for _, name := range c.stylesheets {
		if !c.cfg.embed {
			c.linkedCSS = append(c.linkedCSS, assets.StylesheetHref(name))
			continue
		}
		css, err := c.loadStylesheet(name)
		if err != nil {
			return err
		}
		c.embeddedCSS = append(c.embeddedCSS, pipeline.EmbedCSS(css))
	}
	return nil
}

// loadStylesheet returns a stylesheet by name. The chroma stylesheet is
// generated unless the asset directory overrides it.
func (c *Converter) loadStylesheet(name string) (string, error) {
	css, err := c.loader.LoadStyle(name)
	if err == nil {
		return css, nil
	}
	if name == assets.StyleChroma && isNotFound(err) {
		return chromaStylesheet(c.cfg.chromaStyle)
	}
	return "", fmt.Errorf("loading style %q: %w", name, err)
}

func chromaStylesheet(style string) (string, error) {
	var sb strings.Builder
	if err := gfm.NewChromaHighlighter(style).WriteCSS(&sb); err != nil {
		return "", fmt.Errorf("generating chroma stylesheet: %w", err)
	}
	return sb.String(), nil
}

// Convert runs the full pipeline for one document.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	fragment, err = pipeline.RewriteRelativePaths(fragment, input.SourceDir, input.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("rewriting relative paths: %w", err)
	}

	title := input.Title
	if title == "" {
		title = pipeline.ExtractTitle(fragment)
	}

	doc, err := c.renderer.RenderDocument(ctx, &pipeline.DocumentData{
		Title:    title,
		Lang:     c.cfg.lang,
		Document: pipeline.TrustedHTML(fragment),
		CSS:      c.linkedCSS,
		JS:       c.scripts,
		Embed:    pipeline.EmbedData{CSS: c.embeddedCSS},
		Prettify: c.cfg.fenced == FencedLight,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	return &Result{
		HTML:     []byte(doc),
		Fragment: []byte(fragment),
		Title:    title,
	}, nil
}

// Stylesheets returns the content of every stylesheet linked by documents
// from this converter, keyed by name.
func (c *Converter) Stylesheets() (map[string]string, error) {
	out := make(map[string]string, len(c.stylesheets))
	for _, name := range c.stylesheets {
		css, err := c.loadStylesheet(name)
		if err != nil {
			return nil, err
		}
		out[name] = css
	}
	return out, nil
}

// ExportAssets writes the linked stylesheets under dir/css and returns the
// written paths.
func (c *Converter) ExportAssets(dir string) ([]string, error) {
	sheets, err := c.Stylesheets()
	if err != nil {
		return nil, err
	}
	return assets.Export(dir, sheets)
}

// validateInput checks Input at the library trust boundary.
func validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if len(input.Markdown) > MaxMarkdownSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrMarkdownTooLarge, len(input.Markdown), MaxMarkdownSize)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound)
}

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.GFMPreprocessor)(nil)
	_ pipeline.DocumentRenderer     = (*pipeline.TemplateRenderer)(nil)
)
