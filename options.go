package redtape

import "time"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the options applied by NewConverter.
type converterConfig struct {
	fenced      FencedMode
	highlighter Highlighter
	renderer    string
	chromaStyle string
	template    string   // name or path
	styles      []string // extra styles after base
	assetPath   string
	embed       bool
	scripts     []string
	lang        string
	timeout     time.Duration
}

// WithFencedMode selects how fenced code blocks are emitted.
func WithFencedMode(mode FencedMode) Option {
	return func(c *Converter) {
		c.cfg.fenced = mode
	}
}

// WithHighlighter replaces the chroma highlighter used in rich mode.
func WithHighlighter(h Highlighter) Option {
	return func(c *Converter) {
		c.cfg.highlighter = h
	}
}

// WithRenderer selects the Markdown renderer: "goldmark" or "commonmark".
func WithRenderer(name string) Option {
	return func(c *Converter) {
		c.cfg.renderer = name
	}
}

// WithChromaStyle sets the chroma style for highlighted code and the
// generated chroma stylesheet.
func WithChromaStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.chromaStyle = name
	}
}

// WithTemplate selects the document template by name, or by path when the
// value looks like a file path.
func WithTemplate(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.template = nameOrPath
	}
}

// WithStyle adds stylesheets, by name, after the built-in ones.
func WithStyle(names ...string) Option {
	return func(c *Converter) {
		c.cfg.styles = append(c.cfg.styles, names...)
	}
}

// WithAssetPath sets a directory whose styles/ and templates/ override the
// embedded assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithEmbed inlines stylesheets in the document instead of linking
// assets/css/{name}.css.
func WithEmbed(embed bool) Option {
	return func(c *Converter) {
		c.cfg.embed = embed
	}
}

// WithScripts appends script URLs to every document.
func WithScripts(urls ...string) Option {
	return func(c *Converter) {
		c.cfg.scripts = append(c.cfg.scripts, urls...)
	}
}

// WithLang sets the document language attribute.
func WithLang(lang string) Option {
	return func(c *Converter) {
		c.cfg.lang = lang
	}
}

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("redtape: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}
