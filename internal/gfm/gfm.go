package gfm

// options holds Transform settings.
type options struct {
	fenced      FencedMode
	highlighter Highlighter
}

// Option configures Transform.
type Option func(*options)

// WithFencedMode selects how fenced blocks are emitted. Values other than
// FencedRich and FencedLight restore fenced blocks verbatim.
func WithFencedMode(mode FencedMode) Option {
	return func(o *options) {
		o.fenced = mode
	}
}

// WithHighlighter sets the highlighter used in FencedRich mode.
// Defaults to a ChromaHighlighter with DefaultChromaStyle.
func WithHighlighter(hl Highlighter) Option {
	return func(o *options) {
		o.highlighter = hl
	}
}

// Transform runs the preprocessor over text. It never fails: malformed
// blocks and highlighting errors degrade to untransformed output.
func Transform(text string, opts ...Option) string {
	o := options{fenced: DefaultFencedMode}
	for _, opt := range opts {
		opt(&o)
	}

	text, fenced := RemoveFencedBlocks(text)
	text, pre := RemovePreBlocks(text)
	text, inline := RemoveInlineCodeBlocks(text)

	if o.fenced.transforms() {
		hl := o.highlighter
		if hl == nil && o.fenced == FencedRich {
			hl = defaultHighlighter()
		}
		for key, block := range fenced {
			fenced[key] = transformFenced(block, o.fenced, hl)
		}
	}

	text = escapeUnderscores(text)
	text = linkifyURLs(text)
	text = hardenLineBreaks(text)

	return Restore(text, fenced, pre, inline)
}
