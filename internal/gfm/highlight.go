package gfm

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultChromaStyle is the chroma style used when none is configured.
const DefaultChromaStyle = "github"

// IsChromaStyle reports whether name is a registered chroma style.
func IsChromaStyle(name string) bool {
	return slices.Contains(styles.Names(), name)
}

// Highlighter turns code into an HTML fragment.
// lang may be empty, in which case the implementation guesses.
type Highlighter interface {
	Highlight(code, lang string) (string, error)
}

// lexerStrategy returns a lexer for the code, or nil when it has no answer.
type lexerStrategy func(lang, code string) chroma.Lexer

// lexerChain is tried in order: the named lexer, a lexer guessed from the
// content, then plain text.
var lexerChain = []lexerStrategy{
	lexerByName,
	lexerByContent,
	plainTextLexer,
}

func lexerByName(lang, _ string) chroma.Lexer {
	if lang == "" {
		return nil
	}
	return lexers.Get(lang)
}

func lexerByContent(_, code string) chroma.Lexer {
	return lexers.Analyse(code)
}

func plainTextLexer(_, _ string) chroma.Lexer {
	return lexers.Fallback
}

// resolveLexer walks the strategy chain.
func resolveLexer(lang, code string, chain []lexerStrategy) (chroma.Lexer, error) {
	for _, strategy := range chain {
		if l := strategy(lang, code); l != nil {
			return chroma.Coalesce(l), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoLexer, lang)
}

// ChromaHighlighter highlights code with chroma, emitting class-based HTML
// with line numbers in a table.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// Unknown names fall back to chroma's default style.
func NewChromaHighlighter(styleName string) *ChromaHighlighter {
	if styleName == "" {
		styleName = DefaultChromaStyle
	}
	return &ChromaHighlighter{
		style: styles.Get(styleName),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.WithLineNumbers(true),
			chromahtml.LineNumbersInTable(true),
		),
	}
}

// Highlight renders code as highlighted HTML.
func (h *ChromaHighlighter) Highlight(code, lang string) (string, error) {
	lexer, err := resolveLexer(lang, code, lexerChain)
	if err != nil {
		return "", err
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising %s code: %w", lexer.Config().Name, err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("formatting code: %w", err)
	}
	return b.String(), nil
}

// WriteCSS writes the stylesheet matching the highlighter's classes.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// Compile-time interface check.
var _ Highlighter = (*ChromaHighlighter)(nil)
