package gfm

import "sync"

var (
	defaultHighlighterOnce sync.Once
	defaultHighlighterInst *ChromaHighlighter
)

// defaultHighlighter returns a shared ChromaHighlighter; chroma formatters
// and styles are read-only once built.
func defaultHighlighter() *ChromaHighlighter {
	defaultHighlighterOnce.Do(func() {
		defaultHighlighterInst = NewChromaHighlighter(DefaultChromaStyle)
	})
	return defaultHighlighterInst
}
