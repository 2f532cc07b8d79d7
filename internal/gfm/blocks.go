package gfm

import (
	"regexp"
	"strings"
)

// Block patterns. Each matches the shortest region between its delimiters,
// across newlines.
var (
	fencedBlockPattern = regexp.MustCompile("(?s)```.*?```")
	preBlockPattern    = regexp.MustCompile(`(?s)<pre>.*?</pre>`)
	inlineCodePattern  = regexp.MustCompile("(?s)`.*?`")
)

// RemoveFencedBlocks replaces every ``` fenced block with a placeholder.
func RemoveFencedBlocks(text string) (string, Blocks) {
	return removeBlocks(fencedBlockPattern, text)
}

// RemovePreBlocks replaces every <pre>...</pre> region with a placeholder.
func RemovePreBlocks(text string) (string, Blocks) {
	return removeBlocks(preBlockPattern, text)
}

// RemoveInlineCodeBlocks replaces every `code` span with a placeholder.
// Run it after RemoveFencedBlocks so fence delimiters are already gone.
func RemoveInlineCodeBlocks(text string) (string, Blocks) {
	return removeBlocks(inlineCodePattern, text)
}

// removeBlocks replaces matches of pattern one at a time, each with its own
// placeholder, so identical blocks still get distinct entries.
func removeBlocks(pattern *regexp.Regexp, text string) (string, Blocks) {
	blocks := make(Blocks)

	var b strings.Builder
	rest := text
	for {
		loc := pattern.FindStringIndex(rest)
		if loc == nil {
			break
		}
		key := newPlaceholder()
		blocks[key] = rest[loc[0]:loc[1]]

		b.WriteString(rest[:loc[0]])
		b.WriteString(key)
		// Nothing before the placeholder can match again: the match was the
		// leftmost one and placeholders contain no delimiter characters.
		rest = rest[loc[1]:]
	}

	if len(blocks) == 0 {
		return text, blocks
	}
	b.WriteString(rest)
	return b.String(), blocks
}

// Restore puts extracted blocks back into text.
//
// Mappings are restored last to first. A later category can capture an
// earlier category's placeholder (an inline span around a <pre> block, a <pre>
// block around a fence), so the outer block must be put back before the inner
// placeholder becomes visible.
func Restore(text string, mappings ...Blocks) string {
	for i := len(mappings) - 1; i >= 0; i-- {
		for key, block := range mappings[i] {
			text = strings.Replace(text, key, block, 1)
		}
	}
	return text
}
