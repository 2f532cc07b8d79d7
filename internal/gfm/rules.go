package gfm

import (
	"regexp"
	"strings"
	"unicode"
)

// wordRunPattern matches a maximal run of word characters: letters,
// nonspacing marks, decimal digits, connector punctuation ('_' included) and
// the zero-width (non-)joiners.
var wordRunPattern = regexp.MustCompile(`[\p{L}\p{Mn}\p{Nd}\p{Pc}\x{200C}\x{200D}]+`)

// escapeUnderscores escapes underscores so foo_bar_baz does not render as
// foo<em>bar</em>baz. Lines are handled independently.
func escapeUnderscores(text string) string {
	if !strings.Contains(text, "_") {
		return text
	}
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		lines[i] = escapeLine(line)
	}
	return strings.Join(lines, "")
}

// escapeLine escapes every underscore from the line start to the end of the
// last word holding two or more inner underscores. Indented code lines and
// spans containing a URL scheme are left alone.
func escapeLine(line string) string {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return line
	}

	end := -1
	for _, loc := range wordRunPattern.FindAllStringIndex(line, -1) {
		if hasInnerUnderscores(line[loc[0]:loc[1]]) {
			end = loc[1]
		}
	}
	if end < 0 {
		return line
	}

	span := line[:end]
	if strings.Contains(span, "http:") || strings.Contains(span, "https:") {
		return line
	}
	return strings.ReplaceAll(span, "_", `\_`) + line[end:]
}

// hasInnerUnderscores reports whether a word run reads as w_w_w: an
// underscore following anything but '_', then a second underscore neither
// adjacent to the first nor ending the word.
func hasInnerUnderscores(word string) bool {
	first := -1
	for i := 1; i < len(word); i++ {
		if word[i] == '_' && word[i-1] != '_' {
			first = i
			break
		}
	}
	if first < 0 {
		return false
	}
	last := strings.LastIndexByte(word[:len(word)-1], '_')
	return last > first+1
}

// space matches what counts as whitespace around a naked URL.
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// nakedURLPattern matches an http(s) URL standing alone between whitespace
// or line boundaries.
var nakedURLPattern = regexp.MustCompile(
	`(?m)(^|` + space + `)` + // start of line or whitespace before
		`(https?://[:/.?=&;a-zA-Z0-9_-]+)` + // the URL, http or https only
		`(` + space + `|$)`, // whitespace or end of line after
)

// linkifyURLs wraps naked URLs: http://foo -> [http://foo](http://foo).
func linkifyURLs(text string) string {
	return nakedURLPattern.ReplaceAllString(text, "${1}[${2}](${2})${3}")
}

// lineBreakPattern matches a line starting with a word character or '<'
// together with the newlines that follow it.
var lineBreakPattern = regexp.MustCompile(`(?m)^[\p{L}\p{N}_<][^\n]*\n+`)

// hardenLineBreaks turns a single newline after a prose line into a Markdown
// hard break (two trailing spaces). Paragraph breaks are left untouched.
func hardenLineBreaks(text string) string {
	return lineBreakPattern.ReplaceAllStringFunc(text, func(s string) string {
		line := strings.TrimRight(s, "\n")
		if len(s)-len(line) != 1 {
			return s
		}
		return strings.TrimRightFunc(line, unicode.IsSpace) + "  \n"
	})
}
