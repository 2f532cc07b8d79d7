package gfm

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"
)

// FencedMode selects how fenced code blocks are emitted.
type FencedMode string

// Recognized fenced modes. Only FencedRich and FencedLight transform blocks;
// any other value restores fenced blocks verbatim.
const (
	// FencedRich highlights code server-side with line numbers.
	FencedRich FencedMode = "rich"
	// FencedLight wraps code for client-side prettify highlighting.
	FencedLight FencedMode = "light"
	// FencedNone leaves fenced blocks to the Markdown renderer.
	FencedNone FencedMode = "none"
)

// DefaultFencedMode is used when no mode is given.
const DefaultFencedMode = FencedLight

// FencedModes lists the accepted mode names.
var FencedModes = []FencedMode{FencedRich, FencedLight, FencedNone}

// ParseFencedMode validates a user-supplied mode name (case-insensitive).
// "pygments" and "bootstrap" are accepted as aliases for rich and light.
func ParseFencedMode(s string) (FencedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rich", "pygments", "chroma":
		return FencedRich, nil
	case "light", "bootstrap", "prettify":
		return FencedLight, nil
	case "none":
		return FencedNone, nil
	}
	return "", fmt.Errorf("%w: %q (must be rich, light, or none)", ErrUnknownFencedMode, s)
}

// transforms reports whether m triggers fenced block transformation.
func (m FencedMode) transforms() bool {
	return m == FencedRich || m == FencedLight
}

// fencedPattern splits a fenced block into its language hint and body.
var fencedPattern = regexp.MustCompile("(?s)\\A```(\\w+)?(.*?)```")

// prettifyClass is the class prettify looks for, with line numbering.
const prettifyClass = "prettyprint linenums"

// parseFenced returns the language hint and code body of a fenced block.
func parseFenced(block string) (lang, code string, ok bool) {
	m := fencedPattern.FindStringSubmatch(block)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// transformFenced rewrites one extracted fenced block for the given mode.
// Blocks that do not parse are returned unchanged.
func transformFenced(block string, mode FencedMode, hl Highlighter) string {
	switch mode {
	case FencedRich:
		return fencedRich(block, hl)
	case FencedLight:
		return fencedLight(block)
	default:
		return block
	}
}

// fencedRich highlights a fenced block with hl.
func fencedRich(block string, hl Highlighter) string {
	lang, code, ok := parseFenced(block)
	if !ok {
		return block
	}
	code = strings.TrimLeftFunc(code, unicode.IsSpace)

	class := "code"
	if lang != "" {
		class += " " + lang
	}

	highlighted, err := hl.Highlight(code, lang)
	if err != nil {
		highlighted = "<pre>" + html.EscapeString(code) + "</pre>"
	}
	return `<div class="` + class + `">` + highlighted + `</div>`
}

// fencedLight wraps a fenced block for prettify.
func fencedLight(block string) string {
	_, code, ok := parseFenced(block)
	if !ok {
		return block
	}
	// Code is HTML-escaped so tags and entities in it display literally.
	return `<pre class="` + prettifyClass + `">` + html.EscapeString(code) + `</pre>`
}
