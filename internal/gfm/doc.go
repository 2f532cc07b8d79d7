// Package gfm implements the GitHub-flavored Markdown preprocessor.
//
// The preprocessor runs before a standard Markdown renderer and fixes a few of
// Markdown's gotchas without parsing Markdown itself:
//
//   - words with two or more underscores (foo_bar_baz) are escaped so they do
//     not render with an italic middle
//   - naked http/https URLs become [url](url) links
//   - single newlines inside a paragraph become hard line breaks
//
// Fenced code blocks, <pre> blocks and inline code spans are protected from
// those rewrites. They are extracted into placeholders first, optionally
// transformed (fenced blocks only), and restored last:
//
//	text, fenced := RemoveFencedBlocks(text)
//	text, pre := RemovePreBlocks(text)
//	text, inline := RemoveInlineCodeBlocks(text)
//	...rewrite rules...
//	text = Restore(text, fenced, pre, inline)
//
// Transform runs the whole sequence and is safe for concurrent use.
package gfm
