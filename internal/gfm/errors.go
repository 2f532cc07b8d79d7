package gfm

import "errors"

// Sentinel errors for the preprocessor.
var (
	// ErrUnknownFencedMode indicates a fenced mode name that is not recognized.
	ErrUnknownFencedMode = errors.New("unknown fenced mode")

	// ErrNoLexer indicates no lexer strategy produced a lexer.
	ErrNoLexer = errors.New("no lexer available")
)
