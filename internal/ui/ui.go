// Package ui writes colored status lines to a terminal.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ErrInvalidColorMode indicates an unrecognized --color value.
var ErrInvalidColorMode = errors.New("invalid color mode")

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("%w: %q (must be auto, always, or never)", ErrInvalidColorMode, s)
}

// UI prints status lines with a leading symbol.
type UI struct {
	out *termenv.Output
}

// New creates a UI writing to w. noColor carries the NO_COLOR convention
// and wins over mode.
func New(w io.Writer, mode ColorMode, noColor bool) *UI {
	if noColor {
		mode = ColorNever
	}

	var profile termenv.Profile
	switch mode {
	case ColorNever:
		profile = termenv.Ascii
	case ColorAlways:
		profile = termenv.ANSI256
	default:
		profile = termenv.NewOutput(w).EnvColorProfile()
	}

	return &UI{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Success prints a ✓ line in green.
func (u *UI) Success(format string, args ...any) {
	u.line("✓ ", termenv.ANSIGreen, format, args...)
}

// Warning prints a ⚠ line in yellow.
func (u *UI) Warning(format string, args ...any) {
	u.line("⚠ ", termenv.ANSIYellow, format, args...)
}

// Error prints a ✗ line in red.
func (u *UI) Error(format string, args ...any) {
	u.line("✗ ", termenv.ANSIRed, format, args...)
}

// Info prints an ℹ line in blue.
func (u *UI) Info(format string, args ...any) {
	u.line("ℹ ", termenv.ANSIBlue, format, args...)
}

func (u *UI) line(symbol string, color termenv.ANSIColor, format string, args ...any) {
	msg := symbol + fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String(msg).Foreground(color))
}
