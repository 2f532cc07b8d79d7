package main

import (
	"io"
	"os"

	"github.com/alnah/go-redtape/internal/ui"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// Color is set from --color once flags are parsed.
	Color   ui.ColorMode
	NoColor bool // NO_COLOR is set
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		NoColor: noColor,
	}
}

// outputUI writes status lines to stdout.
func (e *Environment) outputUI() *ui.UI {
	return ui.New(e.Stdout, e.Color, e.NoColor)
}

// errorUI writes status lines to stderr.
func (e *Environment) errorUI() *ui.UI {
	return ui.New(e.Stderr, e.Color, e.NoColor)
}
