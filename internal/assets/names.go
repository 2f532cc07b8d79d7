package assets

import (
	"fmt"
	"strings"
)

// Built-in asset names.
const (
	DefaultTemplateName = "default"
	StyleBase           = "base"
	StylePrettify       = "prettify"
	// StyleChroma is generated from a chroma style rather than stored.
	StyleChroma = "chroma"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Names may not be empty or contain path separators or dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
