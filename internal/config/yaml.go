package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config files to prevent memory exhaustion.
const MaxInputSize = 1 << 20

var (
	ErrEmptyInput    = errors.New("empty config data")
	ErrInputTooLarge = errors.New("config exceeds maximum size")
)

// unmarshalStrict decodes data into v, rejecting unknown fields.
func unmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}
