package gfm

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// placeholderPrefix and placeholderSuffix wrap the random identifier.
// Neither contains a backtick, underscore or angle bracket, so a placeholder
// can never be matched by a block pattern or rewritten by a text rule.
const (
	placeholderPrefix = "{gfm-placeholder-"
	placeholderSuffix = "}"
)

// newPlaceholder returns a fresh token such as
// {gfm-placeholder-3f1c0e9a4b7d4c21a9e2f0b6d8c5a7e1}.
// The identifier is a random 128-bit UUID; collisions are not checked.
func newPlaceholder() string {
	id := uuid.New()
	return placeholderPrefix + hex.EncodeToString(id[:]) + placeholderSuffix
}

// Blocks maps placeholder tokens to the text they replaced.
type Blocks map[string]string
