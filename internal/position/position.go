// Package position implements the ordering keys used to arrange code blocks
// within a tangled file.
package position

import (
	"errors"
	"fmt"
)

// DefaultKey is the key assigned to blocks without an explicit position.
// It sits in the middle of the key space so that authors can prepend with
// a-l and append with n-z without touching existing blocks.
const DefaultKey = "m"

// Position is a validated ordering key: a non-empty string of lowercase
// ASCII letters, compared lexicographically.
type Position struct {
	key string
}

var (
	// ErrEmptyKey is returned by [Parse] for an empty key.
	ErrEmptyKey = errors.New("position key is empty")

	// ErrInvalidCharacters is returned by [Parse] when a key contains
	// anything other than lowercase ASCII letters.
	ErrInvalidCharacters = errors.New("position key must contain only lowercase ASCII letters")
)

// Default returns the position assigned to blocks without an explicit key.
func Default() Position {
	return Position{key: DefaultKey}
}

// Parse validates raw as a position key.
func Parse(raw string) (Position, error) {
	if len(raw) == 0 {
		return Position{}, ErrEmptyKey
	}

	for _, c := range []byte(raw) {
		if c < 'a' || c > 'z' {
			return Position{}, fmt.Errorf("%w: %q", ErrInvalidCharacters, raw)
		}
	}

	return Position{key: raw}, nil
}

// Less reports whether p orders before other. Keys compare as plain strings;
// equal keys are legal and rely on stable sorting to keep encounter order.
func (p Position) Less(other Position) bool {
	return p.key < other.key
}

func (p Position) String() string {
	return p.key
}
