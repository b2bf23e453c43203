package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChar is returned for bytes outside [0-9A-Za-z].
	ErrInvalidChar = errors.New("character outside the ASCII alphanumeric alphabet")
	// ErrEmptyWord is returned when inserting an empty word.
	ErrEmptyWord = errors.New("empty word")
	// ErrFrequencyOverflow is returned when a count would push a word's
	// frequency past the largest int.
	ErrFrequencyOverflow = errors.New("frequency overflow")
)

// ValidationError records where an unsupported byte was found.
type ValidationError struct {
	Input string
	Pos   int
	Char  byte
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d in %q", e.Char, e.Pos, e.Input)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidChar
}
