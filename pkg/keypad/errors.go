package keypad

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLetter matches any *UnknownLetterError via errors.Is.
	ErrUnknownLetter = errors.New("unknown letter")
	// ErrInvalidDigit matches any *InvalidDigitError via errors.Is.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrConflictingLetter is returned by Build when a letter sits on two keys.
	ErrConflictingLetter = errors.New("letter assigned to more than one key")
)

// UnknownLetterError reports a character in a word that no key carries.
type UnknownLetterError struct {
	Letter rune
	Index  int
}

func (e *UnknownLetterError) Error() string {
	return fmt.Sprintf("unknown letter %q at position %d", e.Letter, e.Index)
}

func (e *UnknownLetterError) Unwrap() error { return ErrUnknownLetter }

// InvalidDigitError reports a character outside 0-9 in a digit sequence.
type InvalidDigitError struct {
	Char  rune
	Index int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d", e.Char, e.Index)
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidDigit }
