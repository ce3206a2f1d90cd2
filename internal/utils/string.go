package utils

import (
	"strings"
)

// InputKind classifies a line typed into the REPL.
type InputKind int

const (
	InputEmpty InputKind = iota
	InputDigits
	InputLetters
	InputMixed
)

// IsOnlyDigits checks if a string consists entirely of ASCII digits
func IsOnlyDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsOnlyLetters checks if a string consists entirely of lowercase ASCII letters
func IsOnlyLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Classify reports whether s is a digit sequence, a word, or neither.
func Classify(s string) InputKind {
	switch {
	case s == "":
		return InputEmpty
	case IsOnlyDigits(s):
		return InputDigits
	case IsOnlyLetters(s):
		return InputLetters
	default:
		return InputMixed
	}
}

// FormatList renders words as a bracketed, quoted list: ['ad', 'ae'].
// An empty list renders as [].
func FormatList(words []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, w := range words {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(w)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}
