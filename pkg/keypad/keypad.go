/*
Package keypad maps between phone keypad digits and letters.

A Keypad is built once from a Layout and never changes afterwards. It holds
both directions of the mapping: the ordered letters printed on each digit
key, and for every letter the key it sits on and how many presses it takes
to reach it.

	kp := keypad.Default()
	n, _ := kp.Presses("bob")      // 7
	num, _ := kp.Number("bob")     // "262"
	all, _ := kp.Combinations("23") // ad ae af bd ... cf

Digits 0 and 1 carry no letters. A digit sequence containing either of them
therefore has no letter combinations at all.
*/
package keypad

import (
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
)

// Layout is the ordered set of letters printed on each digit key, indexed by digit.
type Layout [10]string

// DefaultLayout is the classic phone keypad.
var DefaultLayout = Layout{
	0: "",
	1: "",
	2: "abc",
	3: "def",
	4: "ghi",
	5: "jkl",
	6: "mno",
	7: "pqrs",
	8: "tuv",
	9: "wxyz",
}

// key locates a letter on the keypad.
type key struct {
	digit int
	pos   int
}

// Keypad holds the forward (digit -> letters) and inverse (letter -> digit)
// tables. It is safe for concurrent use since it is never mutated after Build.
type Keypad struct {
	letters [10][]rune
	inverse map[rune]key
}

var (
	defaultOnce   sync.Once
	defaultKeypad *Keypad
)

// Default returns the keypad for DefaultLayout, building it on first use.
func Default() *Keypad {
	defaultOnce.Do(func() {
		kp, err := Build(DefaultLayout)
		if err != nil {
			panic(fmt.Sprintf("keypad: default layout is invalid: %v", err))
		}
		defaultKeypad = kp
	})
	return defaultKeypad
}

// Build constructs a Keypad from layout. Every letter must appear on exactly
// one key; a letter listed twice yields ErrConflictingLetter.
func Build(layout Layout) (*Keypad, error) {
	kp := &Keypad{inverse: make(map[rune]key, 26)}
	for digit, letters := range layout {
		row := []rune(letters)
		for pos, r := range row {
			if prev, ok := kp.inverse[r]; ok {
				return nil, fmt.Errorf("%w: %q on keys %d and %d", ErrConflictingLetter, r, prev.digit, digit)
			}
			kp.inverse[r] = key{digit: digit, pos: pos}
		}
		kp.letters[digit] = row
	}
	log.Debugf("Keypad built: %d letters on %d keys", len(kp.inverse), len(layout))
	return kp, nil
}

// Letters returns the letters on the key labelled c ('0' to '9'), in keypad order.
func (kp *Keypad) Letters(c rune) (string, error) {
	if c < '0' || c > '9' {
		return "", &InvalidDigitError{Char: c}
	}
	return string(kp.letters[c-'0']), nil
}

// Digit returns the key that letter r sits on.
func (kp *Keypad) Digit(r rune) (int, error) {
	k, ok := kp.inverse[r]
	if !ok {
		return 0, &UnknownLetterError{Letter: r}
	}
	return k.digit, nil
}

// Position returns the zero-based index of r among its key's letters.
func (kp *Keypad) Position(r rune) (int, error) {
	k, ok := kp.inverse[r]
	if !ok {
		return 0, &UnknownLetterError{Letter: r}
	}
	return k.pos, nil
}

// parseDigits validates s and converts it to key indexes.
func parseDigits(s string) ([]int, error) {
	digits := make([]int, 0, len(s))
	i := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, &InvalidDigitError{Char: c, Index: i}
		}
		digits = append(digits, int(c-'0'))
		i++
	}
	return digits, nil
}

// CountCombinations reports how many combinations Combinations would return
// for digits, without generating them. The count saturates at math.MaxInt.
func (kp *Keypad) CountCombinations(digits string) (int, error) {
	keys, err := parseDigits(digits)
	if err != nil {
		return 0, err
	}
	total := 1
	for _, d := range keys {
		n := len(kp.letters[d])
		if n == 0 {
			return 0, nil
		}
		if total > math.MaxInt/n {
			total = math.MaxInt
			continue
		}
		total *= n
	}
	return total, nil
}
