package keypad

import "strings"

// Presses returns the total number of key presses needed to type word.
// Each letter costs its 1-based position on its key, so "c" costs 3.
func (kp *Keypad) Presses(word string) (int, error) {
	total := 0
	i := 0
	for _, r := range word {
		k, ok := kp.inverse[r]
		if !ok {
			return 0, &UnknownLetterError{Letter: r, Index: i}
		}
		total += k.pos + 1
		i++
	}
	return total, nil
}

// Number returns the digit string that spells word, one digit per letter.
func (kp *Keypad) Number(word string) (string, error) {
	var b strings.Builder
	b.Grow(len(word))
	i := 0
	for _, r := range word {
		k, ok := kp.inverse[r]
		if !ok {
			return "", &UnknownLetterError{Letter: r, Index: i}
		}
		b.WriteByte(byte('0' + k.digit))
		i++
	}
	return b.String(), nil
}
