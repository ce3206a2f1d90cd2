package suggest

import (
	"github.com/bingoyahoo/t9/pkg/dictionary"
	"github.com/bingoyahoo/t9/pkg/keypad"
)

// Search returns the same words as filtering every combination of digits
// against dict, but only descends into prefixes that some dictionary word
// starts with.
func Search(kp *keypad.Keypad, digits string, dict *dictionary.Dictionary) ([]string, error) {
	words := make([]string, 0)
	err := kp.Walk(digits, func(prefix string, done bool) bool {
		if done {
			if dict.Contains(prefix) {
				words = append(words, prefix)
			}
			return false
		}
		return dict.HasPrefix(prefix)
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Predict returns the dictionary words whose first len(digits) letters are a
// combination of digits, the way predictive keypad entry offers completions
// while typing. Results follow combination order and are alphabetical within
// one combination. A limit of zero or less returns everything.
func Predict(kp *keypad.Keypad, digits string, dict *dictionary.Dictionary, limit int) ([]string, error) {
	words := make([]string, 0)
	full := func() bool { return limit > 0 && len(words) >= limit }

	err := kp.Walk(digits, func(prefix string, done bool) bool {
		if full() || !dict.HasPrefix(prefix) {
			return false
		}
		if !done {
			return true
		}
		for _, w := range dict.WithPrefix(prefix) {
			if full() {
				break
			}
			words = append(words, w)
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}
