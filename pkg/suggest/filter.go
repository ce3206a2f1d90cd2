package suggest

import (
	"github.com/bingoyahoo/t9/pkg/dictionary"
	"github.com/bingoyahoo/t9/pkg/keypad"
	"github.com/charmbracelet/log"
)

// WordsFor loads the word list from src and returns, in combination order,
// every combination of digits that appears in it. The source is opened and
// closed within the call.
func WordsFor(kp *keypad.Keypad, digits string, src dictionary.Source, opts dictionary.Options) ([]string, error) {
	dict, err := dictionary.Load(src, opts)
	if err != nil {
		return nil, err
	}
	combos, err := kp.Combinations(digits)
	if err != nil {
		return nil, err
	}
	words := Filter(combos, dict)
	log.Debugf("%d of %d combinations for %s are words", len(words), len(combos), digits)
	return words, nil
}

// Filter keeps the combos that dict contains, preserving their order.
func Filter(combos []string, dict *dictionary.Dictionary) []string {
	words := make([]string, 0)
	for _, c := range combos {
		if dict.Contains(c) {
			words = append(words, c)
		}
	}
	return words
}
