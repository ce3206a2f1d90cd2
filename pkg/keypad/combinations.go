package keypad

// Combinations returns every letter string that digits could spell, in
// keypad order: the leftmost digit varies slowest and each key's letters
// appear in the order printed on it.
//
// A 0 or 1 anywhere has no letters, which empties the whole product. The
// empty sequence yields a single empty combination. Any character outside
// 0-9 fails with *InvalidDigitError before anything is generated.
func (kp *Keypad) Combinations(digits string) ([]string, error) {
	keys, err := parseDigits(digits)
	if err != nil {
		return nil, err
	}

	size, _ := kp.CountCombinations(digits)
	if size == 0 {
		return []string{}, nil
	}

	combos := []string{""}
	for _, d := range keys {
		row := kp.letters[d]
		next := make([]string, 0, len(combos)*len(row))
		for _, prefix := range combos {
			for _, r := range row {
				next = append(next, prefix+string(r))
			}
		}
		combos = next
	}
	return combos, nil
}

// Walk calls visit for each prefix of a combination of digits, depth-first
// and in the same order Combinations uses. Complete combinations are passed
// with done set. Returning false from visit skips every combination below
// that prefix.
func (kp *Keypad) Walk(digits string, visit func(prefix string, done bool) bool) error {
	keys, err := parseDigits(digits)
	if err != nil {
		return err
	}
	for _, d := range keys {
		if len(kp.letters[d]) == 0 {
			return nil
		}
	}
	if len(keys) == 0 {
		visit("", true)
		return nil
	}
	kp.walk(keys, make([]rune, 0, len(keys)), visit)
	return nil
}

func (kp *Keypad) walk(keys []int, prefix []rune, visit func(string, bool) bool) {
	for _, r := range kp.letters[keys[len(prefix)]] {
		next := append(prefix, r)
		done := len(next) == len(keys)
		if visit(string(next), done) && !done {
			kp.walk(keys, next, visit)
		}
	}
}
