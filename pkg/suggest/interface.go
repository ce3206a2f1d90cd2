// Package suggest finds the dictionary words a keypad digit sequence can spell.
package suggest

import (
	"github.com/bingoyahoo/t9/pkg/dictionary"
	"github.com/bingoyahoo/t9/pkg/keypad"
)

// Loader supplies dictionaries. *dictionary.Cache satisfies it, and so does
// LoaderFunc(dictionary.Load) for a fresh read on every call.
type Loader interface {
	Load(src dictionary.Source, opts dictionary.Options) (*dictionary.Dictionary, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(src dictionary.Source, opts dictionary.Options) (*dictionary.Dictionary, error)

func (f LoaderFunc) Load(src dictionary.Source, opts dictionary.Options) (*dictionary.Dictionary, error) {
	return f(src, opts)
}

// Fresh reads the dictionary source on every query.
var Fresh Loader = LoaderFunc(dictionary.Load)

// Suggester answers word queries for one keypad and dictionary source.
type Suggester struct {
	Keypad *keypad.Keypad
	Source dictionary.Source
	Opts   dictionary.Options
	Loader Loader
}

// New returns a Suggester that reloads src for every query.
func New(kp *keypad.Keypad, src dictionary.Source, opts dictionary.Options) *Suggester {
	return &Suggester{Keypad: kp, Source: src, Opts: opts, Loader: Fresh}
}

func (s *Suggester) load() (*dictionary.Dictionary, error) {
	loader := s.Loader
	if loader == nil {
		loader = Fresh
	}
	return loader.Load(s.Source, s.Opts)
}

// Words returns the combinations of digits that are dictionary words.
func (s *Suggester) Words(digits string) ([]string, error) {
	dict, err := s.load()
	if err != nil {
		return nil, err
	}
	return Search(s.Keypad, digits, dict)
}

// Predict returns up to limit dictionary words that begin with a combination of digits.
func (s *Suggester) Predict(digits string, limit int) ([]string, error) {
	dict, err := s.load()
	if err != nil {
		return nil, err
	}
	return Predict(s.Keypad, digits, dict, limit)
}
