/*
Package dictionary loads word lists and answers membership questions about them.

Word lists are plain text, one word per line. The historical format used by
this tool ends every line with a single marker character (a slash):

	hello/
	help/

Load trims each line and, for FormatMarked lists, drops exactly the last
character. Lines that do not carry the marker lose their last letter; this
is how the format has always been read, so it is kept, and a warning is
logged when it happens. Use FormatPlain for lists without markers.

Loaded words are indexed in a Patricia trie, so both exact lookups and
"does any word start with this prefix" checks are cheap.
*/
package dictionary

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Dictionary is a read-only word list in source order with a trie index.
type Dictionary struct {
	name     string
	words    []string
	trie     *patricia.Trie
	hasEmpty bool
}

// New builds a Dictionary over words. The slice is copied.
func New(name string, words []string) *Dictionary {
	d := &Dictionary{
		name:  name,
		words: make([]string, 0, len(words)),
		trie:  patricia.NewTrie(),
	}
	for _, w := range words {
		d.add(w)
	}
	return d
}

// add appends w, indexing the line it first appeared on.
func (d *Dictionary) add(w string) {
	line := len(d.words)
	d.words = append(d.words, w)
	if w == "" {
		d.hasEmpty = true
		return
	}
	d.trie.Insert(patricia.Prefix(w), line)
}

// Name returns the name of the source the words came from.
func (d *Dictionary) Name() string { return d.name }

// Len returns the number of entries, duplicates included.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns a copy of the entries in source order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Contains reports whether w is an entry, by exact string equality.
func (d *Dictionary) Contains(w string) bool {
	if w == "" {
		return d.hasEmpty
	}
	return d.trie.Get(patricia.Prefix(w)) != nil
}

// Line returns the zero-based line w first appeared on.
func (d *Dictionary) Line(w string) (int, bool) {
	if w == "" {
		if !d.hasEmpty {
			return 0, false
		}
		for i, e := range d.words {
			if e == "" {
				return i, true
			}
		}
		return 0, false
	}
	item := d.trie.Get(patricia.Prefix(w))
	if item == nil {
		return 0, false
	}
	return item.(int), true
}

// HasPrefix reports whether any entry starts with prefix.
func (d *Dictionary) HasPrefix(prefix string) bool {
	if prefix == "" {
		return len(d.words) > 0
	}
	return d.trie.MatchSubtree(patricia.Prefix(prefix))
}

// WithPrefix returns the distinct entries starting with prefix, sorted.
func (d *Dictionary) WithPrefix(prefix string) []string {
	var out []string
	err := d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	if err != nil {
		return nil
	}
	sort.Strings(out)
	return out
}
