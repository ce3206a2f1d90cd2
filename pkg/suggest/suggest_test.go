package suggest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bingoyahoo/t9/pkg/dictionary"
	"github.com/bingoyahoo/t9/pkg/keypad"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var wordList = []string{"hello", "gekko", "help", "hellos", "idea", "ifdmo", "bob", "coc", "aoa", "gel"}

func markedSource(words []string) dictionary.Source {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w + "/\n")
	}
	return dictionary.Bytes("test", []byte(b.String()))
}

func TestWordsFor(t *testing.T) {
	kp := keypad.Default()
	words, err := WordsFor(kp, "43556", markedSource(wordList), dictionary.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"gekko", "hello"}, words)
	for _, w := range words {
		assert.Contains(t, wordList, w)
	}
}

func TestWordsForOrderFollowsCombinations(t *testing.T) {
	kp := keypad.Default()
	words, err := WordsFor(kp, "262", markedSource(wordList), dictionary.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"aoa", "bob", "coc"}, words)
}

func TestWordsForFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "WordsRTF.RTF")
	require.NoError(t, os.WriteFile(path, []byte("  hello/ \nworld/\n"), 0644))

	words, err := WordsFor(keypad.Default(), "43556", dictionary.File(path), dictionary.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, words)
}

func TestWordsForNoMatches(t *testing.T) {
	words, err := WordsFor(keypad.Default(), "20", markedSource(wordList), dictionary.Options{})
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

func TestWordsForErrors(t *testing.T) {
	kp := keypad.Default()

	_, err := WordsFor(kp, "4a", markedSource(wordList), dictionary.Options{})
	assert.ErrorIs(t, err, keypad.ErrInvalidDigit)

	missing := dictionary.File(filepath.Join(t.TempDir(), "nope.rtf"))
	_, err = WordsFor(kp, "43556", missing, dictionary.Options{})
	assert.ErrorIs(t, err, dictionary.ErrSourceUnavailable)
}

func TestSearchMatchesFilter(t *testing.T) {
	kp := keypad.Default()
	dict := dictionary.New("test", append(wordList, ""))

	for _, digits := range []string{"", "2", "262", "43556", "4332", "435567", "20", "7777"} {
		combos, err := kp.Combinations(digits)
		require.NoError(t, err)

		searched, err := Search(kp, digits, dict)
		require.NoError(t, err)
		assert.Equal(t, Filter(combos, dict), searched, "digits %q", digits)
	}
}

func TestSearchInvalidDigit(t *testing.T) {
	_, err := Search(keypad.Default(), "9a", dictionary.New("test", wordList))
	assert.ErrorIs(t, err, keypad.ErrInvalidDigit)
}

func TestPredict(t *testing.T) {
	kp := keypad.Default()
	dict := dictionary.New("test", wordList)

	got, err := Predict(kp, "435", dict, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"gekko", "gel", "hello", "hellos", "help"}, got)

	got, err = Predict(kp, "435", dict, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"gekko", "gel"}, got)

	got, err = Predict(kp, "99", dict, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggesterWithCache(t *testing.T) {
	s := New(keypad.Default(), markedSource(wordList), dictionary.Options{})
	cache := dictionary.NewCache(1)
	s.Loader = cache

	words, err := s.Words("43556")
	require.NoError(t, err)
	assert.Equal(t, []string{"gekko", "hello"}, words)

	predicted, err := s.Predict("4332", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"idea"}, predicted)

	assert.Equal(t, 1, cache.Stats()["hits"])
}
