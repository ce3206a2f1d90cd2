package dictionary

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "WordsRTF.RTF")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		format Format
		word   string
		marked bool
	}{
		{"hello/\n", FormatMarked, "hello", true},
		{"  hello/  \r\n", FormatMarked, "hello", true},
		{"hello\n", FormatMarked, "hell", false},
		{"/\n", FormatMarked, "", true},
		{"\n", FormatMarked, "", true},
		{"  help  \n", FormatPlain, "help", true},
		{"help/\n", FormatPlain, "help/", true},
		{"café/", FormatMarked, "café", true},
	}

	for _, tc := range tests {
		word, marked := ParseLine(tc.line, tc.format)
		assert.Equal(t, tc.word, word, "line %q", tc.line)
		assert.Equal(t, tc.marked, marked, "line %q", tc.line)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatMarked, f)

	f, err = ParseFormat(" Plain ")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, f)

	_, err = ParseFormat("rtf")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeList(t, "hello/\n gel/ \nhelp/\nhello/\nlast/")

	dict, err := Load(File(path), Options{})
	require.NoError(t, err)

	assert.Equal(t, path, dict.Name())
	assert.Equal(t, []string{"hello", "gel", "help", "hello", "last"}, dict.Words())
	assert.Equal(t, 5, dict.Len())
	assert.True(t, dict.Contains("hello"))
	assert.True(t, dict.Contains("last"))
	assert.False(t, dict.Contains("hello/"))
	assert.False(t, dict.Contains("hel"))

	line, ok := dict.Line("hello")
	require.True(t, ok)
	assert.Equal(t, 0, line)
}

func TestLoadPlain(t *testing.T) {
	dict, err := Load(Bytes("mem", []byte("one\ntwo\n")), Options{Format: FormatPlain})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, dict.Words())
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.rtf")
	_, err := Load(File(path), Options{})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var unavailable *SourceUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, path, unavailable.Source)
}

type failingSource struct {
	closed bool
}

func (f *failingSource) Name() string { return "failing" }

func (f *failingSource) Open() (io.ReadCloser, error) {
	return f, nil
}

func (f *failingSource) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func (f *failingSource) Close() error {
	f.closed = true
	return nil
}

func TestLoadReadFailureClosesSource(t *testing.T) {
	src := &failingSource{}
	_, err := Load(src, Options{})
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.True(t, src.closed)
}

func TestEmptyLinesBecomeEmptyWord(t *testing.T) {
	dict, err := Load(Bytes("mem", []byte("a/\n\nb/\n")), Options{})
	require.NoError(t, err)
	assert.True(t, dict.Contains(""))
	line, ok := dict.Line("")
	require.True(t, ok)
	assert.Equal(t, 1, line)

	dict = New("none", []string{"a"})
	assert.False(t, dict.Contains(""))
	_, ok = dict.Line("")
	assert.False(t, ok)
}

func TestPrefixQueries(t *testing.T) {
	dict := New("mem", []string{"hello", "help", "helmet", "gel", "hello"})

	assert.True(t, dict.HasPrefix("hel"))
	assert.True(t, dict.HasPrefix("hello"))
	assert.False(t, dict.HasPrefix("hex"))
	assert.True(t, dict.HasPrefix(""))

	assert.Equal(t, []string{"hello", "helmet", "help"}, dict.WithPrefix("hel"))
	assert.Empty(t, dict.WithPrefix("z"))
}
