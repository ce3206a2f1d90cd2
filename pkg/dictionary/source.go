package dictionary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ErrSourceUnavailable matches any *SourceUnavailableError via errors.Is.
var ErrSourceUnavailable = errors.New("dictionary source unavailable")

// SourceUnavailableError reports a word list that could not be opened or read.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("dictionary %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() []error { return []error{ErrSourceUnavailable, e.Err} }

// Source provides a line-oriented word list. Each call to Open starts a
// fresh read; the caller closes what it opened.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileSource reads a word list from disk.
type FileSource struct {
	Path string
}

// File returns a Source for the word list at path.
func File(path string) FileSource {
	return FileSource{Path: path}
}

func (f FileSource) Name() string { return f.Path }

func (f FileSource) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// ModTime reports when the file last changed, letting a Cache notice edits.
func (f FileSource) ModTime() (time.Time, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

type bytesSource struct {
	name string
	data []byte
}

// Bytes returns a Source serving data from memory. It can be opened any
// number of times.
func Bytes(name string, data []byte) Source {
	return bytesSource{name: name, data: data}
}

func (b bytesSource) Name() string { return b.name }

func (b bytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.data)), nil
}
