package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Format selects how each word-list line is turned into a word.
type Format int

const (
	// FormatMarked lists end every line with one marker character, which is dropped.
	FormatMarked Format = iota
	// FormatPlain lists hold one bare word per line.
	FormatPlain
)

// Marker is the line terminator used by marked word lists.
const Marker = '/'

func (f Format) String() string {
	switch f {
	case FormatMarked:
		return "marked"
	case FormatPlain:
		return "plain"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "marked":
		return FormatMarked, nil
	case "plain":
		return FormatPlain, nil
	default:
		return FormatMarked, fmt.Errorf("unknown dictionary format %q (expected marked or plain)", s)
	}
}

// Options control how a word list is read.
type Options struct {
	Format Format
}

// Load opens src, reads every line, and closes it again before returning.
// Open and read failures are reported as *SourceUnavailableError.
func Load(src Source, opts Options) (*Dictionary, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, &SourceUnavailableError{Source: src.Name(), Err: err}
	}
	defer rc.Close()

	dict, err := Read(src.Name(), rc, opts)
	if err != nil {
		return nil, &SourceUnavailableError{Source: src.Name(), Err: err}
	}
	return dict, nil
}

// Read builds a Dictionary from the lines of r.
func Read(name string, r io.Reader, opts Options) (*Dictionary, error) {
	reader := bufio.NewReader(r)
	dict := New(name, nil)
	unmarked := 0

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read line %d: %w", dict.Len()+1, err)
		}
		if line != "" || err == nil {
			word, marked := ParseLine(line, opts.Format)
			if !marked {
				unmarked++
			}
			dict.add(word)
		}
		if err == io.EOF {
			break
		}
	}

	if unmarked > 0 {
		log.Warnf("%d of %d lines in %s had no %q marker; their last letter was dropped", unmarked, dict.Len(), name, Marker)
	}
	log.Debugf("Loaded dictionary %s: %d words (%s)", name, dict.Len(), opts.Format)
	return dict, nil
}

// ParseLine turns one raw line into a word. marked is false when a
// FormatMarked line did not end in Marker; the last character is dropped
// regardless.
func ParseLine(line string, format Format) (word string, marked bool) {
	word = strings.TrimSpace(line)
	if format != FormatMarked || word == "" {
		return word, true
	}
	last, size := utf8.DecodeLastRuneInString(word)
	return word[:len(word)-size], last == Marker
}
