// Package cli holds the interactive front ends: the four-question session
// and a free-form REPL for poking at the keypad and dictionary.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bingoyahoo/t9/internal/logger"
	"github.com/bingoyahoo/t9/internal/utils"
	"github.com/bingoyahoo/t9/pkg/dictionary"
	"github.com/bingoyahoo/t9/pkg/keypad"
	"github.com/bingoyahoo/t9/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Query identifies one of the four session questions.
type Query int

const (
	QueryPresses Query = iota
	QueryNumber
	QueryCombinations
	QueryWords
)

// Queries lists the session questions in the order they are asked.
var Queries = []Query{QueryPresses, QueryNumber, QueryCombinations, QueryWords}

func (q Query) String() string {
	switch q {
	case QueryPresses:
		return "key presses"
	case QueryNumber:
		return "word to number"
	case QueryCombinations:
		return "letter combinations"
	case QueryWords:
		return "dictionary words"
	default:
		return fmt.Sprintf("Query(%d)", int(q))
	}
}

// QueryError attributes a failure to the question and input that caused it.
type QueryError struct {
	Query Query
	Input string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s query for %q: %v", e.Query, e.Input, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// SessionOptions controls prompting and failure handling.
type SessionOptions struct {
	Prompt       string
	OutputPrefix string
	ShowPrompt   bool
	StopOnError  bool
}

// Session asks the four questions in order, reading one input line for each
// and writing one output line back.
type Session struct {
	keypad *keypad.Keypad
	source dictionary.Source
	dict   dictionary.Options
	in     *bufio.Reader
	out    io.Writer
	opts   SessionOptions
	logger *log.Logger
}

// NewSession creates a session reading from in and writing to out. The word
// list is read from src afresh each time the dictionary question is asked.
func NewSession(kp *keypad.Keypad, src dictionary.Source, dict dictionary.Options, in io.Reader, out io.Writer, opts SessionOptions) *Session {
	return &Session{
		keypad: kp,
		source: src,
		dict:   dict,
		in:     bufio.NewReader(in),
		out:    out,
		opts:   opts,
		logger: logger.New("session"),
	}
}

// Run asks every question. A failed question is reported on the output and
// logged, and the session moves on unless StopOnError is set. The first
// failure is returned once the session ends.
func (s *Session) Run() error {
	var firstErr error
	for _, q := range Queries {
		if s.opts.ShowPrompt {
			fmt.Fprint(s.out, s.opts.Prompt)
		}
		input, err := s.readLine()
		if err != nil {
			return fmt.Errorf("reading input for %s: %w", q, err)
		}

		result, err := s.Answer(q, input)
		if err != nil {
			s.logger.Error("Query failed", "query", q.String(), "input", input, "err", err)
			fmt.Fprintf(s.out, "%serror: %v\n", s.opts.OutputPrefix, err)
			if firstErr == nil {
				firstErr = err
			}
			if s.opts.StopOnError {
				return firstErr
			}
			continue
		}
		fmt.Fprintf(s.out, "%s%s\n", s.opts.OutputPrefix, result)
	}
	return firstErr
}

// Answer runs a single question and renders its result as text.
func (s *Session) Answer(q Query, input string) (string, error) {
	var (
		result string
		err    error
	)
	switch q {
	case QueryPresses:
		var n int
		if n, err = s.keypad.Presses(input); err == nil {
			result = strconv.Itoa(n)
		}
	case QueryNumber:
		result, err = s.keypad.Number(input)
	case QueryCombinations:
		var combos []string
		if combos, err = s.keypad.Combinations(input); err == nil {
			result = utils.FormatList(combos)
		}
	case QueryWords:
		var words []string
		if words, err = suggest.WordsFor(s.keypad, input, s.source, s.dict); err == nil {
			result = utils.FormatList(words)
		}
	default:
		err = fmt.Errorf("unknown query %d", int(q))
	}
	if err != nil {
		return "", &QueryError{Query: q, Input: input, Err: err}
	}
	return result, nil
}

// readLine returns the next line without its line terminator. A final line
// without a newline still counts; running out of input entirely does not.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
