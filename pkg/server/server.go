package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bingoyahoo/t9/internal/logger"
	"github.com/bingoyahoo/t9/pkg/config"
	"github.com/bingoyahoo/t9/pkg/dictionary"
	"github.com/bingoyahoo/t9/pkg/keypad"
	"github.com/bingoyahoo/t9/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for keypad queries.
type Server struct {
	keypad       *keypad.Keypad
	suggester    *suggest.Suggester
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	writer       *bufio.Writer
	requestCount int
	logger       *log.Logger
}

// NewServer creates a server speaking over stdin/stdout.
func NewServer(kp *keypad.Keypad, suggester *suggest.Suggester, cfg *config.Config) *Server {
	return NewServerWithIO(kp, suggester, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
func NewServerWithIO(kp *keypad.Keypad, suggester *suggest.Suggester, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	bw := bufio.NewWriter(w)
	return &Server{
		keypad:    kp,
		suggester: suggester,
		config:    cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		encoder:   msgpack.NewEncoder(bw),
		writer:    bw,
		logger:    logger.New("ipc"),
	}
}

// Start announces readiness and serves requests until the input ends.
// A message that cannot be decoded leaves the stream unusable, so it is
// answered with an error and ends the loop.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed input", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.send(ErrorResponse{Error: "malformed request", Code: CodeBadRequest})
			return fmt.Errorf("decoding request: %w", err)
		}
		if err := s.send(s.Handle(req)); err != nil {
			return err
		}
	}
}

// Handle answers a single request.
func (s *Server) Handle(req Request) any {
	s.requestCount++
	start := time.Now()
	elapsed := func() int64 { return time.Since(start).Microseconds() }

	s.logger.Debug("Processing request", "id", req.ID, "op", req.Op, "in", req.Input)

	switch req.Op {
	case "health":
		return StatusResponse{ID: req.ID, Status: "ok"}

	case "presses":
		n, err := s.keypad.Presses(req.Input)
		if err != nil {
			return s.fail(req, err)
		}
		return PressesResponse{ID: req.ID, Op: req.Op, Presses: n, TimeTaken: elapsed()}

	case "number":
		num, err := s.keypad.Number(req.Input)
		if err != nil {
			return s.fail(req, err)
		}
		return NumberResponse{ID: req.ID, Op: req.Op, Number: num, TimeTaken: elapsed()}

	case "combinations", "words", "predict":
		if maxDigits := s.config.Server.MaxDigits; maxDigits > 0 && len(req.Input) > maxDigits {
			return s.fail(req, fmt.Errorf("too many digits: %d (max %d)", len(req.Input), maxDigits))
		}
		words, err := s.words(req)
		if err != nil {
			return s.fail(req, err)
		}
		return WordsResponse{ID: req.ID, Op: req.Op, Words: words, Count: len(words), TimeTaken: elapsed()}

	default:
		return s.fail(req, fmt.Errorf("unknown op: %q", req.Op))
	}
}

func (s *Server) words(req Request) ([]string, error) {
	switch req.Op {
	case "combinations":
		return s.keypad.Combinations(req.Input)
	case "words":
		return s.suggester.Words(req.Input)
	default:
		limit := req.Limit
		if limit < 1 {
			limit = s.config.Server.PredictLimit
		}
		return s.suggester.Predict(req.Input, limit)
	}
}

func (s *Server) fail(req Request, err error) ErrorResponse {
	code := CodeBadRequest
	if errors.Is(err, dictionary.ErrSourceUnavailable) {
		code = CodeUnavailable
	}
	s.logger.Warn("Request failed", "id", req.ID, "op", req.Op, "err", err)
	return ErrorResponse{ID: req.ID, Error: err.Error(), Code: code}
}

// send encodes one response and flushes it so the client sees it immediately.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return err
	}
	return s.writer.Flush()
}
