package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bingoyahoo/t9/internal/logger"
	"github.com/bingoyahoo/t9/internal/utils"
	"github.com/bingoyahoo/t9/pkg/keypad"
	"github.com/bingoyahoo/t9/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler is a free-form loop: a word prints its key presses and
// number, a digit sequence prints its combinations, dictionary words and
// predictions. Useful for exploring a word list.
type InputHandler struct {
	keypad       *keypad.Keypad
	suggester    *suggest.Suggester
	maxDigits    int
	predictLimit int
	requestCount int
	in           io.Reader
	out          io.Writer
	logger       *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(kp *keypad.Keypad, suggester *suggest.Suggester, maxDigits, predictLimit int, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		keypad:       kp,
		suggester:    suggester,
		maxDigits:    maxDigits,
		predictLimit: predictLimit,
		in:           in,
		out:          out,
		logger:       logger.New("repl"),
	}
}

// Start reads lines until the input ends. Reaching EOF is not an error.
func (h *InputHandler) Start() error {
	h.logger.Print("t9 REPL")
	h.logger.Print("type a word or a digit sequence and press Enter (Ctrl+D to exit):")
	reader := bufio.NewReader(h.in)

	for {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			h.handleInput(line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handleInput routes one trimmed line by what it contains.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	start := time.Now()

	switch utils.Classify(line) {
	case utils.InputLetters:
		h.handleWord(line)
	case utils.InputDigits:
		h.handleDigits(line)
	default:
		h.logger.Errorf("Not a lowercase word or a digit sequence: '%s'", line)
		return
	}
	h.logger.Debugf("Took [ %v ] for '%s' (request %d)", time.Since(start), line, h.requestCount)
}

func (h *InputHandler) handleWord(word string) {
	presses, err := h.keypad.Presses(word)
	if err != nil {
		h.logger.Errorf("Key presses: %v", err)
		return
	}
	number, err := h.keypad.Number(word)
	if err != nil {
		h.logger.Errorf("Number: %v", err)
		return
	}
	fmt.Fprintf(h.out, "%s  presses: %d  number: %s\n", wordStyle.Render(word), presses, number)
}

func (h *InputHandler) handleDigits(digits string) {
	if h.maxDigits > 0 && len(digits) > h.maxDigits {
		h.logger.Errorf("Too many digits: %d (max %d)", len(digits), h.maxDigits)
		return
	}

	combos, err := h.keypad.Combinations(digits)
	if err != nil {
		h.logger.Errorf("Combinations: %v", err)
		return
	}
	fmt.Fprintf(h.out, "%d combinations: %s\n", len(combos), utils.FormatList(combos))

	if h.suggester == nil {
		return
	}
	words, err := h.suggester.Words(digits)
	if err != nil {
		h.logger.Errorf("Dictionary words: %v", err)
		return
	}
	fmt.Fprintf(h.out, "words: %s\n", utils.FormatList(words))

	predicted, err := h.suggester.Predict(digits, h.predictLimit)
	if err != nil {
		h.logger.Errorf("Predictions: %v", err)
		return
	}
	if len(predicted) == 0 {
		h.logger.Warnf("No predictions for '%s'", digits)
		return
	}
	fmt.Fprintf(h.out, "Found %d predictions for '%s':\n", len(predicted), digits)
	for i, w := range predicted {
		fmt.Fprintf(h.out, "%2d. %s\n", i+1, wordStyle.Render(w))
	}
}
