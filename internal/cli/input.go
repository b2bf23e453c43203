// Package cli handles cmd line input and suggestions for debugging the index
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bastiangx/autocorrect/internal/logger"
	"github.com/bastiangx/autocorrect/internal/utils"
	"github.com/bastiangx/autocorrect/pkg/config"
	"github.com/bastiangx/autocorrect/pkg/dictionary"
	"github.com/bastiangx/autocorrect/pkg/suggest"
	"github.com/charmbracelet/log"
)

// wordsLimit caps the :words listing.
const wordsLimit = 20

// InputHandler reads prefixes and commands line by line and prints ranked
// suggestions. Lines starting with ':' are commands:
//
//	:words <prefix>   list vocabulary words under prefix
//	:stats            print index statistics
//	:add <word>       record one occurrence of word
type InputHandler struct {
	completer    suggest.ICompleter
	vocab        *dictionary.Vocabulary
	config       config.CliConfig
	out          *log.Logger
	requestCount int
}

// NewInputHandler creates a handler. vocab may be nil, which disables :words.
func NewInputHandler(completer suggest.ICompleter, vocab *dictionary.Vocabulary, cfg config.CliConfig) *InputHandler {
	return &InputHandler{
		completer: completer,
		vocab:     vocab,
		config:    cfg,
		out:       logger.New(""),
	}
}

// SetOutput redirects what the handler prints.
func (h *InputHandler) SetOutput(w io.Writer) {
	h.out = logger.NewWithConfig(w, "", log.GetLevel(), false, false)
}

// Start runs the input loop on stdin.
func (h *InputHandler) Start() error {
	h.out.Print("autocorrect CLI")
	h.out.Print("type a prefix and press Enter to see suggestions, :stats, :words <prefix> or :add <word> (Ctrl+C to exit):")
	return h.Run(os.Stdin)
}

// Run processes every line of r. It returns nil once r is exhausted.
func (h *InputHandler) Run(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			h.handleInput(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	if strings.HasPrefix(line, ":") {
		h.handleCommand(line)
		return
	}
	h.handlePrefix(line)
}

func (h *InputHandler) handleCommand(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":stats":
		stats := h.completer.Stats()
		keys := make([]string, 0, len(stats))
		for k := range stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			h.out.Printf("%-14s %12s", k, utils.FormatWithCommas(stats[k]))
		}
	case ":words":
		if h.vocab == nil {
			h.out.Print("No vocabulary loaded")
			return
		}
		prefix := ""
		if len(fields) > 1 {
			prefix = fields[1]
		}
		entries := h.vocab.Words(prefix, wordsLimit)
		if len(entries) == 0 {
			h.out.Printf("No words under '%s'", prefix)
			return
		}
		for i, e := range entries {
			h.out.Printf("%2d. %-30s (freq: %8s)", i+1, e.Word, utils.FormatWithCommas(e.Frequency))
		}
	case ":add":
		if len(fields) != 2 {
			h.out.Print("usage: :add <word>")
			return
		}
		word := fields[1]
		if err := h.completer.AddWord(word, 1); err != nil {
			h.out.Printf("Cannot add '%s': %v", word, err)
			return
		}
		if h.vocab != nil {
			if err := h.vocab.AddWord(word, 1); err != nil {
				log.Warnf("Vocabulary rejected '%s': %v", word, err)
			}
		}
		h.out.Printf("Added '%s'", word)
	default:
		h.out.Printf("Unknown command: %s", fields[0])
	}
}

func (h *InputHandler) handlePrefix(prefix string) {
	if len(prefix) > h.config.MaxPrefix {
		h.out.Printf("Prefix too long: %d > %d", len(prefix), h.config.MaxPrefix)
		return
	}

	start := time.Now()
	var (
		suggestions []suggest.Suggestion
		err         error
	)
	if h.config.Correct {
		suggestions, err = h.completer.Correct(prefix, suggest.MaxSuggestions)
	} else {
		suggestions, err = h.completer.Complete(prefix, suggest.MaxSuggestions)
	}
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)
	if err != nil {
		h.out.Printf("Invalid prefix '%s': %v", prefix, err)
		return
	}

	if len(suggestions) == 0 {
		h.out.Printf("No suggestions for '%s'", prefix)
		return
	}

	if suggestions[0].WasCorrected {
		h.out.Printf("'%s' is unknown, completing '%s':", prefix, suggestions[0].CorrectedPrefix)
	} else {
		h.out.Printf("Found %d suggestions for '%s':", len(suggestions), prefix)
	}
	for i, s := range suggestions {
		if h.config.ShowFreq {
			h.out.Printf("%2d. %-30s (freq: %8s)", i+1, s.Word, utils.FormatWithCommas(s.Frequency))
		} else {
			h.out.Print(fmt.Sprintf("%2d. %s", i+1, s.Word))
		}
	}
}
