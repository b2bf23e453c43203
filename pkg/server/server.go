package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/autocorrect/pkg/config"
	"github.com/bastiangx/autocorrect/pkg/suggest"
	"github.com/bastiangx/autocorrect/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word completions
type Server struct {
	completer suggest.ICompleter
	config    config.ServerConfig
	decoder   *msgpack.Decoder
	writer    *bufio.Writer
	encoder   *msgpack.Encoder
	requests  int
}

// NewServer creates a completion server using stdin/stdout for IPC.
func NewServer(completer suggest.ICompleter, cfg config.ServerConfig) *Server {
	return NewServerWithIO(completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a completion server on the given streams.
func NewServerWithIO(completer suggest.ICompleter, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	writer := bufio.NewWriter(w)
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		writer:    writer,
		encoder:   msgpack.NewEncoder(writer),
	}
}

// Requests returns how many requests have been handled.
func (s *Server) Requests() int {
	return s.requests
}

// Start serves requests until the input ends. A clean EOF returns nil.
func (s *Server) Start() error {
	log.Debug("Starting msgpack server")
	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.Requests())
				return nil
			}
			log.Errorf("Reading request stream: %v", err)
			return fmt.Errorf("reading request stream: %w", err)
		}
		s.requests++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			log.Debugf("Malformed request: %v", err)
			if err := s.sendError("", "Invalid msgpack request", 400); err != nil {
				return err
			}
			continue
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the action and writes exactly one response.
func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case "", ActionComplete:
		return s.handleComplete(req, s.config.Correct)
	case ActionCorrect:
		return s.handleComplete(req, true)
	case ActionInsert:
		return s.handleInsert(req)
	case ActionStats:
		return s.send(StatsResponse{ID: req.ID, Status: "ok", Stats: s.completer.Stats()})
	case ActionHealth:
		return s.send(HealthResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleComplete(req Request, correct bool) error {
	prefix := req.Prefix
	if len(prefix) > s.config.MaxPrefix {
		log.Debug("Prefix is too long in request")
		return s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.config.MaxPrefix), 400)
	}

	start := time.Now()
	var (
		suggestions []suggest.Suggestion
		err         error
	)
	if correct {
		suggestions, err = s.completer.Correct(prefix, req.Limit)
	} else {
		suggestions, err = s.completer.Complete(prefix, req.Limit)
	}
	elapsed := time.Since(start)
	if err != nil {
		return s.sendFailure(req.ID, err)
	}

	response := CompletionResponse{
		ID:          req.ID,
		Suggestions: make([]CompletionSuggestion, len(suggestions)),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
	for i, sg := range suggestions {
		response.Suggestions[i] = CompletionSuggestion{
			Word:      sg.Word,
			Rank:      uint16(i + 1),
			Frequency: sg.Frequency,
		}
		response.Corrected = response.Corrected || sg.WasCorrected
	}
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)
	return s.send(response)
}

func (s *Server) handleInsert(req Request) error {
	if !s.config.AllowInsert {
		return s.sendError(req.ID, "Inserts are disabled", 403)
	}
	if req.Word == "" {
		return s.sendError(req.ID, "Missing 'w' parameter", 400)
	}
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return s.sendError(req.ID, fmt.Sprintf("Invalid count %d", count), 400)
	}
	if err := s.completer.AddWord(req.Word, count); err != nil {
		return s.sendFailure(req.ID, err)
	}
	return s.send(InsertResponse{ID: req.ID, Status: "ok", Word: req.Word, Count: count})
}

// sendFailure maps completer errors to codes.
func (s *Server) sendFailure(id string, err error) error {
	if errors.Is(err, trie.ErrInvalidChar) || errors.Is(err, trie.ErrEmptyWord) || errors.Is(err, trie.ErrFrequencyOverflow) {
		return s.sendError(id, err.Error(), 400)
	}
	log.Errorf("Request %s failed: %v", id, err)
	return s.sendError(id, "Internal server error", 500)
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(CompletionError{ID: id, Error: message, Code: code})
}

// send encodes one response and flushes it.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
