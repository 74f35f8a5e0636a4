package server

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/crackest/crackest/internal/logger"
	"github.com/crackest/crackest/pkg/strength"
)

// Server handles msgpack IPC requests over a reader/writer pair,
// normally stdin/stdout.
type Server struct {
	eval    *strength.Evaluator
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     interface {
		Debugf(format string, args ...interface{})
		Errorf(format string, args ...interface{})
	}
}

// NewServer creates an IPC server bound to stdin/stdout.
func NewServer(eval *strength.Evaluator) *Server {
	return NewServerWith(eval, os.Stdin, os.Stdout)
}

// NewServerWith creates a server on explicit streams, mainly for
// tests.
func NewServerWith(eval *strength.Evaluator, r io.Reader, w io.Writer) *Server {
	return &Server{
		eval:    eval,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.Default("ipc"),
	}
}

// Run announces readiness and processes requests until the input
// stream closes.
func (s *Server) Run() error {
	if err := s.encoder.Encode(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req EvaluateRequest
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("input stream closed, shutting down")
				return nil
			}
			s.log.Errorf("decode error: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req EvaluateRequest) {
	switch strings.ToLower(req.Cmd) {
	case "evaluate", "":
		s.handleEvaluate(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.send(EvaluateError{ID: req.ID, Error: "unknown command: " + req.Cmd, Code: 400})
	}
}

func (s *Server) handleEvaluate(req EvaluateRequest) {
	// User inputs are scoped to the request they arrive on; they must
	// not rebuild the shared snapshot or leak into later requests.
	var inputs []any
	for _, ui := range req.UserInputs {
		inputs = append(inputs, ui)
	}

	result, err := s.eval.EvaluateWith(req.Password, inputs)
	if err != nil {
		code := 500
		if errors.Is(err, strength.ErrPasswordTooLong) {
			code = 400
		}
		s.send(EvaluateError{ID: req.ID, Error: err.Error(), Code: code})
		return
	}

	rendered := s.eval.RenderFeedback(result)
	seq := make([]SequenceEntry, len(result.Sequence))
	for i, m := range result.Sequence {
		seq[i] = SequenceEntry{
			Pattern: string(m.Pattern),
			Token:   m.Token,
			I:       m.I,
			J:       m.J,
			Guesses: m.Guesses,
		}
	}

	s.send(EvaluateResponse{
		ID:           req.ID,
		Score:        result.Score,
		Guesses:      result.Guesses,
		GuessesLog10: result.GuessesLog10,
		Sequence:     seq,
		CrackTimes: map[string]string{
			"online_throttling_100_per_hour":       result.CrackTimesDisplay.OnlineThrottling100PerHour,
			"online_no_throttling_10_per_second":   result.CrackTimesDisplay.OnlineNoThrottling10PerSec,
			"offline_slow_hashing_1e4_per_second":  result.CrackTimesDisplay.OfflineSlowHashing1e4PerSec,
			"offline_fast_hashing_1e10_per_second": result.CrackTimesDisplay.OfflineFastHashing1e10PerSec,
		},
		Warning:     rendered.Warning,
		Suggestions: rendered.Suggestions,
		TimeTaken:   result.CalcTime.Microseconds(),
	})
}

func (s *Server) send(v interface{}) {
	if err := s.encoder.Encode(v); err != nil {
		s.log.Errorf("encode error: %v", err)
	}
}
