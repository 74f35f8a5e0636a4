/*
Package strength is the top-level password guessability estimator.

An Evaluator owns an immutable dictionary snapshot and runs the full
pipeline per call: pattern matching, optimal-sequence scoring, crack
time estimation, and feedback key selection. Evaluations are pure
reads over the snapshot, so one Evaluator serves any number of
goroutines; rebuilding the snapshot (new user inputs) swaps in a fresh
one under a lock rather than mutating the old.
*/
package strength

import (
	"errors"
	"sync"
	"time"

	"github.com/crackest/crackest/pkg/dictionary"
	"github.com/crackest/crackest/pkg/estimate"
	"github.com/crackest/crackest/pkg/feedback"
	"github.com/crackest/crackest/pkg/i18n"
	"github.com/crackest/crackest/pkg/match"
	"github.com/crackest/crackest/pkg/scoring"
)

// DefaultMaxLength bounds evaluation cost. Passwords longer than the
// configured maximum are rejected before any matching work.
const DefaultMaxLength = 72

// ErrPasswordTooLong is returned when the password exceeds the
// evaluator's maximum length.
var ErrPasswordTooLong = errors.New("password exceeds maximum length")

// Options configures an Evaluator.
type Options struct {
	// Lang selects the feedback rendering language. Empty means
	// English.
	Lang string
	// MaxLength overrides DefaultMaxLength when positive.
	MaxLength int
	// UserInputs seeds the lowest-priority dictionary with
	// caller-specific words (username, email, site name). Non-string
	// values are coerced to text, never rejected.
	UserInputs []any
	// ExtraDictionaries adds named frequency-ordered word lists on
	// top of the embedded ones.
	ExtraDictionaries map[string][]string
	// Translate overrides the builtin catalog translator.
	Translate i18n.Translator
}

// Result is one password evaluation.
type Result struct {
	Guesses           float64
	GuessesLog10      float64
	Sequence          []match.Match
	Score             int
	CrackTimesSeconds estimate.CrackTimes
	CrackTimesDisplay estimate.CrackTimesDisplay
	Feedback          feedback.Feedback
	CalcTime          time.Duration
}

// Evaluator caches a dictionary snapshot and translations across
// calls. Safe for concurrent use.
type Evaluator struct {
	mu        sync.RWMutex
	opts      Options
	suite     *match.Suite
	translate i18n.Translator

	lastPassword string
	lastResult   *Result
}

// NewEvaluator builds the snapshot once and returns a ready Evaluator.
func NewEvaluator(opts Options) *Evaluator {
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	translate := opts.Translate
	if translate == nil {
		translate = i18n.New(i18n.Builtin, opts.Lang)
	}
	e := &Evaluator{opts: opts, translate: translate}
	e.suite = buildSuite(opts)
	return e
}

// buildSuite assembles an immutable snapshot and its matcher suite.
// The scoring package prices repeated base tokens through the
// BaseScorer hook.
func buildSuite(opts Options) *match.Suite {
	b := dictionary.NewBuilder()
	lists := dictionary.BuiltinLists()
	for _, name := range []string{"passwords", "english", "names", "surnames"} {
		if words, ok := lists[name]; ok {
			b.AddList(name, words)
		}
	}
	for name, words := range opts.ExtraDictionaries {
		b.AddList(name, words)
	}
	b.AddUserInputs(opts.UserInputs)
	snap := b.Build()

	return match.NewSuite(snap, func(token string, matches []match.Match) (float64, []match.Match) {
		r := scoring.Optimal(token, matches)
		return r.Guesses, r.Sequence
	})
}

// Evaluate runs the full pipeline on password.
func (e *Evaluator) Evaluate(password string) (*Result, error) {
	e.mu.RLock()
	suite := e.suite
	maxLength := e.opts.MaxLength
	e.mu.RUnlock()

	result, err := evaluateWith(suite, password, maxLength)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.lastPassword = password
	e.lastResult = result
	e.mu.Unlock()
	return result, nil
}

// EvaluateWith runs the pipeline with request-scoped user inputs
// layered on top of the evaluator's configured dictionaries. The
// inputs live only for this call; the shared snapshot is untouched,
// so a later Evaluate never sees another caller's words.
func (e *Evaluator) EvaluateWith(password string, userInputs []any) (*Result, error) {
	if len(userInputs) == 0 {
		return e.Evaluate(password)
	}

	e.mu.RLock()
	opts := e.opts
	e.mu.RUnlock()
	opts.UserInputs = userInputs

	result, err := evaluateWith(buildSuite(opts), password, opts.MaxLength)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.lastPassword = password
	e.lastResult = result
	e.mu.Unlock()
	return result, nil
}

// SetUserInputs replaces the caller-specific word list and publishes
// a freshly built snapshot. In-flight evaluations keep reading the
// old snapshot; they never observe a partial build.
func (e *Evaluator) SetUserInputs(inputs []any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.UserInputs = inputs
	e.suite = buildSuite(e.opts)
}

// LastResult returns the most recent evaluation, or nil.
func (e *Evaluator) LastResult() *Result {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastResult
}

// LastPassword returns the most recently evaluated password.
func (e *Evaluator) LastPassword() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastPassword
}

// Translate resolves a feedback key in the evaluator's language.
func (e *Evaluator) Translate(key string) string {
	return e.translate(key)
}

// RenderFeedback resolves a result's feedback keys to display text.
func (e *Evaluator) RenderFeedback(r *Result) feedback.Feedback {
	return r.Feedback.Render(feedback.Translator(e.translate))
}

func evaluateWith(suite *match.Suite, password string, maxLength int) (*Result, error) {
	if len([]rune(password)) > maxLength {
		return nil, ErrPasswordTooLong
	}

	start := time.Now()
	matches := suite.Omnimatch(password)
	scored := scoring.Optimal(password, matches)
	times := estimate.Times(scored.Guesses)

	return &Result{
		Guesses:           scored.Guesses,
		GuessesLog10:      scored.GuessesLog10,
		Sequence:          scored.Sequence,
		Score:             scored.Score,
		CrackTimesSeconds: times.CrackTimesSeconds,
		CrackTimesDisplay: times.CrackTimesDisplay,
		Feedback:          feedback.ForResult(scored.Score, scored.Sequence),
		CalcTime:          time.Since(start),
	}, nil
}
