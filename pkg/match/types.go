/*
Package match recognizes guessable patterns inside passwords.

Eight scanners (dictionary, reverse dictionary, leet, spatial, repeat,
sequence, regex, date) each walk the password and emit candidate
matches. Scanners are pure: they read a shared immutable dictionary
snapshot and never mutate it, so a Suite can serve concurrent callers.
Overlapping and duplicate candidates are expected; picking the
cheapest non-overlapping cover is the scoring package's job.

The package also holds the per-pattern guess estimators, since every
match is annotated with its estimated guess count.
*/
package match

import (
	"sort"
	"unicode"

	"github.com/crackest/crackest/pkg/dictionary"
)

// Pattern tags the kind of structure a match recognizes. The string
// values are stable: they participate in deterministic tie-breaking
// and appear in results.
type Pattern string

const (
	PatternBruteforce Pattern = "bruteforce"
	PatternDate       Pattern = "date"
	PatternDictionary Pattern = "dictionary"
	PatternLeet       Pattern = "leet"
	PatternRegex      Pattern = "regex"
	PatternRepeat     Pattern = "repeat"
	PatternReverse    Pattern = "reverse_dictionary"
	PatternSequence   Pattern = "sequence"
	PatternSpatial    Pattern = "spatial"
)

// Match is one recognized pattern occupying the inclusive rune span
// [I, J] of the password. Pattern-specific fields are only meaningful
// for the corresponding tag.
type Match struct {
	Pattern Pattern
	I, J    int
	Token   string

	// Filled by the estimator.
	Guesses      float64
	GuessesLog10 float64

	// dictionary, reverse_dictionary, leet
	DictionaryName string
	MatchedWord    string
	Rank           int

	// leet
	Substitutions map[rune]rune // substituted char -> original letter
	SubDisplay    string

	// spatial
	Graph        string
	Turns        int
	ShiftedCount int

	// repeat
	BaseToken   string
	BaseGuesses float64
	RepeatCount int

	// sequence
	SequenceName  string
	SequenceSpace int
	Ascending     bool

	// regex
	RegexName string

	// date
	Day, Month, Year int
	Separator        string
}

// Length returns the number of runes the match covers.
func (m *Match) Length() int { return m.J - m.I + 1 }

// BaseScorer computes the cheapest guess total for a token given its
// own candidate matches. The repeat matcher uses it to price a
// repeated base token; the scoring package supplies the
// implementation so the two packages stay decoupled.
type BaseScorer func(token string, matches []Match) (guesses float64, sequence []Match)

// Suite bundles the eight matchers around one immutable dictionary
// snapshot. A Suite is stateless between calls and safe for
// concurrent use as long as the snapshot is not rebuilt underneath it.
type Suite struct {
	snap      *dictionary.Snapshot
	scoreBase BaseScorer
}

// NewSuite returns a Suite over snap. scoreBase may be nil, in which
// case repeated base tokens fall back to their bruteforce estimate.
func NewSuite(snap *dictionary.Snapshot, scoreBase BaseScorer) *Suite {
	return &Suite{snap: snap, scoreBase: scoreBase}
}

// Snapshot returns the dictionary snapshot the suite reads.
func (s *Suite) Snapshot() *dictionary.Snapshot { return s.snap }

// Omnimatch runs all eight matchers and returns every candidate,
// annotated with guess estimates and sorted by (I, J).
func (s *Suite) Omnimatch(password string) []Match {
	var matches []Match
	matches = append(matches, s.DictionaryMatch(password)...)
	matches = append(matches, s.ReverseDictionaryMatch(password)...)
	matches = append(matches, s.LeetMatch(password)...)
	matches = append(matches, s.SpatialMatch(password)...)
	matches = append(matches, s.RepeatMatch(password)...)
	matches = append(matches, s.SequenceMatch(password)...)
	matches = append(matches, s.RegexMatch(password)...)
	matches = append(matches, s.DateMatch(password)...)

	for i := range matches {
		EstimateGuesses(&matches[i], password)
	}
	SortMatches(matches)
	return matches
}

// SortMatches orders matches by start, then end, then pattern tag.
func SortMatches(matches []Match) {
	sort.Slice(matches, func(a, b int) bool {
		if matches[a].I != matches[b].I {
			return matches[a].I < matches[b].I
		}
		if matches[a].J != matches[b].J {
			return matches[a].J < matches[b].J
		}
		return matches[a].Pattern < matches[b].Pattern
	})
}

// lowerRunes lower-cases rune by rune so indices line up with the
// original password even for case pairs with different UTF-8 widths.
func lowerRunes(runes []rune) []rune {
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = toLowerRune(r)
	}
	return lowered
}

func toLowerRune(r rune) rune {
	if r < 128 {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}
	return unicode.ToLower(r)
}
