package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/crackest/crackest/pkg/dictionary"
	"github.com/crackest/crackest/pkg/match"
)

func testSuite(words ...string) *match.Suite {
	b := dictionary.NewBuilder()
	b.AddList("words", words)
	return match.NewSuite(b.Build(), func(token string, matches []match.Match) (float64, []match.Match) {
		r := Optimal(token, matches)
		return r.Guesses, r.Sequence
	})
}

// coversExactly checks the sequence spans union to [0, n) with no
// gaps or overlaps.
func coversExactly(t *testing.T, password string, sequence []match.Match) {
	t.Helper()
	pos := 0
	for _, m := range sequence {
		if m.I != pos {
			t.Fatalf("gap or overlap at %d: %+v", pos, sequence)
		}
		pos = m.J + 1
	}
	if pos != len([]rune(password)) {
		t.Fatalf("sequence stops at %d of %d: %+v", pos, len([]rune(password)), sequence)
	}
}

func TestOptimalEmpty(t *testing.T) {
	r := Optimal("", nil)
	if r.Guesses != 1 || r.GuessesLog10 != 0 || r.Score != 0 {
		t.Errorf("empty password: %+v", r)
	}
	if len(r.Sequence) != 0 {
		t.Errorf("empty password sequence: %+v", r.Sequence)
	}
}

func TestOptimalBruteforceOnly(t *testing.T) {
	s := testSuite()
	r := Optimal("xq", s.Omnimatch("xq"))
	coversExactly(t, "xq", r.Sequence)
	if len(r.Sequence) != 1 || r.Sequence[0].Pattern != match.PatternBruteforce {
		t.Fatalf("expected single bruteforce match: %+v", r.Sequence)
	}
	if r.Guesses != math.Pow(26, 2) {
		t.Errorf("guesses %f, want 676", r.Guesses)
	}
}

func TestOptimalPrefersCheapCover(t *testing.T) {
	s := testSuite("password")
	r := Optimal("password", s.Omnimatch("password"))
	coversExactly(t, "password", r.Sequence)
	if len(r.Sequence) != 1 || r.Sequence[0].Pattern != match.PatternDictionary {
		t.Fatalf("expected single dictionary match: %+v", r.Sequence)
	}
	if r.Score != 0 {
		t.Errorf("rank-1 word scored %d", r.Score)
	}
}

func TestOptimalMixedCover(t *testing.T) {
	s := testSuite("password")
	pw := "xqzpassword"
	r := Optimal(pw, s.Omnimatch(pw))
	coversExactly(t, pw, r.Sequence)
	if len(r.Sequence) != 2 {
		t.Fatalf("expected bruteforce + dictionary: %+v", r.Sequence)
	}
	if r.Sequence[0].Pattern != match.PatternBruteforce || r.Sequence[1].Pattern != match.PatternDictionary {
		t.Errorf("wrong partition: %+v", r.Sequence)
	}
}

func TestOptimalDeterministic(t *testing.T) {
	s := testSuite("password", "drowssap", "pass")
	pw := "passwordpass1992"
	first := Optimal(pw, s.Omnimatch(pw))
	for i := 0; i < 5; i++ {
		again := Optimal(pw, s.Omnimatch(pw))
		if again.Guesses != first.Guesses || again.Score != first.Score {
			t.Fatalf("run %d: totals diverged: %f vs %f", i, again.Guesses, first.Guesses)
		}
		if !reflect.DeepEqual(again.Sequence, first.Sequence) {
			t.Fatalf("run %d: sequences diverged", i)
		}
	}
}

func TestOptimalGuessesAtLeastOne(t *testing.T) {
	s := testSuite("a")
	for _, pw := range []string{"", "a", "aa", "zzz"} {
		r := Optimal(pw, s.Omnimatch(pw))
		if r.Guesses < 1 {
			t.Errorf("%q: guesses %f below 1", pw, r.Guesses)
		}
	}
}

func TestOptimalTieFactor(t *testing.T) {
	// Two distinct patterns covering the same span at the same cost:
	// the winner's guesses are scaled by the tie-group size.
	matches := []match.Match{
		{Pattern: match.PatternDictionary, I: 0, J: 3, Token: "abcd", Rank: 200, Guesses: 200, GuessesLog10: math.Log10(200)},
		{Pattern: match.PatternSequence, I: 0, J: 3, Token: "abcd", Guesses: 200, GuessesLog10: math.Log10(200)},
	}
	r := Optimal("abcd", matches)
	if r.Guesses != 400 {
		t.Errorf("tie of 2 should double guesses: got %f", r.Guesses)
	}
	if len(r.Sequence) != 1 {
		t.Fatalf("sequence %+v", r.Sequence)
	}
	// Deterministic tie-break: dictionary sorts before sequence.
	if r.Sequence[0].Pattern != match.PatternDictionary {
		t.Errorf("tie-break picked %q", r.Sequence[0].Pattern)
	}
}

func TestScoreFromGuesses(t *testing.T) {
	testCases := []struct {
		guesses float64
		want    int
	}{
		{1, 0},
		{999, 0},
		{1e3, 1},
		{999999, 1},
		{1e6, 2},
		{1e8, 3},
		{1e10, 4},
		{1e20, 4},
	}
	for _, tc := range testCases {
		if got := ScoreFromGuesses(tc.guesses); got != tc.want {
			t.Errorf("ScoreFromGuesses(%g) = %d, want %d", tc.guesses, got, tc.want)
		}
	}
}
