/*
Package scoring selects the cheapest-to-guess explanation of a whole
password from overlapping candidate matches.

A dynamic program walks end positions left to right, choosing at each
position the candidate partition with the lowest total guess count and
synthesizing bruteforce filler for spans no matcher explains. The
result is an ordered, non-overlapping sequence whose spans cover the
password exactly, plus the total guess estimate and its 0-4 score.
*/
package scoring

import (
	"math"
	"sort"

	"github.com/crackest/crackest/pkg/match"
)

// Result is the optimizer's output for one password.
type Result struct {
	Guesses      float64
	GuessesLog10 float64
	Score        int
	Sequence     []match.Match
}

type candidate struct {
	m    match.Match
	cost float64
	// alternatives is the tie-group size used as the tie factor.
	alternatives int
}

// Optimal computes the minimum-guess non-overlapping cover of
// password from matches. It is deterministic: identical inputs always
// reconstruct the identical sequence.
//
// When several candidates of equal span length tie for the minimum at
// an end position, the winner's guesses are scaled by the group size:
// an attacker must also spend work deciding which equally plausible
// pattern was used. Ties break on smaller group, earlier start, then
// pattern tag order.
//
// Submatch floors (see match.EstimateGuesses) keep the total from
// collapsing when one more typed character completes a word.
func Optimal(password string, matches []match.Match) Result {
	runes := []rune(password)
	n := len(runes)
	if n == 0 {
		return Result{Guesses: 1, GuessesLog10: 0, Score: 0, Sequence: []match.Match{}}
	}

	for i := range matches {
		match.EstimateGuesses(&matches[i], password)
	}

	byEnd := make([][]match.Match, n)
	for _, m := range matches {
		if m.I < 0 || m.J >= n || m.I > m.J {
			continue
		}
		byEnd[m.J] = append(byEnd[m.J], m)
	}

	optimal := make([]float64, n+1)
	optimal[0] = 1
	chosen := make([]match.Match, n+1)
	prev := make([]int, n+1)

	for k := 1; k <= n; k++ {
		var cands []candidate
		for _, m := range byEnd[k-1] {
			cands = append(cands, candidate{m: m, cost: optimal[m.I] * m.Guesses})
		}
		for i := 0; i < k; i++ {
			// Adjacent bruteforce spans would just be one longer span.
			if i > 0 && chosen[i].Pattern == match.PatternBruteforce {
				continue
			}
			bf := match.MakeBruteforce(runes, i, k-1)
			match.EstimateGuesses(&bf, password)
			cands = append(cands, candidate{m: bf, cost: optimal[i] * bf.Guesses})
		}

		best, ties := pickCandidate(cands)
		total := best.cost * float64(ties)
		best.m.Guesses *= float64(ties)
		best.m.GuessesLog10 = math.Log10(best.m.Guesses)

		optimal[k] = total
		chosen[k] = best.m
		prev[k] = best.m.I
	}

	sequence := make([]match.Match, 0, 4)
	for k := n; k > 0; k = prev[k] {
		sequence = append(sequence, chosen[k])
	}
	for left, right := 0, len(sequence)-1; left < right; left, right = left+1, right-1 {
		sequence[left], sequence[right] = sequence[right], sequence[left]
	}

	guesses := optimal[n]
	return Result{
		Guesses:      guesses,
		GuessesLog10: math.Log10(guesses),
		Score:        ScoreFromGuesses(guesses),
		Sequence:     sequence,
	}
}

// pickCandidate selects the winning candidate and its tie-group size.
func pickCandidate(cands []candidate) (candidate, int) {
	minCost := math.Inf(1)
	for _, c := range cands {
		if c.cost < minCost {
			minCost = c.cost
		}
	}

	// Tie groups: candidates at minimal cost, keyed by span length.
	groupSizes := make(map[int]int)
	for _, c := range cands {
		if c.cost == minCost {
			groupSizes[c.m.Length()]++
		}
	}

	var tied []candidate
	for _, c := range cands {
		if c.cost == minCost {
			c.alternatives = groupSizes[c.m.Length()]
			tied = append(tied, c)
		}
	}

	sort.Slice(tied, func(a, b int) bool {
		if tied[a].alternatives != tied[b].alternatives {
			return tied[a].alternatives < tied[b].alternatives
		}
		if tied[a].m.I != tied[b].m.I {
			return tied[a].m.I < tied[b].m.I
		}
		return tied[a].m.Pattern < tied[b].m.Pattern
	})
	return tied[0], tied[0].alternatives
}
