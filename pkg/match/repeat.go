package match

// RepeatMatch finds consecutive repetitions of a base token, from
// "aaaa" to "abcabcabc". For each start position the scan prefers the
// longest total span, and among spans of equal length the shortest
// base token, so "aaaa" is four repeats of "a" rather than two of
// "aa". The base token is priced by re-running the full pipeline on
// it, which is what the injected BaseScorer is for.
func (s *Suite) RepeatMatch(password string) []Match {
	runes := []rune(password)
	n := len(runes)

	var matches []Match
	i := 0
	for i < n {
		bestEnd := -1
		bestBaseLen := 0
		maxBase := (n - i) / 2
		for baseLen := 1; baseLen <= maxBase; baseLen++ {
			count := repeatCount(runes, i, baseLen)
			if count < 2 {
				continue
			}
			end := i + count*baseLen - 1
			if end > bestEnd {
				bestEnd = end
				bestBaseLen = baseLen
			}
		}
		if bestEnd < 0 {
			i++
			continue
		}

		baseToken := string(runes[i : i+bestBaseLen])
		baseGuesses, _ := s.scoreBaseToken(baseToken)
		matches = append(matches, Match{
			Pattern:     PatternRepeat,
			I:           i,
			J:           bestEnd,
			Token:       string(runes[i : bestEnd+1]),
			BaseToken:   baseToken,
			BaseGuesses: baseGuesses,
			RepeatCount: (bestEnd - i + 1) / bestBaseLen,
		})
		i = bestEnd + 1
	}
	return matches
}

// repeatCount counts how many times the base token at [i, i+baseLen)
// repeats consecutively, including the first occurrence.
func repeatCount(runes []rune, i, baseLen int) int {
	count := 1
	for {
		start := i + count*baseLen
		if start+baseLen > len(runes) {
			return count
		}
		for k := 0; k < baseLen; k++ {
			if runes[start+k] != runes[i+k] {
				return count
			}
		}
		count++
	}
}

// scoreBaseToken prices a repeated base token. With a BaseScorer the
// base gets the same optimal-sequence treatment as a full password;
// without one it falls back to its bruteforce estimate.
func (s *Suite) scoreBaseToken(token string) (float64, []Match) {
	if s.scoreBase == nil {
		return bruteforceGuesses(token), nil
	}
	baseMatches := s.Omnimatch(token)
	return s.scoreBase(token, baseMatches)
}
