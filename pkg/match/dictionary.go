package match

// DictionaryMatch finds every substring that is a word in any ranked
// dictionary. For each start offset it walks the snapshot tries with a
// single prefix visit, so cost is linear in password length times the
// number of words actually present.
func (s *Suite) DictionaryMatch(password string) []Match {
	runes := []rune(password)
	return s.dictionaryMatchRunes(runes, lowerRunes(runes))
}

func (s *Suite) dictionaryMatchRunes(runes, lowered []rune) []Match {
	if s.snap == nil {
		return nil
	}
	var matches []Match
	for i := 0; i < len(lowered); i++ {
		segment := string(lowered[i:])
		for _, dict := range s.snap.Dicts() {
			d := dict
			d.VisitPrefixes(segment, func(word string, rank int) {
				length := len([]rune(word))
				j := i + length - 1
				matches = append(matches, Match{
					Pattern:        PatternDictionary,
					I:              i,
					J:              j,
					Token:          string(runes[i : j+1]),
					DictionaryName: d.Name(),
					MatchedWord:    word,
					Rank:           rank,
				})
			})
		}
	}
	return matches
}

// ReverseDictionaryMatch runs the dictionary matcher over the
// reversed password and maps spans back, catching words typed
// backwards ("drowssap").
func (s *Suite) ReverseDictionaryMatch(password string) []Match {
	runes := []rune(password)
	n := len(runes)
	reversed := make([]rune, n)
	for i, r := range runes {
		reversed[n-1-i] = r
	}

	matches := s.dictionaryMatchRunes(reversed, lowerRunes(reversed))
	for idx := range matches {
		m := &matches[idx]
		m.Pattern = PatternReverse
		m.I, m.J = n-1-m.J, n-1-m.I
		m.Token = string(runes[m.I : m.J+1])
	}
	return matches
}

// lookupRank probes every dictionary for an exact word and returns the
// best (lowest) rank found.
func (s *Suite) lookupRank(word string) (name string, rank int, ok bool) {
	if s.snap == nil {
		return "", 0, false
	}
	best := 0
	for _, d := range s.snap.Dicts() {
		if r, found := d.Rank(word); found && (best == 0 || r < best) {
			best = r
			name = d.Name()
		}
	}
	if best == 0 {
		return "", 0, false
	}
	return name, best, true
}
