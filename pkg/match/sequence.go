package match

import "unicode"

// SequenceMatch finds runs of three or more characters with a
// constant step of +-1 through an alphabet: "abcd", "4321", "XYZ".
// Wraparound inside a class counts ("yzab", "9012").
func (s *Suite) SequenceMatch(password string) []Match {
	runes := []rune(password)
	n := len(runes)
	if n < 3 {
		return nil
	}

	var matches []Match
	runStart := 0
	runDelta := 0
	flush := func(end int) {
		if end-runStart+1 >= 3 && runDelta != 0 {
			matches = append(matches, makeSequenceMatch(runes, runStart, end, runDelta))
		}
	}

	for k := 1; k < n; k++ {
		delta := stepDelta(runes[k-1], runes[k])
		if delta != 0 && delta == runDelta {
			continue
		}
		// A fresh pair can extend backwards by exactly one character.
		if delta != 0 && k-1 == runStart {
			runDelta = delta
			continue
		}
		flush(k - 1)
		runStart = k - 1
		runDelta = delta
	}
	flush(n - 1)
	return matches
}

// stepDelta returns +1 or -1 when cur follows prev with unit step in
// a shared class (including wraparound), otherwise 0.
func stepDelta(prev, cur rune) int {
	switch cur - prev {
	case 1:
		return 1
	case -1:
		return -1
	}
	switch {
	case isLowerSeq(prev) && isLowerSeq(cur):
		if prev == 'z' && cur == 'a' {
			return 1
		}
		if prev == 'a' && cur == 'z' {
			return -1
		}
	case isUpperSeq(prev) && isUpperSeq(cur):
		if prev == 'Z' && cur == 'A' {
			return 1
		}
		if prev == 'A' && cur == 'Z' {
			return -1
		}
	case isDigitSeq(prev) && isDigitSeq(cur):
		if prev == '9' && cur == '0' {
			return 1
		}
		if prev == '0' && cur == '9' {
			return -1
		}
	}
	return 0
}

func makeSequenceMatch(runes []rune, i, j, delta int) Match {
	first := runes[i]
	name := "unicode"
	space := 26
	switch {
	case isLowerSeq(first):
		name, space = "lower", 26
	case isUpperSeq(first):
		name, space = "upper", 26
	case isDigitSeq(first):
		name, space = "digits", 10
	case unicode.IsLetter(first):
		name, space = "unicode", 26
	}
	return Match{
		Pattern:       PatternSequence,
		I:             i,
		J:             j,
		Token:         string(runes[i : j+1]),
		SequenceName:  name,
		SequenceSpace: space,
		Ascending:     delta > 0,
	}
}

func isLowerSeq(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpperSeq(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigitSeq(r rune) bool { return r >= '0' && r <= '9' }
