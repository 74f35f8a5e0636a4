package match

import "regexp"

// Named fixed patterns. Only recent calendar years ship by default;
// the table keeps the door open for more without touching the
// matcher.
var namedRegexen = []struct {
	name string
	re   *regexp.Regexp
}{
	{"recent_year", regexp.MustCompile(`19\d\d|20\d\d`)},
}

// RegexMatch scans for the named fixed patterns.
func (s *Suite) RegexMatch(password string) []Match {
	byteToRune := byteToRuneIndex(password)
	var matches []Match
	for _, entry := range namedRegexen {
		for _, loc := range entry.re.FindAllStringIndex(password, -1) {
			i := byteToRune[loc[0]]
			j := byteToRune[loc[1]] - 1
			matches = append(matches, Match{
				Pattern:   PatternRegex,
				I:         i,
				J:         j,
				Token:     password[loc[0]:loc[1]],
				RegexName: entry.name,
			})
		}
	}
	return matches
}

// byteToRuneIndex maps every byte offset of s (plus len(s)) to its
// rune index, so regexp byte locations line up with rune spans.
func byteToRuneIndex(s string) map[int]int {
	idx := make(map[int]int, len(s)+1)
	runeIdx := 0
	for byteIdx := range s {
		idx[byteIdx] = runeIdx
		runeIdx++
	}
	idx[len(s)] = runeIdx
	return idx
}
