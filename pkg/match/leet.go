package match

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// leetTable maps a letter to the characters commonly substituted for
// it. Built once; read-only afterwards.
var leetTable = map[rune][]rune{
	'a': {'4', '@'},
	'b': {'8'},
	'c': {'(', '{', '[', '<'},
	'e': {'3'},
	'g': {'6', '9'},
	'i': {'1', '!', '|'},
	'l': {'1', '|', '7'},
	'o': {'0'},
	's': {'$', '5'},
	't': {'+', '7'},
	'x': {'%'},
	'z': {'2'},
}

// maxLeetSubs caps the substitution-map enumeration. A 72-char
// password can in theory contain every ambiguous leet char at once;
// beyond the cap the rarest interpretations are dropped.
const maxLeetSubs = 512

// LeetMatch undoes leet substitutions and re-runs the dictionary
// matcher on each reachable interpretation. Only matches whose token
// actually uses at least one substitution are kept; bare dictionary
// hits are the dictionary matcher's business.
func (s *Suite) LeetMatch(password string) []Match {
	runes := []rune(password)
	lowered := lowerRunes(runes)

	subs := enumerateLeetSubs(relevantLeetSubs(lowered))
	var matches []Match
	for _, sub := range subs {
		if len(sub) == 0 {
			continue
		}
		translated := make([]rune, len(lowered))
		for i, r := range lowered {
			if letter, ok := sub[r]; ok {
				translated[i] = letter
			} else {
				translated[i] = r
			}
		}

		for _, dm := range s.dictionaryMatchRunes(runes, translated) {
			token := string(lowered[dm.I : dm.J+1])
			// A leet match must differ from the raw substring and be
			// longer than one char to carry any signal.
			if dm.Length() <= 1 || token == dm.MatchedWord {
				continue
			}
			used := make(map[rune]rune)
			for subbed, letter := range sub {
				if strings.ContainsRune(token, subbed) {
					used[subbed] = letter
				}
			}
			if len(used) == 0 {
				continue
			}
			m := dm
			m.Pattern = PatternLeet
			m.Substitutions = used
			m.SubDisplay = formatSubs(used)
			matches = append(matches, m)
		}
	}
	return matches
}

// relevantLeetSubs inverts leetTable down to the substitution chars
// actually present in the password: subChar -> candidate letters.
func relevantLeetSubs(lowered []rune) map[rune][]rune {
	present := make(map[rune]bool, len(lowered))
	for _, r := range lowered {
		present[r] = true
	}
	relevant := make(map[rune][]rune)
	for letter, subs := range leetTable {
		for _, sub := range subs {
			if present[sub] {
				relevant[sub] = append(relevant[sub], letter)
			}
		}
	}
	for _, letters := range relevant {
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	}
	return relevant
}

// enumerateLeetSubs expands ambiguous substitution chars ('1' is i or
// l) into every concrete substitution map, capped at maxLeetSubs.
func enumerateLeetSubs(relevant map[rune][]rune) []map[rune]rune {
	subChars := make([]rune, 0, len(relevant))
	for sub := range relevant {
		subChars = append(subChars, sub)
	}
	sort.Slice(subChars, func(i, j int) bool { return subChars[i] < subChars[j] })

	results := []map[rune]rune{{}}
	for _, sub := range subChars {
		var expanded []map[rune]rune
		for _, partial := range results {
			for _, letter := range relevant[sub] {
				next := make(map[rune]rune, len(partial)+1)
				for k, v := range partial {
					next[k] = v
				}
				next[sub] = letter
				expanded = append(expanded, next)
			}
		}
		if len(expanded) > maxLeetSubs {
			log.Debugf("leet substitution space capped at %d maps", maxLeetSubs)
			expanded = expanded[:maxLeetSubs]
		}
		results = expanded
	}
	return results
}

func formatSubs(subs map[rune]rune) string {
	keys := make([]rune, 0, len(subs))
	for k := range subs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, string(k)+" -> "+string(subs[k]))
	}
	return strings.Join(parts, ", ")
}
