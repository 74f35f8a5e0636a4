package match

import (
	"regexp"
	"strconv"
)

// Calendar bounds for date detection. Years outside the range are not
// treated as dates; two-digit years are widened around the century
// split below.
const (
	dateMinYear      = 1000
	dateMaxYear      = 2050
	centurySplitYear = 50
)

// dateSplits lists, per digit-string length, the positions at which a
// separator-free token can be cut into three day/month/year fields.
var dateSplits = map[int][][2]int{
	4: {{1, 2}, {2, 3}},
	5: {{1, 3}, {2, 3}},
	6: {{1, 2}, {2, 4}, {4, 5}},
	7: {{1, 3}, {2, 3}, {4, 5}, {4, 6}},
	8: {{2, 4}, {4, 6}},
}

var dateWithSeparator = regexp.MustCompile(`^(\d{1,4})([\s/\\_.-])(\d{1,2})[\s/\\_.-](\d{1,4})$`)

type dmy struct{ day, month, year int }

// DateMatch finds substrings that parse as a calendar date in some
// plausible day/month/year ordering, with or without a separator.
// Matches fully contained in another date match are dropped.
func (s *Suite) DateMatch(password string) []Match {
	runes := []rune(password)
	n := len(runes)
	var matches []Match

	// Separator-free: 4-8 consecutive digits, every registered split.
	for i := 0; i <= n-4; i++ {
		for length := 4; length <= 8; length++ {
			j := i + length - 1
			if j >= n {
				break
			}
			token := string(runes[i : j+1])
			if !allDigits(token) {
				continue
			}
			var candidates []dmy
			for _, split := range dateSplits[length] {
				k, l := split[0], split[1]
				ints := [3]int{atoi(token[:k]), atoi(token[k:l]), atoi(token[l:])}
				if d, ok := mapIntsToDMY(ints); ok {
					candidates = append(candidates, d)
				}
			}
			if len(candidates) == 0 {
				continue
			}
			best := candidates[0]
			for _, c := range candidates[1:] {
				if yearDistance(c.year) < yearDistance(best.year) {
					best = c
				}
			}
			matches = append(matches, Match{
				Pattern: PatternDate,
				I:       i,
				J:       j,
				Token:   token,
				Day:     best.day,
				Month:   best.month,
				Year:    best.year,
			})
		}
	}

	// With separator: 6-10 chars, same separator on both sides.
	for i := 0; i <= n-6; i++ {
		for length := 6; length <= 10; length++ {
			j := i + length - 1
			if j >= n {
				break
			}
			token := string(runes[i : j+1])
			groups := dateWithSeparator.FindStringSubmatch(token)
			if groups == nil {
				continue
			}
			sep := groups[2]
			if token[len(token)-len(groups[4])-1] != sep[0] {
				continue
			}
			ints := [3]int{atoi(groups[1]), atoi(groups[3]), atoi(groups[4])}
			d, ok := mapIntsToDMY(ints)
			if !ok {
				continue
			}
			matches = append(matches, Match{
				Pattern:   PatternDate,
				I:         i,
				J:         j,
				Token:     token,
				Day:       d.day,
				Month:     d.month,
				Year:      d.year,
				Separator: sep,
			})
		}
	}

	return filterContainedDates(matches)
}

// mapIntsToDMY decides whether three integers form a plausible date.
// The middle value can only be a day or month; the year sits at either
// end. Year-looking values (in calendar bounds) are preferred; if
// neither end looks like a full year, two-digit years are widened.
func mapIntsToDMY(ints [3]int) (dmy, bool) {
	if ints[1] > 31 || ints[1] <= 0 {
		return dmy{}, false
	}
	over12, over31, under1 := 0, 0, 0
	for _, v := range ints {
		if (v > 99 && v < dateMinYear) || v > dateMaxYear {
			return dmy{}, false
		}
		if v > 31 {
			over31++
		}
		if v > 12 {
			over12++
		}
		if v <= 0 {
			under1++
		}
	}
	if over31 >= 2 || over12 == 3 || under1 >= 2 {
		return dmy{}, false
	}

	yearSplits := [2]struct {
		year int
		rest [2]int
	}{
		{ints[2], [2]int{ints[0], ints[1]}},
		{ints[0], [2]int{ints[1], ints[2]}},
	}

	for _, split := range yearSplits {
		if split.year >= dateMinYear && split.year <= dateMaxYear {
			if day, month, ok := mapIntsToDM(split.rest); ok {
				return dmy{day: day, month: month, year: split.year}, true
			}
			// A value in full-year range that yields no valid
			// day/month pairing rules the whole candidate out.
			return dmy{}, false
		}
	}
	for _, split := range yearSplits {
		if day, month, ok := mapIntsToDM(split.rest); ok {
			return dmy{day: day, month: month, year: widenYear(split.year)}, true
		}
	}
	return dmy{}, false
}

func mapIntsToDM(pair [2]int) (day, month int, ok bool) {
	for _, p := range [2][2]int{pair, {pair[1], pair[0]}} {
		if p[0] >= 1 && p[0] <= 31 && p[1] >= 1 && p[1] <= 12 {
			return p[0], p[1], true
		}
	}
	return 0, 0, false
}

func widenYear(year int) int {
	if year > 99 {
		return year
	}
	if year > centurySplitYear {
		return 1900 + year
	}
	return 2000 + year
}

// filterContainedDates drops date matches whose span lies strictly
// inside another date match's span.
func filterContainedDates(matches []Match) []Match {
	var kept []Match
	for i, m := range matches {
		contained := false
		for j, other := range matches {
			if i == j {
				continue
			}
			if other.I <= m.I && other.J >= m.J && (other.I != m.I || other.J != m.J) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, m)
		}
	}
	return kept
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
