package match

import (
	"math"
	"regexp"
	"unicode"
)

// Estimator policy constants. These are stable, documented choices:
// changing any of them changes every reported guess count.
const (
	// referenceYear anchors year-distance estimates.
	referenceYear = 2025
	// minYearSpace is the smallest year range an attacker is assumed
	// to try around the reference year.
	minYearSpace = 20
	// dayMonthSpace is the number of distinct day/month combinations.
	dayMonthSpace = 365
	// separatorFactor multiplies date guesses when a separator is
	// present (choice of separator and placement).
	separatorFactor = 4

	// Alphabet cardinalities for bruteforce estimates, inferred from
	// the character classes present in a token.
	cardinalityLower   = 26
	cardinalityUpper   = 26
	cardinalityDigits  = 10
	cardinalitySymbols = 33
	cardinalityOther   = 100

	// allUppercaseCap bounds the all-caps multiplier for long words.
	allUppercaseCap = 8

	// Submatch floors: a pattern covering only part of the password
	// never gets cheaper than these, which also keeps totals from
	// collapsing when one more typed character completes a word.
	minSubmatchGuessesSingleChar = 10
	minSubmatchGuessesMultiChar  = 50
)

var startUpperRe = regexp.MustCompile(`^[A-Z][^A-Z]+$`)
var allUpperRe = regexp.MustCompile(`^[^a-z]+$`)
var allLowerRe = regexp.MustCompile(`^[^A-Z]+$`)

// EstimateGuesses annotates m with its estimated guess count. The
// estimate depends only on the match's own fields; password supplies
// the context needed for submatch floors.
func EstimateGuesses(m *Match, password string) float64 {
	if m.Guesses > 0 {
		return m.Guesses
	}

	var guesses float64
	switch m.Pattern {
	case PatternDictionary:
		guesses = dictionaryGuesses(m, false)
	case PatternReverse:
		guesses = dictionaryGuesses(m, true)
	case PatternLeet:
		guesses = dictionaryGuesses(m, false) * leetVariations(m)
	case PatternSpatial:
		guesses = spatialGuesses(m)
	case PatternRepeat:
		guesses = repeatGuesses(m)
	case PatternSequence:
		guesses = sequenceGuesses(m)
	case PatternRegex:
		guesses = regexGuesses(m)
	case PatternDate:
		guesses = dateGuesses(m)
	default:
		guesses = bruteforceGuesses(m.Token)
	}

	minGuesses := 1.0
	if m.Length() < len([]rune(password)) {
		if m.Length() == 1 {
			minGuesses = minSubmatchGuessesSingleChar
		} else {
			minGuesses = minSubmatchGuessesMultiChar
		}
	}
	if guesses < minGuesses {
		guesses = minGuesses
	}
	m.Guesses = guesses
	m.GuessesLog10 = math.Log10(guesses)
	return guesses
}

// MakeBruteforce builds the fallback match for an unexplained span.
func MakeBruteforce(runes []rune, i, j int) Match {
	return Match{
		Pattern: PatternBruteforce,
		I:       i,
		J:       j,
		Token:   string(runes[i : j+1]),
	}
}

// bruteforceGuesses assumes the attacker enumerates every string over
// the token's inferred alphabet at the token's length.
func bruteforceGuesses(token string) float64 {
	runes := []rune(token)
	if len(runes) == 0 {
		return 1
	}

	hasLower, hasUpper, hasDigit, hasSymbol, hasOther := false, false, false, false, false
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r < 128 || unicode.IsPunct(r) || unicode.IsSymbol(r) || r == ' ':
			hasSymbol = true
		default:
			hasOther = true
		}
	}

	cardinality := 0
	if hasLower {
		cardinality += cardinalityLower
	}
	if hasUpper {
		cardinality += cardinalityUpper
	}
	if hasDigit {
		cardinality += cardinalityDigits
	}
	if hasSymbol {
		cardinality += cardinalitySymbols
	}
	if hasOther {
		cardinality += cardinalityOther
	}
	if cardinality < 1 {
		cardinality = 1
	}

	guesses := math.Pow(float64(cardinality), float64(len(runes)))
	if math.IsInf(guesses, 0) || guesses < 1 {
		guesses = math.MaxFloat64
	}
	return guesses
}

func dictionaryGuesses(m *Match, reversed bool) float64 {
	guesses := float64(m.Rank) * uppercaseVariations(m.Token)
	if reversed {
		guesses *= 2
	}
	return guesses
}

// uppercaseVariations counts the capitalization patterns an attacker
// would try alongside the token's: all-lowercase costs nothing extra,
// a leading capital doubles, all-caps scales with capped length, and
// mixed case pays for every position combination.
func uppercaseVariations(token string) float64 {
	if allLowerRe.MatchString(token) || token == "" {
		return 1
	}
	if startUpperRe.MatchString(token) {
		return 2
	}
	if allUpperRe.MatchString(token) {
		length := len([]rune(token))
		if length > allUppercaseCap {
			length = allUppercaseCap
		}
		return float64(length)
	}

	upper, lower := 0, 0
	for _, r := range token {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		}
	}
	variations := 0.0
	limit := upper
	if lower < limit {
		limit = lower
	}
	for i := 1; i <= limit; i++ {
		variations += nCk(upper+lower, i)
	}
	if variations < 1 {
		return 1
	}
	return variations
}

// leetVariations counts the substitution combinations covered by the
// match's substitution map.
func leetVariations(m *Match) float64 {
	variations := 1.0
	lowered := lowerRunes([]rune(m.Token))
	for subbed, letter := range m.Substitutions {
		subCount, letterCount := 0, 0
		for _, r := range lowered {
			if r == subbed {
				subCount++
			}
			if r == letter {
				letterCount++
			}
		}
		if subCount == 0 || letterCount == 0 {
			// Fully substituted (or fully plain): the attacker still
			// has to decide whether substitution was used at all.
			variations *= 2
			continue
		}
		limit := subCount
		if letterCount < limit {
			limit = letterCount
		}
		possibilities := 0.0
		for i := 1; i <= limit; i++ {
			possibilities += nCk(subCount+letterCount, i)
		}
		variations *= possibilities
	}
	return variations
}

func spatialGuesses(m *Match) float64 {
	degree, starts := graphStats(m.Graph)
	length := m.Length()

	guesses := 0.0
	for i := 2; i <= length; i++ {
		possibleTurns := m.Turns
		if possibleTurns > i-1 {
			possibleTurns = i - 1
		}
		for j := 1; j <= possibleTurns; j++ {
			guesses += nCk(i-1, j-1) * starts * math.Pow(degree, float64(j))
		}
	}

	if m.ShiftedCount > 0 {
		shifted := m.ShiftedCount
		unshifted := length - shifted
		if unshifted == 0 {
			guesses *= 2
		} else {
			limit := shifted
			if unshifted < limit {
				limit = unshifted
			}
			variations := 0.0
			for i := 1; i <= limit; i++ {
				variations += nCk(shifted+unshifted, i)
			}
			guesses *= variations
		}
	}
	return guesses
}

func repeatGuesses(m *Match) float64 {
	base := m.BaseGuesses
	if base < 1 {
		base = bruteforceGuesses(m.BaseToken)
	}
	return base * float64(m.RepeatCount)
}

func sequenceGuesses(m *Match) float64 {
	runes := []rune(m.Token)
	var base float64
	switch first := runes[0]; {
	case first == 'a' || first == 'A' || first == 'z' || first == 'Z' ||
		first == '0' || first == '1' || first == '9':
		base = 4
	case first >= '0' && first <= '9':
		base = 10
	default:
		base = 26
	}
	if !m.Ascending {
		base *= 2
	}
	return base * float64(len(runes))
}

func regexGuesses(m *Match) float64 {
	switch m.RegexName {
	case "recent_year":
		return float64(yearDistance(atoi(m.Token)))
	default:
		return bruteforceGuesses(m.Token)
	}
}

func dateGuesses(m *Match) float64 {
	guesses := float64(yearDistance(m.Year)) * dayMonthSpace
	if m.Separator != "" {
		guesses *= separatorFactor
	}
	return guesses
}

// yearDistance is the assumed search span around the reference year,
// floored so even the current year costs something.
func yearDistance(year int) int {
	distance := year - referenceYear
	if distance < 0 {
		distance = -distance
	}
	if distance < minYearSpace {
		distance = minYearSpace
	}
	return distance
}

// nCk is the binomial coefficient, computed multiplicatively in
// floats since guess counts overflow integers fast.
func nCk(n, k int) float64 {
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result *= float64(n - k + i)
		result /= float64(i)
	}
	return result
}
