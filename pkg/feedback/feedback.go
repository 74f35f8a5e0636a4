/*
Package feedback selects warning and suggestion keys for a scored
password.

The package never renders text: it picks stable message keys from the
dominant pattern in the winning sequence, and callers resolve keys to
display strings through an injected translator (see pkg/i18n).
*/
package feedback

import (
	"github.com/crackest/crackest/pkg/match"
)

// Message keys. Stable identifiers; translation catalogs key off
// these exact strings.
const (
	WarnTop10             = "warnings.top10"
	WarnTop100            = "warnings.top100"
	WarnCommon            = "warnings.common"
	WarnSimilarToCommon   = "warnings.similar_to_common"
	WarnWordByItself      = "warnings.word_by_itself"
	WarnNamesByThemselves = "warnings.names_by_themselves"
	WarnCommonNames       = "warnings.common_names"
	WarnStraightRow       = "warnings.straight_row"
	WarnShortKeyboardRun  = "warnings.short_keyboard_run"
	WarnSimpleRepeat      = "warnings.simple_repeat"
	WarnExtendedRepeat    = "warnings.extended_repeat"
	WarnSequences         = "warnings.sequences"
	WarnRecentYears       = "warnings.recent_years"
	WarnDates             = "warnings.dates"

	SuggestUseWords        = "suggestions.use_words"
	SuggestNoNeedSymbols   = "suggestions.no_need_symbols"
	SuggestAnotherWord     = "suggestions.another_word"
	SuggestCapitalization  = "suggestions.capitalization"
	SuggestAllUppercase    = "suggestions.all_uppercase"
	SuggestReversed        = "suggestions.reversed"
	SuggestLeet            = "suggestions.leet"
	SuggestLongerKeyboard  = "suggestions.longer_keyboard_run"
	SuggestRepeated        = "suggestions.repeated"
	SuggestSequences       = "suggestions.sequences"
	SuggestRecentYears     = "suggestions.recent_years"
	SuggestAssociatedYears = "suggestions.associated_years"
	SuggestDates           = "suggestions.dates"
)

// Feedback is a warning key (possibly empty) plus ordered suggestion
// keys.
type Feedback struct {
	Warning     string
	Suggestions []string
}

// Translator resolves a message key to display text.
type Translator func(key string) string

// Render resolves the feedback's keys through translate. A nil
// translator returns the keys unchanged.
func (f Feedback) Render(translate Translator) Feedback {
	if translate == nil {
		return f
	}
	rendered := Feedback{Suggestions: make([]string, 0, len(f.Suggestions))}
	if f.Warning != "" {
		rendered.Warning = translate(f.Warning)
	}
	for _, s := range f.Suggestions {
		rendered.Suggestions = append(rendered.Suggestions, translate(s))
	}
	return rendered
}

// ForResult picks feedback for a scored sequence. Strong passwords
// (score 3+) get none; an empty sequence gets the generic starter
// advice; otherwise the longest-span match in the sequence decides.
func ForResult(score int, sequence []match.Match) Feedback {
	if len(sequence) == 0 {
		return Feedback{Suggestions: []string{SuggestUseWords, SuggestNoNeedSymbols}}
	}
	if score > 2 {
		return Feedback{}
	}

	longest := sequence[0]
	for _, m := range sequence[1:] {
		if m.Length() > longest.Length() ||
			(m.Length() == longest.Length() && m.Guesses > longest.Guesses) {
			longest = m
		}
	}

	fb := matchFeedback(&longest, len(sequence) == 1)
	fb.Suggestions = append([]string{SuggestAnotherWord}, fb.Suggestions...)
	return fb
}

func matchFeedback(m *match.Match, soleMatch bool) Feedback {
	switch m.Pattern {
	case match.PatternDictionary, match.PatternReverse, match.PatternLeet:
		return dictionaryFeedback(m, soleMatch)
	case match.PatternSpatial:
		warning := WarnShortKeyboardRun
		if m.Turns == 1 {
			warning = WarnStraightRow
		}
		return Feedback{Warning: warning, Suggestions: []string{SuggestLongerKeyboard}}
	case match.PatternRepeat:
		warning := WarnExtendedRepeat
		if len([]rune(m.BaseToken)) == 1 {
			warning = WarnSimpleRepeat
		}
		return Feedback{Warning: warning, Suggestions: []string{SuggestRepeated}}
	case match.PatternSequence:
		return Feedback{Warning: WarnSequences, Suggestions: []string{SuggestSequences}}
	case match.PatternRegex:
		if m.RegexName == "recent_year" {
			return Feedback{
				Warning:     WarnRecentYears,
				Suggestions: []string{SuggestRecentYears, SuggestAssociatedYears},
			}
		}
	case match.PatternDate:
		return Feedback{Warning: WarnDates, Suggestions: []string{SuggestDates}}
	}
	return Feedback{}
}

func dictionaryFeedback(m *match.Match, soleMatch bool) Feedback {
	var warning string
	switch m.DictionaryName {
	case "passwords":
		plain := m.Pattern == match.PatternDictionary
		switch {
		case soleMatch && plain:
			switch {
			case m.Rank <= 10:
				warning = WarnTop10
			case m.Rank <= 100:
				warning = WarnTop100
			default:
				warning = WarnCommon
			}
		case m.GuessesLog10 <= 4:
			warning = WarnSimilarToCommon
		}
	case "english", "wordlist":
		if soleMatch {
			warning = WarnWordByItself
		}
	case "names", "surnames":
		if soleMatch {
			warning = WarnNamesByThemselves
		} else {
			warning = WarnCommonNames
		}
	}

	var suggestions []string
	token := []rune(m.Token)
	if len(token) > 0 && token[0] >= 'A' && token[0] <= 'Z' {
		suggestions = append(suggestions, SuggestCapitalization)
	}
	if isAllUpper(token) {
		suggestions = append(suggestions, SuggestAllUppercase)
	}
	if m.Pattern == match.PatternReverse && len(token) >= 4 {
		suggestions = append(suggestions, SuggestReversed)
	}
	if m.Pattern == match.PatternLeet {
		suggestions = append(suggestions, SuggestLeet)
	}
	return Feedback{Warning: warning, Suggestions: suggestions}
}

func isAllUpper(token []rune) bool {
	hasUpper := false
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
		}
	}
	return hasUpper
}
