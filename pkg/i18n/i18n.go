/*
Package i18n resolves feedback message keys to display text.

Catalogs are plain maps from language tag to key/text pairs. Lookup
walks a fallback chain: the exact tag, then any language aliases, then
the base tag before the underscore, then the default language, and
finally the key itself so a missing entry never turns into an empty
string.

Chinese tags get a dedicated alias chain (exact tag, then zh_CN, then
zh). Upstream sources disagree on whether zh_CN or zh_Hans should be
the canonical alias target; this package follows the zh_CN convention
and treats the question as catalog policy.
*/
package i18n

import (
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLang is the final fallback language.
const DefaultLang = "en"

// Catalog maps language tag -> message key -> display text.
type Catalog map[string]map[string]string

// Translator resolves one message key.
type Translator func(key string) string

// New returns a Translator over catalog for the given language tag.
// An empty tag means the default language.
func New(catalog Catalog, lang string) Translator {
	chain := fallbackChain(lang)
	return func(key string) string {
		for _, tag := range chain {
			if entries, ok := catalog[tag]; ok {
				if text, ok := entries[key]; ok {
					return text
				}
			}
		}
		log.Debugf("no translation for key %q in chain %v", key, chain)
		return key
	}
}

// fallbackChain builds the ordered list of language tags to try.
func fallbackChain(lang string) []string {
	if lang == "" {
		return []string{DefaultLang}
	}

	var chain []string
	seen := make(map[string]bool)
	add := func(tag string) {
		if tag != "" && !seen[tag] {
			seen[tag] = true
			chain = append(chain, tag)
		}
	}

	add(lang)
	if strings.HasPrefix(strings.ToLower(lang), "zh") {
		add("zh_CN")
		add("zh")
	}
	if base, _, found := strings.Cut(lang, "_"); found {
		add(base)
	}
	add(DefaultLang)
	return chain
}

// Builtin is the catalog shipped with the module. English is
// complete; other languages may cover a subset and fall back.
var Builtin = Catalog{
	"en": {
		"warnings.top10":                  "This is a top-10 common password.",
		"warnings.top100":                 "This is a top-100 common password.",
		"warnings.common":                 "This is a very common password.",
		"warnings.similar_to_common":      "This is similar to a commonly used password.",
		"warnings.word_by_itself":         "A word by itself is easy to guess.",
		"warnings.names_by_themselves":    "Names and surnames by themselves are easy to guess.",
		"warnings.common_names":           "Common names and surnames are easy to guess.",
		"warnings.straight_row":           "Straight rows of keys are easy to guess.",
		"warnings.short_keyboard_run":     "Short keyboard patterns are easy to guess.",
		"warnings.simple_repeat":          "Repeats like \"aaa\" are easy to guess.",
		"warnings.extended_repeat":        "Repeats like \"abcabcabc\" are only slightly harder to guess than \"abc\".",
		"warnings.sequences":              "Sequences like \"abc\" or \"6543\" are easy to guess.",
		"warnings.recent_years":           "Recent years are easy to guess.",
		"warnings.dates":                  "Dates are often easy to guess.",
		"suggestions.use_words":           "Use a few words, avoid common phrases.",
		"suggestions.no_need_symbols":     "No need for symbols, digits, or uppercase letters.",
		"suggestions.another_word":        "Add another word or two. Uncommon words are better.",
		"suggestions.capitalization":      "Capitalization doesn't help very much.",
		"suggestions.all_uppercase":       "All-uppercase is almost as easy to guess as all-lowercase.",
		"suggestions.reversed":            "Reversed words aren't much harder to guess.",
		"suggestions.leet":                "Predictable substitutions like '@' instead of 'a' don't help very much.",
		"suggestions.longer_keyboard_run": "Use a longer keyboard pattern with more turns.",
		"suggestions.repeated":            "Avoid repeated words and characters.",
		"suggestions.sequences":           "Avoid sequences.",
		"suggestions.recent_years":        "Avoid recent years.",
		"suggestions.associated_years":    "Avoid years that are associated with you.",
		"suggestions.dates":               "Avoid dates and years that are associated with you.",
	},
	"zh_CN": {
		"warnings.top10":           "这是一个最常见的密码（前10名）。",
		"warnings.top100":          "这是一个最常见的密码（前100名）。",
		"warnings.common":          "这是一个非常常见的密码。",
		"warnings.word_by_itself":  "单个单词很容易被猜到。",
		"warnings.sequences":       "像 \"abc\" 或 \"6543\" 这样的序列很容易被猜到。",
		"suggestions.use_words":    "使用几个单词，避免常见短语。",
		"suggestions.another_word": "再加一两个单词，少见的单词更好。",
	},
}
