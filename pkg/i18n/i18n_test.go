package i18n

import "testing"

func TestBuiltinEnglish(t *testing.T) {
	translate := New(Builtin, "en")
	if got := translate("warnings.top10"); got == "warnings.top10" || got == "" {
		t.Errorf("top10 warning not resolved: %q", got)
	}
}

func TestEmptyLangMeansDefault(t *testing.T) {
	translate := New(Builtin, "")
	want := Builtin["en"]["suggestions.use_words"]
	if got := translate("suggestions.use_words"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestChineseCatalog(t *testing.T) {
	translate := New(Builtin, "zh_CN")
	if got := translate("warnings.top10"); got != Builtin["zh_CN"]["warnings.top10"] {
		t.Errorf("zh_CN top10: %q", got)
	}
	// Keys missing from the zh_CN catalog fall back to English.
	if got := translate("warnings.dates"); got != Builtin["en"]["warnings.dates"] {
		t.Errorf("zh_CN fallback for dates: %q", got)
	}
}

func TestChineseAliasChain(t *testing.T) {
	// Any zh variant routes through zh_CN before English.
	translate := New(Builtin, "zh_TW")
	if got := translate("warnings.top10"); got != Builtin["zh_CN"]["warnings.top10"] {
		t.Errorf("zh_TW should reach zh_CN: %q", got)
	}
}

func TestUnknownLangFallsBack(t *testing.T) {
	translate := New(Builtin, "xx_YY")
	if got := translate("warnings.top10"); got != Builtin["en"]["warnings.top10"] {
		t.Errorf("unknown lang should fall back to English: %q", got)
	}
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	translate := New(Builtin, "en")
	if got := translate("warnings.nonexistent"); got != "warnings.nonexistent" {
		t.Errorf("missing key should echo: %q", got)
	}
}

func TestFallbackChain(t *testing.T) {
	testCases := []struct {
		lang string
		want []string
	}{
		{"", []string{"en"}},
		{"en", []string{"en"}},
		{"de_AT", []string{"de_AT", "de", "en"}},
		{"zh_TW", []string{"zh_TW", "zh_CN", "zh", "en"}},
	}
	for _, tc := range testCases {
		got := fallbackChain(tc.lang)
		if len(got) != len(tc.want) {
			t.Errorf("%q: chain %v, want %v", tc.lang, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%q: chain %v, want %v", tc.lang, got, tc.want)
				break
			}
		}
	}
}
