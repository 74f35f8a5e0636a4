package match

import (
	"testing"

	"github.com/crackest/crackest/pkg/dictionary"
)

// testSuite builds a suite over a single ranked list, rank = position.
func testSuite(words ...string) *Suite {
	b := dictionary.NewBuilder()
	b.AddList("words", words)
	return NewSuite(b.Build(), nil)
}

func TestDictionaryMatch(t *testing.T) {
	s := testSuite("mother", "board", "motherboard")

	matches := s.DictionaryMatch("motherboard")
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(matches), matches)
	}

	expected := []struct {
		i, j int
		word string
		rank int
	}{
		{0, 5, "mother", 1},
		{0, 10, "motherboard", 3},
		{6, 10, "board", 2},
	}
	SortMatches(matches)
	for idx, want := range expected {
		got := matches[idx]
		if got.I != want.i || got.J != want.j || got.MatchedWord != want.word || got.Rank != want.rank {
			t.Errorf("match %d: got [%d,%d] %q rank %d, want [%d,%d] %q rank %d",
				idx, got.I, got.J, got.MatchedWord, got.Rank, want.i, want.j, want.word, want.rank)
		}
		if got.Pattern != PatternDictionary {
			t.Errorf("match %d: pattern %q", idx, got.Pattern)
		}
	}
}

func TestDictionaryMatchCaseInsensitive(t *testing.T) {
	s := testSuite("mother")

	matches := s.DictionaryMatch("MoTHEr")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	// Token keeps the original casing, MatchedWord is the dict entry.
	if matches[0].Token != "MoTHEr" || matches[0].MatchedWord != "mother" {
		t.Errorf("got token %q word %q", matches[0].Token, matches[0].MatchedWord)
	}
}

func TestDictionaryMatchNoHits(t *testing.T) {
	s := testSuite("mother")
	if matches := s.DictionaryMatch("xqzzvk"); len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestReverseDictionaryMatch(t *testing.T) {
	s := testSuite("password")

	matches := s.ReverseDictionaryMatch("drowssap")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.Pattern != PatternReverse {
		t.Errorf("pattern %q", m.Pattern)
	}
	if m.I != 0 || m.J != 7 {
		t.Errorf("span [%d,%d], want [0,7]", m.I, m.J)
	}
	if m.Token != "drowssap" || m.MatchedWord != "password" {
		t.Errorf("token %q word %q", m.Token, m.MatchedWord)
	}
}

func TestReverseDictionaryMatchEmbedded(t *testing.T) {
	s := testSuite("star")

	matches := s.ReverseDictionaryMatch("xxratsxx")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].I != 2 || matches[0].J != 5 {
		t.Errorf("span [%d,%d], want [2,5]", matches[0].I, matches[0].J)
	}
}

func TestLeetMatch(t *testing.T) {
	s := testSuite("password")

	matches := s.LeetMatch("p4ssw0rd")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	m := matches[0]
	if m.Pattern != PatternLeet || m.MatchedWord != "password" {
		t.Errorf("got pattern %q word %q", m.Pattern, m.MatchedWord)
	}
	if len(m.Substitutions) != 2 {
		t.Errorf("expected 2 substitutions, got %v", m.Substitutions)
	}
	if m.Substitutions['4'] != 'a' || m.Substitutions['0'] != 'o' {
		t.Errorf("wrong substitutions: %v", m.Substitutions)
	}
}

func TestLeetMatchAmbiguousSub(t *testing.T) {
	// '1' can stand for 'i' or 'l'; both interpretations are tried.
	s := testSuite("wild", "will")

	matches := s.LeetMatch("w1ld")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].MatchedWord != "wild" || matches[0].Substitutions['1'] != 'i' {
		t.Errorf("got word %q subs %v", matches[0].MatchedWord, matches[0].Substitutions)
	}
}

func TestLeetMatchSkipsPlainWords(t *testing.T) {
	// No substitution used means the dictionary matcher's territory.
	s := testSuite("password")
	if matches := s.LeetMatch("password"); len(matches) != 0 {
		t.Errorf("expected no leet matches for plain word, got %+v", matches)
	}
}

func TestLeetMatchSkipsSingleChar(t *testing.T) {
	s := testSuite("i")
	if matches := s.LeetMatch("1"); len(matches) != 0 {
		t.Errorf("single-char leet matches carry no signal, got %+v", matches)
	}
}
