package match

import "testing"

func TestSequenceMatch(t *testing.T) {
	s := testSuite()

	testCases := []struct {
		password  string
		i, j      int
		name      string
		ascending bool
	}{
		{"abcdef", 0, 5, "lower", true},
		{"fedcba", 0, 5, "lower", false},
		{"XYZ", 0, 2, "upper", true},
		{"456789", 0, 5, "digits", true},
		{"98765", 0, 4, "digits", false},
		// wraparound inside a class
		{"yzab", 0, 3, "lower", true},
		{"9012", 0, 3, "digits", true},
		// embedded run
		{"xx3456xx", 2, 5, "digits", true},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			matches := s.SequenceMatch(tc.password)
			if len(matches) != 1 {
				t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
			}
			m := matches[0]
			if m.I != tc.i || m.J != tc.j {
				t.Errorf("span [%d,%d], want [%d,%d]", m.I, m.J, tc.i, tc.j)
			}
			if m.SequenceName != tc.name {
				t.Errorf("name %q, want %q", m.SequenceName, tc.name)
			}
			if m.Ascending != tc.ascending {
				t.Errorf("ascending %v, want %v", m.Ascending, tc.ascending)
			}
			if m.Pattern != PatternSequence {
				t.Errorf("pattern %q", m.Pattern)
			}
		})
	}
}

func TestSequenceMatchNone(t *testing.T) {
	s := testSuite()
	for _, pw := range []string{"", "ab", "aceg", "a1b2", "zzzz"} {
		if matches := s.SequenceMatch(pw); len(matches) != 0 {
			t.Errorf("%q: expected no matches, got %+v", pw, matches)
		}
	}
}

func TestSequenceMatchDirectionChange(t *testing.T) {
	s := testSuite()

	matches := s.SequenceMatch("abccba")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(matches), matches)
	}
	if !matches[0].Ascending || matches[1].Ascending {
		t.Errorf("expected ascending then descending: %+v", matches)
	}
}
