package estimate

import "testing"

func TestTimes(t *testing.T) {
	at := Times(1)
	if at.CrackTimesSeconds.OnlineThrottling100PerHour != 36 {
		t.Errorf("throttled seconds %f, want 36", at.CrackTimesSeconds.OnlineThrottling100PerHour)
	}
	if at.CrackTimesSeconds.OnlineNoThrottling10PerSec != 0.1 {
		t.Errorf("unthrottled seconds %f, want 0.1", at.CrackTimesSeconds.OnlineNoThrottling10PerSec)
	}
	if at.CrackTimesDisplay.OnlineThrottling100PerHour != "36 seconds" {
		t.Errorf("throttled display %q", at.CrackTimesDisplay.OnlineThrottling100PerHour)
	}
	if at.CrackTimesDisplay.OfflineFastHashing1e10PerSec != "less than a second" {
		t.Errorf("fast hash display %q", at.CrackTimesDisplay.OfflineFastHashing1e10PerSec)
	}
}

func TestTimesOrdering(t *testing.T) {
	// Slower attacker profiles always take longer.
	at := Times(1e8)
	s := at.CrackTimesSeconds
	if !(s.OnlineThrottling100PerHour > s.OnlineNoThrottling10PerSec &&
		s.OnlineNoThrottling10PerSec > s.OfflineSlowHashing1e4PerSec &&
		s.OfflineSlowHashing1e4PerSec > s.OfflineFastHashing1e10PerSec) {
		t.Errorf("profile ordering violated: %+v", s)
	}
}

func TestDisplayTime(t *testing.T) {
	testCases := []struct {
		seconds float64
		want    string
	}{
		{0.5, "less than a second"},
		{1, "1 second"},
		{45, "45 seconds"},
		{60, "1 minute"},
		{1800, "30 minutes"},
		{3600, "1 hour"},
		{86400, "1 day"},
		{86400 * 31, "1 month"},
		{86400 * 31 * 12, "1 year"},
		{86400 * 31 * 12 * 50, "50 years"},
		{86400 * 31 * 12 * 100, "centuries"},
		{1e18, "centuries"},
	}
	for _, tc := range testCases {
		if got := DisplayTime(tc.seconds); got != tc.want {
			t.Errorf("DisplayTime(%g) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
