/*
Package estimate converts guess totals into crack-time estimates under
four fixed attacker throughput profiles.

The profiles are policy constants, documented here and stable across
releases:

  - online, throttled: 100 guesses per hour (rate-limited web login)
  - online, unthrottled: 10 guesses per second
  - offline, slow hash: 1e4 guesses per second (bcrypt/scrypt/argon2)
  - offline, fast hash: 1e10 guesses per second (MD5/SHA on GPUs)
*/
package estimate

import (
	"fmt"
	"math"
)

// Guesses-per-second constants for the four attacker profiles.
const (
	OnlineThrottledPerSecond   = 100.0 / 3600.0
	OnlineUnthrottledPerSecond = 10.0
	OfflineSlowHashPerSecond   = 1e4
	OfflineFastHashPerSecond   = 1e10
)

// Display bucket bounds in seconds.
const (
	minuteSeconds  = 60.0
	hourSeconds    = 60 * minuteSeconds
	daySeconds     = 24 * hourSeconds
	monthSeconds   = 31 * daySeconds
	yearSeconds    = 12 * monthSeconds
	centurySeconds = 100 * yearSeconds
)

// CrackTimes holds estimated seconds-to-crack per attacker profile.
type CrackTimes struct {
	OnlineThrottling100PerHour   float64
	OnlineNoThrottling10PerSec   float64
	OfflineSlowHashing1e4PerSec  float64
	OfflineFastHashing1e10PerSec float64
}

// CrackTimesDisplay holds the human-readable bucket per profile.
type CrackTimesDisplay struct {
	OnlineThrottling100PerHour   string
	OnlineNoThrottling10PerSec   string
	OfflineSlowHashing1e4PerSec  string
	OfflineFastHashing1e10PerSec string
}

// AttackTimes bundles both representations.
type AttackTimes struct {
	CrackTimesSeconds CrackTimes
	CrackTimesDisplay CrackTimesDisplay
}

// Times maps a guess total to crack-time estimates under all four
// profiles.
func Times(guesses float64) AttackTimes {
	seconds := CrackTimes{
		OnlineThrottling100PerHour:   guesses / OnlineThrottledPerSecond,
		OnlineNoThrottling10PerSec:   guesses / OnlineUnthrottledPerSecond,
		OfflineSlowHashing1e4PerSec:  guesses / OfflineSlowHashPerSecond,
		OfflineFastHashing1e10PerSec: guesses / OfflineFastHashPerSecond,
	}
	return AttackTimes{
		CrackTimesSeconds: seconds,
		CrackTimesDisplay: CrackTimesDisplay{
			OnlineThrottling100PerHour:   DisplayTime(seconds.OnlineThrottling100PerHour),
			OnlineNoThrottling10PerSec:   DisplayTime(seconds.OnlineNoThrottling10PerSec),
			OfflineSlowHashing1e4PerSec:  DisplayTime(seconds.OfflineSlowHashing1e4PerSec),
			OfflineFastHashing1e10PerSec: DisplayTime(seconds.OfflineFastHashing1e10PerSec),
		},
	}
}

// DisplayTime renders a seconds estimate into its human bucket.
func DisplayTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minuteSeconds:
		return pluralize(seconds, "second")
	case seconds < hourSeconds:
		return pluralize(seconds/minuteSeconds, "minute")
	case seconds < daySeconds:
		return pluralize(seconds/hourSeconds, "hour")
	case seconds < monthSeconds:
		return pluralize(seconds/daySeconds, "day")
	case seconds < yearSeconds:
		return pluralize(seconds/monthSeconds, "month")
	case seconds < centurySeconds:
		return pluralize(seconds/yearSeconds, "year")
	default:
		return "centuries"
	}
}

func pluralize(value float64, unit string) string {
	count := int64(math.Round(value))
	if count == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", count, unit)
}
