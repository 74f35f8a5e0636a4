package scoring

// Guess thresholds for the 0-4 score. Fixed policy values: anything
// under a thousand guesses is trivially crackable, anything past ten
// billion holds up against fast offline attacks.
const (
	scoreThreshold1 = 1e3
	scoreThreshold2 = 1e6
	scoreThreshold3 = 1e8
	scoreThreshold4 = 1e10
)

// ScoreFromGuesses classifies a total guess count on the 0-4 scale.
func ScoreFromGuesses(guesses float64) int {
	switch {
	case guesses < scoreThreshold1:
		return 0
	case guesses < scoreThreshold2:
		return 1
	case guesses < scoreThreshold3:
		return 2
	case guesses < scoreThreshold4:
		return 3
	default:
		return 4
	}
}
