// Package cli handles cmd line input and evaluation display for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/crackest/crackest/pkg/strength"
)

// scoreStyles maps each score 0-4 to a colored badge.
var scoreStyles = [5]lipgloss.Style{
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#ea9d34", Dark: "#f6c177"}),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ebbcba"}),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#31748f"}),
}

var dimStyle = lipgloss.NewStyle().Faint(true)

// InputHandler processes passwords from stdin and prints the
// evaluation breakdown. It accepts flags to control whether the
// winning match sequence and crack times are shown.
type InputHandler struct {
	eval           *strength.Evaluator
	showSequence   bool
	showCrackTimes bool
	requestCount   int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(eval *strength.Evaluator, showSequence, showCrackTimes bool) *InputHandler {
	return &InputHandler{
		eval:           eval,
		showSequence:   showSequence,
		showCrackTimes: showCrackTimes,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("Crackest CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a password and press Enter to see its estimate (Ctrl+C to exit):")

	for {
		log.Print("> ")
		password, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimRight(password, "\r\n")
		if password == "" {
			continue
		}
		h.handleInput(password)
	}
}

// handleInput evaluates a single password and prints score, guess
// totals, crack times and feedback.
func (h *InputHandler) handleInput(password string) {
	h.requestCount++

	result, err := h.eval.Evaluate(password)
	if err != nil {
		log.Errorf("Evaluation failed: %v", err)
		return
	}

	log.Debugf("Took [ %v ] for %d chars", result.CalcTime, len([]rune(password)))

	badge := scoreStyles[result.Score].Render(fmt.Sprintf("score %d/4", result.Score))
	log.Printf("%s  (%.0f guesses, log10 %.2f)", badge, result.Guesses, result.GuessesLog10)

	if h.showCrackTimes {
		d := result.CrackTimesDisplay
		log.Printf("  %-28s %s", dimStyle.Render("online, throttled:"), d.OnlineThrottling100PerHour)
		log.Printf("  %-28s %s", dimStyle.Render("online, unthrottled:"), d.OnlineNoThrottling10PerSec)
		log.Printf("  %-28s %s", dimStyle.Render("offline, slow hash:"), d.OfflineSlowHashing1e4PerSec)
		log.Printf("  %-28s %s", dimStyle.Render("offline, fast hash:"), d.OfflineFastHashing1e10PerSec)
	}

	if h.showSequence {
		for i, m := range result.Sequence {
			clTok := fmt.Sprintf("\033[38;5;75m%s\033[0m", m.Token)
			log.Printf("%2d. %-30s [%d:%d] %-20s (guesses: %.0f)", i+1, clTok, m.I, m.J, m.Pattern, m.Guesses)
		}
	}

	rendered := h.eval.RenderFeedback(result)
	if rendered.Warning != "" {
		log.Warnf("%s", rendered.Warning)
	}
	for _, s := range rendered.Suggestions {
		log.Printf("  - %s", s)
	}
}
