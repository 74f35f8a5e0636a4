package dictionary

import (
	"embed"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed data/*.txt
var builtinFS embed.FS

// builtinNames fixes the probe order of the embedded lists. The order
// is also the order dictionaries appear in a default Snapshot.
var builtinNames = []string{"passwords", "english", "names", "surnames"}

// BuiltinLists returns the embedded frequency-ordered word lists,
// keyed by dictionary name. These are seed lists; larger lists can be
// loaded from a data directory and added alongside them.
func BuiltinLists() map[string][]string {
	lists := make(map[string][]string, len(builtinNames))
	for _, name := range builtinNames {
		data, err := builtinFS.ReadFile("data/" + name + ".txt")
		if err != nil {
			// Embedded files are part of the binary; missing one is a
			// build defect, not a runtime condition.
			log.Errorf("missing embedded list %q: %v", name, err)
			continue
		}
		lists[name] = splitLines(string(data))
	}
	return lists
}

// DefaultSnapshot builds a Snapshot from the embedded lists plus
// optional user inputs.
func DefaultSnapshot(userInputs []any) *Snapshot {
	b := NewBuilder()
	lists := BuiltinLists()
	for _, name := range builtinNames {
		if words, ok := lists[name]; ok {
			b.AddList(name, words)
		}
	}
	b.AddUserInputs(userInputs)
	return b.Build()
}

func splitLines(data string) []string {
	lines := strings.Split(data, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}
