package match

// Keyboard adjacency graphs. Each graph maps a character to a fixed
// slice of neighbor tokens, one per direction; a token holds the
// unshifted and shifted character of the neighboring key ("2@"), and
// an empty entry means no key in that direction. Direction indices
// are what the spatial matcher counts turns with, so slot order must
// stay stable.
//
// Graphs are derived once at package init from the layout literals
// below and treated as read-only afterwards.

type adjacencyGraph struct {
	name              string
	adjacency         map[rune][]string
	averageDegree     float64
	startingPositions float64
	shiftedChars      map[rune]bool
}

// layoutRow is one physical keyboard row: its tokens left to right and
// the x position of the first token.
type layoutRow struct {
	offset int
	tokens []string
}

// Slanted rows (standard keyboards) have six adjacent positions,
// aligned rows (keypads) have eight. Offsets follow the classic
// keyboard-walk derivation: same-row left/right, then the row above,
// then the row below.
var slantedDeltas = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {1, -1}, {-1, 1}, {0, 1}}
var alignedDeltas = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {-1, -1}, {1, -1}, {-1, 1}, {0, 1}, {1, 1}}

var qwertyRows = []layoutRow{
	{0, []string{"`~", "1!", "2@", "3#", "4$", "5%", "6^", "7&", "8*", "9(", "0)", "-_", "=+"}},
	{0, []string{"qQ", "wW", "eE", "rR", "tT", "yY", "uU", "iI", "oO", "pP", "[{", "]}", "\\|"}},
	{0, []string{"aA", "sS", "dD", "fF", "gG", "hH", "jJ", "kK", "lL", ";:", "'\""}},
	{0, []string{"zZ", "xX", "cC", "vV", "bB", "nN", "mM", ",<", ".>", "/?"}},
}

var dvorakRows = []layoutRow{
	{0, []string{"`~", "1!", "2@", "3#", "4$", "5%", "6^", "7&", "8*", "9(", "0)", "[{", "]}"}},
	{0, []string{"'\"", ",<", ".>", "pP", "yY", "fF", "gG", "cC", "rR", "lL", "/?", "=+", "\\|"}},
	{0, []string{"aA", "oO", "eE", "uU", "iI", "dD", "hH", "tT", "nN", "sS", "-_"}},
	{0, []string{";:", "qQ", "jJ", "kK", "xX", "bB", "mM", "wW", "vV", "zZ"}},
}

var keypadRows = []layoutRow{
	{1, []string{"/", "*", "-"}},
	{0, []string{"7", "8", "9", "+"}},
	{0, []string{"4", "5", "6"}},
	{0, []string{"1", "2", "3"}},
	{1, []string{"0", "."}},
}

var macKeypadRows = []layoutRow{
	{1, []string{"=", "/", "*"}},
	{0, []string{"7", "8", "9", "-"}},
	{0, []string{"4", "5", "6", "+"}},
	{0, []string{"1", "2", "3"}},
	{1, []string{"0", "."}},
}

var adjacencyGraphs = map[string]*adjacencyGraph{
	"qwerty":     buildGraph("qwerty", qwertyRows, true),
	"dvorak":     buildGraph("dvorak", dvorakRows, true),
	"keypad":     buildGraph("keypad", keypadRows, false),
	"mac_keypad": buildGraph("mac_keypad", macKeypadRows, false),
}

func buildGraph(name string, rows []layoutRow, slanted bool) *adjacencyGraph {
	type pos struct{ x, y int }
	positions := make(map[pos]string)
	for y, row := range rows {
		for i, token := range row.tokens {
			positions[pos{row.offset + i, y}] = token
		}
	}

	deltas := alignedDeltas
	if slanted {
		deltas = slantedDeltas
	}

	g := &adjacencyGraph{
		name:         name,
		adjacency:    make(map[rune][]string),
		shiftedChars: make(map[rune]bool),
	}

	degreeSum := 0
	for y, row := range rows {
		for i, token := range row.tokens {
			neighbors := make([]string, len(deltas))
			degree := 0
			for d, delta := range deltas {
				if adj, ok := positions[pos{row.offset + i + delta[0], y + delta[1]}]; ok {
					neighbors[d] = adj
					degree++
				}
			}
			chars := []rune(token)
			for _, c := range chars {
				g.adjacency[c] = neighbors
				degreeSum += degree
			}
			if len(chars) == 2 {
				g.shiftedChars[chars[1]] = true
			}
		}
	}

	g.startingPositions = float64(len(g.adjacency))
	if g.startingPositions > 0 {
		g.averageDegree = float64(degreeSum) / g.startingPositions
	}
	return g
}

// graphStats exposes the combinatorial constants the spatial
// estimator needs for a named graph.
func graphStats(name string) (avgDegree, startingPositions float64) {
	if g, ok := adjacencyGraphs[name]; ok {
		return g.averageDegree, g.startingPositions
	}
	// Unknown graph names only occur for hand-built matches in tests;
	// qwerty stats are the conservative default.
	g := adjacencyGraphs["qwerty"]
	return g.averageDegree, g.startingPositions
}
