package match

// SpatialMatch finds runs of three or more characters that walk
// adjacent keys on a keyboard layout, like "zxcvbn" or "159-". Each
// graph is scanned independently; turns and shifted keys are counted
// as the walk extends because they feed the guess estimate.
func (s *Suite) SpatialMatch(password string) []Match {
	var matches []Match
	for _, name := range []string{"qwerty", "dvorak", "keypad", "mac_keypad"} {
		matches = append(matches, spatialMatchHelper([]rune(password), adjacencyGraphs[name])...)
	}
	return matches
}

func spatialMatchHelper(runes []rune, graph *adjacencyGraph) []Match {
	var matches []Match
	n := len(runes)
	i := 0
	for i < n-1 {
		j := i + 1
		lastDirection := -1
		turns := 0
		shiftedCount := 0
		if graph.shiftedChars[runes[i]] {
			shiftedCount = 1
		}

		for {
			found := false
			if j < n {
				prev := runes[j-1]
				cur := runes[j]
				for direction, adj := range graph.adjacency[prev] {
					if adj == "" {
						continue
					}
					idx := indexOfRune(adj, cur)
					if idx < 0 {
						continue
					}
					found = true
					if idx == 1 {
						// Second char of a key token is the shifted variant.
						shiftedCount++
					}
					if lastDirection != direction {
						turns++
						lastDirection = direction
					}
					break
				}
			}
			if found {
				j++
				continue
			}
			if j-i > 2 {
				matches = append(matches, Match{
					Pattern:      PatternSpatial,
					I:            i,
					J:            j - 1,
					Token:        string(runes[i:j]),
					Graph:        graph.name,
					Turns:        turns,
					ShiftedCount: shiftedCount,
				})
			}
			i = j
			break
		}
	}
	return matches
}

func indexOfRune(s string, r rune) int {
	for i, c := range []rune(s) {
		if c == r {
			return i
		}
	}
	return -1
}
