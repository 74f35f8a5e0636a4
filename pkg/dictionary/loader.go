package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Loaders for external frequency lists. Two formats are supported:
//
//   - plain text: one word per line, rank = line number
//   - binary chunks: files named dict_NNNN.bin with an int32
//     little-endian word count header followed by entries of
//     uint16 word length, word bytes, uint16 rank
//
// Loaded lists feed a Builder; they never mutate a published Snapshot.

// LoadTextList reads a frequency-ordered text list. Line order defines
// ranks, so the file must be sorted most-common-first.
func LoadTextList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s", len(words), path)
	return words, nil
}

// LoadBinaryChunks reads every dict_*.bin chunk in dir and merges them
// into one rank-ordered list. Ranks are global across chunks; a word
// seen twice keeps its best rank.
func LoadBinaryChunks(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "dict_*.bin")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunk files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no chunk files found in %s", dir)
	}
	sort.Strings(files)

	ranks := make(map[string]int)
	for _, file := range files {
		if err := readChunk(file, ranks); err != nil {
			return nil, err
		}
	}

	words := make([]string, 0, len(ranks))
	for word := range ranks {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if ranks[words[i]] != ranks[words[j]] {
			return ranks[words[i]] < ranks[words[j]]
		}
		return words[i] < words[j]
	})
	log.Debugf("Loaded %d words from %d chunks in %s", len(words), len(files), dir)
	return words, nil
}

// readChunk loads a single chunk file into ranks.
func readChunk(filename string, ranks map[string]int) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open chunk file %s: %w", filename, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return fmt.Errorf("failed to read chunk header: %w", err)
	}
	if totalEntries < 0 {
		return fmt.Errorf("invalid word count in %s: %d", filename, totalEntries)
	}

	for count := 0; count < int(totalEntries); count++ {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read word length: %w", err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return fmt.Errorf("failed to read word: %w", err)
		}

		var rank uint16
		if err := binary.Read(reader, binary.LittleEndian, &rank); err != nil {
			return fmt.Errorf("failed to read rank: %w", err)
		}

		word := strings.ToLower(string(wordBytes))
		if prev, seen := ranks[word]; !seen || int(rank) < prev {
			ranks[word] = int(rank)
		}
	}
	return nil
}

// LoadDirectory scans dir for loadable lists and returns them keyed by
// dictionary name: every *.txt file becomes a dictionary named after
// its base name, and dict_*.bin chunks merge into one "wordlist"
// dictionary.
func LoadDirectory(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary dir %s: %w", dir, err)
	}

	lists := make(map[string][]string)
	hasChunks := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".txt"):
			words, err := LoadTextList(filepath.Join(dir, name))
			if err != nil {
				log.Warnf("Skipping %s: %v", name, err)
				continue
			}
			lists[strings.TrimSuffix(name, ".txt")] = words
		case strings.HasPrefix(name, "dict_") && strings.HasSuffix(name, ".bin"):
			hasChunks = true
		}
	}

	if hasChunks {
		words, err := LoadBinaryChunks(dir)
		if err != nil {
			log.Warnf("Skipping binary chunks in %s: %v", dir, err)
		} else {
			lists["wordlist"] = words
		}
	}
	return lists, nil
}
