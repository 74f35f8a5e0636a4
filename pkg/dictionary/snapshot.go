/*
Package dictionary builds and holds ranked word dictionaries for the
strength estimator.

A Snapshot is an immutable set of named ranked dictionaries. Each
dictionary maps a lower-cased word to its 1-based frequency rank
(rank 1 = most common). Snapshots are built once, published, and then
shared read-only between any number of concurrent evaluations; there
is no in-place mutation after Build.
*/
package dictionary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"
)

// UserInputsName is the dictionary name reserved for caller-supplied words.
const UserInputsName = "user_inputs"

// Dict is a single named ranked dictionary backed by a patricia trie.
type Dict struct {
	name string
	trie *patricia.Trie
	size int
}

// Name returns the dictionary name.
func (d *Dict) Name() string { return d.name }

// Size returns the number of ranked words.
func (d *Dict) Size() int { return d.size }

// Rank returns the rank of an exact lower-cased word.
func (d *Dict) Rank(word string) (int, bool) {
	item := d.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, false
	}
	rank, ok := item.(int)
	return rank, ok
}

// VisitPrefixes calls fn for every dictionary word that is a prefix of
// segment. This is how the dictionary matcher finds, in a single trie
// walk, every word starting at a given password offset.
func (d *Dict) VisitPrefixes(segment string, fn func(word string, rank int)) {
	_ = d.trie.VisitPrefixes(patricia.Prefix(segment), func(p patricia.Prefix, item patricia.Item) error {
		rank, ok := item.(int)
		if !ok {
			return nil
		}
		fn(string(p), rank)
		return nil
	})
}

// Snapshot is an immutable collection of ranked dictionaries.
type Snapshot struct {
	dicts []*Dict
}

// Dicts returns the dictionaries in build order.
func (s *Snapshot) Dicts() []*Dict { return s.dicts }

// Builder accumulates word lists and produces an immutable Snapshot.
// A Builder is not safe for concurrent use; the Snapshot it builds is.
type Builder struct {
	names []string
	lists map[string][]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{lists: make(map[string][]string)}
}

// AddList registers a frequency-ordered word list under name. The slice
// order defines ranks: words[0] gets rank 1. Re-adding a name replaces
// the previous list.
func (b *Builder) AddList(name string, words []string) *Builder {
	if _, exists := b.lists[name]; !exists {
		b.names = append(b.names, name)
	}
	b.lists[name] = words
	return b
}

// AddUserInputs registers caller-supplied values as the lowest-priority
// dictionary. Non-string values are coerced to their textual form
// rather than rejected; everything is lower-cased here so matchers can
// rely on lower-cased keys.
func (b *Builder) AddUserInputs(inputs []any) *Builder {
	if len(inputs) == 0 {
		return b
	}
	words := make([]string, 0, len(inputs))
	for _, in := range inputs {
		s, ok := in.(string)
		if !ok {
			s = fmt.Sprint(in)
		}
		words = append(words, strings.ToLower(s))
	}
	return b.AddList(UserInputsName, words)
}

// Build assembles the immutable Snapshot. Duplicate words within a
// list keep their first (best) rank so ranks stay unique per word.
func (b *Builder) Build() *Snapshot {
	snap := &Snapshot{}
	for _, name := range b.names {
		words := b.lists[name]
		trie := patricia.NewTrie()
		size := 0
		for idx, word := range words {
			word = strings.ToLower(strings.TrimSpace(word))
			if word == "" || !utf8.ValidString(word) {
				continue
			}
			prefix := patricia.Prefix(word)
			if trie.Get(prefix) != nil {
				continue
			}
			trie.Insert(prefix, idx+1)
			size++
		}
		snap.dicts = append(snap.dicts, &Dict{name: name, trie: trie, size: size})
	}
	return snap
}
