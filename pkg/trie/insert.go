package trie

import (
	"fmt"
	"math"
)

// Insert records one more occurrence of word.
func (t *Trie) Insert(word string) error {
	return t.InsertCount(word, 1)
}

// InsertCount adds count occurrences of word in a single pass. The path is
// created on demand, the terminal node's frequency is raised and every node
// on the path, deepest first, gets its ranking refreshed. Deepest first
// matters: tie-breaks at a node read the already updated cache of its child.
// A count that would overflow the word's frequency is rejected up front.
func (t *Trie) InsertCount(word string, count int) error {
	if count < 1 {
		return fmt.Errorf("insert %q: count must be positive, got %d", word, count)
	}
	if err := Validate(word); err != nil {
		return err
	}
	if freq, _ := t.Frequency(word); count > math.MaxInt-freq {
		return fmt.Errorf("insert %q: %d more on top of %d: %w", word, count, freq, ErrFrequencyOverflow)
	}

	path := t.path[:0]
	cur := root
	for h := 0; h < len(word); h++ {
		path = append(path, cur)
		cur = t.child(cur, slot(word[h]), h+1)
	}
	path = append(path, cur)
	t.path = path

	end := t.terminal(cur, word)
	t.nodes[end].freq += count
	if t.insertions > math.MaxInt-count {
		t.insertions = math.MaxInt
	} else {
		t.insertions += count
	}
	if f := t.nodes[end].freq; f > t.maxFreq {
		t.maxFreq = f
	}

	for i := len(path) - 1; i >= 0; i-- {
		t.promote(path[i], end)
	}
	return nil
}

// child returns the node at slot s under parent, creating it at depth if absent.
func (t *Trie) child(parent nodeID, s, depth int) nodeID {
	id := t.nodes[parent].links[s]
	if id == none {
		id = t.alloc(depth)
		t.nodes[parent].links[s] = id
	}
	return id
}

// terminal returns the end-of-word node under at, creating it for word.
func (t *Trie) terminal(at nodeID, word string) nodeID {
	id := t.nodes[at].links[EndOfWord]
	if id != none {
		return id
	}
	id = t.alloc(len(word))
	t.nodes[id].word = word
	t.nodes[at].links[EndOfWord] = id
	t.words++
	if len(word) > t.longest {
		t.longest = len(word)
	}
	return id
}
