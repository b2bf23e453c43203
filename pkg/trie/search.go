package trie

import "strings"

// Mode selects how a search treats a prefix that leaves the tree.
type Mode int

const (
	// Strict returns nothing once the prefix leaves the tree.
	Strict Mode = iota
	// Nearest falls back to the deepest known prefix and suggests what its
	// rankings hold. A mismatch on the first byte still returns nothing.
	Nearest
)

// Query returns up to RankSize completions for prefix, best first.
func (t *Trie) Query(prefix string) ([]string, error) {
	matches, err := t.Search(prefix, Strict)
	if err != nil || len(matches) == 0 {
		return []string{}, err
	}
	words := make([]string, len(matches))
	for i, m := range matches {
		words[i] = m.Word
	}
	return words, nil
}

// Correct is Search in Nearest mode.
func (t *Trie) Correct(prefix string) ([]Match, error) {
	return t.Search(prefix, Nearest)
}

// Search walks prefix and collects ranked completions.
//
// Blank input yields no result. A prefix that is itself a known word yields
// no result either: it is already correct. Otherwise the cache of the node
// reached by the prefix is taken as is and, while it has room, topped up
// from the caches of its ancestors, nearest first, leaving out the root.
func (t *Trie) Search(prefix string, mode Mode) ([]Match, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, nil
	}
	if err := Validate(prefix); err != nil {
		return nil, err
	}

	var buf [64]nodeID
	path := buf[:0]
	cur := root
	for h := 0; h < len(prefix); h++ {
		next := t.nodes[cur].links[slot(prefix[h])]
		if next == none {
			if mode == Strict || h == 0 {
				return nil, nil
			}
			var found collector
			return found.topUp(t, path).matches(t), nil
		}
		cur = next
		path = append(path, cur)
	}

	if t.nodes[cur].links[EndOfWord] != none {
		return nil, nil
	}
	var found collector
	return found.topUp(t, path).matches(t), nil
}

// collector gathers distinct terminals up to RankSize.
type collector struct {
	ids [RankSize]nodeID
	n   int
}

func (c *collector) has(id nodeID) bool {
	for _, v := range c.ids[:c.n] {
		if v == id {
			return true
		}
	}
	return false
}

// topUp adds cache entries of the nodes in path, last node first, until full.
func (c *collector) topUp(t *Trie, path []nodeID) *collector {
	for i := len(path) - 1; i >= 0 && c.n < RankSize; i-- {
		n := &t.nodes[path[i]]
		for _, id := range n.rank[:n.nrank] {
			if c.n == RankSize {
				break
			}
			if !c.has(id) {
				c.ids[c.n] = id
				c.n++
			}
		}
	}
	return c
}

func (c *collector) matches(t *Trie) []Match {
	if c.n == 0 {
		return nil
	}
	out := make([]Match, c.n)
	for i, id := range c.ids[:c.n] {
		out[i] = t.match(id)
	}
	return out
}
