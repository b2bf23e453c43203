// Package trie is the ranked prefix tree behind the index.
//
// Every node keeps a cache of at most RankSize terminal nodes, ordered by
// frequency and then by byte order, so a prefix query only has to walk the
// prefix and read caches on the way back up. Nodes live in a single arena
// slice and refer to each other by index; ranking entries are plain indices
// into the same arena and never own anything.
//
// A Trie is not safe for concurrent use. Wrap it (see package suggest) when
// inserts and queries can overlap.
package trie

type nodeID uint32

// root is always the first arena slot. It can never be a child or a ranking
// entry, so the zero nodeID doubles as "no node".
const (
	root nodeID = 0
	none nodeID = 0
)

type node struct {
	links [AlphabetSize]nodeID
	rank  [RankSize]nodeID
	nrank uint8
	depth int

	// terminal nodes only
	word string
	freq int
}

// Trie is an arena-backed prefix tree with per-node top-3 rankings.
type Trie struct {
	nodes []node
	path  []nodeID

	words      int
	insertions int
	maxFreq    int
	longest    int
}

// Stats summarizes the contents of a Trie.
type Stats struct {
	Nodes        int
	Words        int
	Insertions   int
	MaxFrequency int
	LongestWord  int
}

// Match is a ranked completion with the frequency recorded for it.
type Match struct {
	Word      string
	Frequency int
}

// New returns an empty Trie holding only the root node.
func New() *Trie {
	return &Trie{nodes: make([]node, 1, 256)}
}

func (t *Trie) alloc(depth int) nodeID {
	t.nodes = append(t.nodes, node{depth: depth})
	return nodeID(len(t.nodes) - 1)
}

// Frequency returns how many times word has been inserted.
func (t *Trie) Frequency(word string) (int, bool) {
	if Validate(word) != nil {
		return 0, false
	}
	cur := root
	for i := 0; i < len(word); i++ {
		cur = t.nodes[cur].links[slot(word[i])]
		if cur == none {
			return 0, false
		}
	}
	end := t.nodes[cur].links[EndOfWord]
	if end == none {
		return 0, false
	}
	return t.nodes[end].freq, true
}

// ranking returns the cached ranking of the node reached by prefix, without
// the exact-match suppression and ancestor top-up that Query applies. An
// empty prefix reads the root cache.
func (t *Trie) ranking(prefix string) []Match {
	cur := root
	for i := 0; i < len(prefix); i++ {
		if !IsWordByte(prefix[i]) {
			return nil
		}
		cur = t.nodes[cur].links[slot(prefix[i])]
		if cur == none {
			return nil
		}
	}
	n := &t.nodes[cur]
	out := make([]Match, 0, n.nrank)
	for _, id := range n.rank[:n.nrank] {
		out = append(out, t.match(id))
	}
	return out
}

func (t *Trie) match(id nodeID) Match {
	return Match{Word: t.nodes[id].word, Frequency: t.nodes[id].freq}
}

// Stats reports node and word counts.
func (t *Trie) Stats() Stats {
	return Stats{
		Nodes:        len(t.nodes),
		Words:        t.words,
		Insertions:   t.insertions,
		MaxFrequency: t.maxFreq,
		LongestWord:  t.longest,
	}
}

// KnownPrefix returns the length of the longest leading part of prefix that
// exists as a path in the tree.
func (t *Trie) KnownPrefix(prefix string) int {
	cur := root
	for i := 0; i < len(prefix); i++ {
		if !IsWordByte(prefix[i]) {
			return i
		}
		if cur = t.nodes[cur].links[slot(prefix[i])]; cur == none {
			return i
		}
	}
	return len(prefix)
}
