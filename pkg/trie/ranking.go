package trie

// RankSize is the capacity of every node's ranking cache.
const RankSize = 3

// maxSortPasses bounds the bubble sort. Three entries settle in two passes
// under a consistent order; the bound only matters when delegated
// tie-breaks are undecided and the pairwise order is not transitive.
const maxSortPasses = RankSize * RankSize

// promote offers terminal cand to the cache of node at after cand's
// frequency changed, and reports whether the cache content or order moved.
func (t *Trie) promote(at, cand nodeID) bool {
	n := &t.nodes[at]
	changed := false

	if n.position(cand) < 0 {
		switch {
		case int(n.nrank) < RankSize:
			n.rank[n.nrank] = cand
			n.nrank++
			changed = true
		default:
			last := n.rank[RankSize-1]
			if t.outranks(cand, last, at) {
				n.rank[RankSize-1] = cand
				changed = true
			}
		}
	}

	if t.sortRank(at) {
		changed = true
	}
	return changed
}

// sortRank bubble-sorts the cache of at in place.
func (t *Trie) sortRank(at nodeID) bool {
	n := &t.nodes[at]
	changed := false
	swapped := true
	for pass := 0; swapped && pass < maxSortPasses; pass++ {
		swapped = false
		for i := 0; i+1 < int(n.nrank); i++ {
			if t.outranks(n.rank[i+1], n.rank[i], at) {
				n.rank[i], n.rank[i+1] = n.rank[i+1], n.rank[i]
				swapped = true
				changed = true
			}
		}
	}
	return changed
}

// outranks reports whether terminal a definitely belongs ahead of b in the
// cache of at: higher frequency, or equal frequency and a decided
// lexicographic win. An undecided tie never outranks.
func (t *Trie) outranks(a, b, at nodeID) bool {
	fa, fb := t.nodes[a].freq, t.nodes[b].freq
	if fa != fb {
		return fa > fb
	}
	first, decided := t.before(a, b, at)
	return decided && first
}

// before compares two terminals below node at, whose words share their
// first depth(at) bytes. The first result is true when a sorts before b;
// decided is false when the answer could not be settled.
//
// A word ending at this depth is a prefix of the other and sorts first.
// Otherwise the byte at this depth decides. When that byte is shared as
// well, the child's cache already holds the order one level deeper: the
// earlier entry wins, a listed entry beats an unlisted one, and two
// unlisted entries stay undecided.
func (t *Trie) before(a, b, at nodeID) (first, decided bool) {
	if a == b {
		return false, false
	}
	h := t.nodes[at].depth
	wa, wb := t.nodes[a].word, t.nodes[b].word
	if len(wa) == h {
		return true, true
	}
	if len(wb) == h {
		return false, true
	}
	if wa[h] != wb[h] {
		return wa[h] < wb[h], true
	}

	next := t.nodes[at].links[slot(wa[h])]
	if next == none {
		return false, false
	}
	pa, pb := t.nodes[next].position(a), t.nodes[next].position(b)
	switch {
	case pa >= 0 && pb >= 0:
		return pa < pb, true
	case pa >= 0:
		return true, true
	case pb >= 0:
		return false, true
	}
	return false, false
}

// position is the index of id in the cache, or -1.
func (n *node) position(id nodeID) int {
	for i := 0; i < int(n.nrank); i++ {
		if n.rank[i] == id {
			return i
		}
	}
	return -1
}
