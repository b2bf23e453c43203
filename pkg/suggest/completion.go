package suggest

import (
	"sync"

	"github.com/bastiangx/autocorrect/pkg/trie"
	"github.com/charmbracelet/log"
)

// MaxSuggestions is the most suggestions a completer can return.
const MaxSuggestions = trie.RankSize

// Suggestion is a ranked completion with its recorded frequency.
type Suggestion struct {
	Word            string
	Frequency       int
	WasCorrected    bool
	OriginalPrefix  string
	CorrectedPrefix string
}

// Completer guards a trie with a single RWMutex: inserts are serialized
// and exclude readers, queries share the read lock.
type Completer struct {
	mu   sync.RWMutex
	trie *trie.Trie
}

// NewCompleter returns an empty completer.
func NewCompleter() *Completer {
	return &Completer{trie: trie.New()}
}

// Insert records one occurrence of word.
func (c *Completer) Insert(word string) error {
	return c.AddWord(word, 1)
}

// AddWord records frequency occurrences of word.
func (c *Completer) AddWord(word string, frequency int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.trie.InsertCount(word, frequency); err != nil {
		log.Debugf("Rejected word %q: %v", word, err)
		return err
	}
	return nil
}

// Query returns up to three completions for prefix, best first. A prefix
// that is itself a known word returns nothing.
func (c *Completer) Query(prefix string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.Query(prefix)
}

// Complete returns ranked suggestions for prefix, capped at limit. A limit
// below 1 or above MaxSuggestions means MaxSuggestions.
func (c *Completer) Complete(prefix string, limit int) ([]Suggestion, error) {
	c.mu.RLock()
	matches, err := c.trie.Search(prefix, trie.Strict)
	c.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	return toSuggestions(matches, limit), nil
}

// Correct behaves like Complete, but when prefix leaves the tree it
// suggests from the longest known part of it and marks the results as
// corrected.
func (c *Completer) Correct(prefix string, limit int) ([]Suggestion, error) {
	c.mu.RLock()
	matches, err := c.trie.Search(prefix, trie.Nearest)
	known := c.trie.KnownPrefix(prefix)
	c.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	suggestions := toSuggestions(matches, limit)
	if known < len(prefix) {
		for i := range suggestions {
			suggestions[i].WasCorrected = true
			suggestions[i].OriginalPrefix = prefix
			suggestions[i].CorrectedPrefix = prefix[:known]
		}
		if len(suggestions) > 0 {
			log.Debugf("Prefix '%s' corrected to '%s'", prefix, prefix[:known])
		}
	}
	return suggestions, nil
}

// Frequency returns how often word was inserted.
func (c *Completer) Frequency(word string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.Frequency(word)
}

// Stats returns statistics about the indexed words
func (c *Completer) Stats() map[string]int {
	c.mu.RLock()
	st := c.trie.Stats()
	c.mu.RUnlock()

	return map[string]int{
		"nodes":        st.Nodes,
		"totalWords":   st.Words,
		"insertions":   st.Insertions,
		"maxFrequency": st.MaxFrequency,
		"longestWord":  st.LongestWord,
	}
}

func toSuggestions(matches []trie.Match, limit int) []Suggestion {
	if limit < 1 || limit > MaxSuggestions {
		limit = MaxSuggestions
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	suggestions := make([]Suggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = Suggestion{Word: m.Word, Frequency: m.Frequency}
	}
	return suggestions
}
