package dictionary

import (
	"fmt"
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is a word with its occurrence count.
type Entry struct {
	Word      string
	Frequency int
}

// Vocabulary counts distinct words in a patricia trie. Fed behind the
// completer in a MultiSink it mirrors what the completer indexes, but keeps
// every word reachable so it can be listed by prefix and exported. Not safe
// for concurrent use.
type Vocabulary struct {
	trie  *patricia.Trie
	words int
	total int
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{trie: patricia.NewTrie()}
}

// AddWord adds frequency occurrences of word.
func (v *Vocabulary) AddWord(word string, frequency int) error {
	if word == "" {
		return fmt.Errorf("vocabulary: empty word")
	}
	if frequency < 1 {
		return fmt.Errorf("vocabulary: count for %q must be positive, got %d", word, frequency)
	}
	key := patricia.Prefix(word)
	if item := v.trie.Get(key); item != nil {
		v.trie.Set(key, item.(int)+frequency)
	} else {
		v.trie.Insert(key, frequency)
		v.words++
	}
	v.total += frequency
	return nil
}

// Frequency returns the count recorded for word.
func (v *Vocabulary) Frequency(word string) int {
	if item := v.trie.Get(patricia.Prefix(word)); item != nil {
		return item.(int)
	}
	return 0
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int { return v.words }

// Total returns the number of occurrences added.
func (v *Vocabulary) Total() int { return v.total }

// Words lists entries starting with prefix, most frequent first and then
// in byte order. A limit below 1 lists everything.
func (v *Vocabulary) Words(prefix string, limit int) []Entry {
	var entries []Entry
	err := v.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		entries = append(entries, Entry{Word: string(p), Frequency: item.(int)})
		return nil
	})
	if err != nil {
		return nil
	}
	sortEntries(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Each calls fn for every entry in byte order of the words.
func (v *Vocabulary) Each(fn func(Entry) error) error {
	var entries []Entry
	if err := v.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		entries = append(entries, Entry{Word: string(p), Frequency: item.(int)})
		return nil
	}); err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })
	for _, e := range entries {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Frequency != entries[j].Frequency {
			return entries[i].Frequency > entries[j].Frequency
		}
		return entries[i].Word < entries[j].Word
	})
}
