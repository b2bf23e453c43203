// Package suggest wraps the ranked trie into a completer that is safe to
// share between the loader, the CLI and the IPC server.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns up to limit (at most 3) ranked suggestions for prefix
	Complete(prefix string, limit int) ([]Suggestion, error)

	// Correct is Complete with the nearest known prefix fallback
	Correct(prefix string, limit int) ([]Suggestion, error)

	// AddWord adds frequency occurrences of word
	AddWord(word string, frequency int) error

	// Stats returns statistics about the indexed words
	Stats() map[string]int
}
