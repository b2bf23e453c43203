package dictionary

import (
	"bufio"
	"io"

	"github.com/bastiangx/autocorrect/pkg/trie"
	"github.com/charmbracelet/log"
)

// MaxWordLength caps a single token. Longer runs are dropped with a warning
// and scanning carries on after them.
const MaxWordLength = 1 << 20

// wordSplitter yields maximal runs of ASCII letters and digits. Every other
// byte, including any byte of a multi-byte UTF-8 sequence, separates words
// and is dropped.
type wordSplitter struct {
	skipping bool
	dropped  int
}

func (w *wordSplitter) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if w.skipping {
		for i, c := range data {
			if !trie.IsWordByte(c) {
				w.skipping = false
				log.Warnf("Dropped a %d byte run longer than %d bytes", w.dropped+i, MaxWordLength)
				return i + 1, nil, nil
			}
		}
		w.dropped += len(data)
		if atEOF {
			w.skipping = false
			log.Warnf("Dropped a %d byte run longer than %d bytes", w.dropped, MaxWordLength)
		}
		return len(data), nil, nil
	}

	start := 0
	for start < len(data) && !trie.IsWordByte(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if !trie.IsWordByte(data[i]) {
			if i-start > MaxWordLength {
				log.Warnf("Dropped a %d byte run longer than %d bytes", i-start, MaxWordLength)
				return i + 1, nil, nil
			}
			return i + 1, data[start:i], nil
		}
	}
	if n := len(data) - start; n > MaxWordLength {
		w.skipping, w.dropped = !atEOF, n
		if atEOF {
			log.Warnf("Dropped a %d byte run longer than %d bytes", n, MaxWordLength)
		}
		return len(data), nil, nil
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// NewScanner returns a scanner over r yielding one word per Scan.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 2*MaxWordLength+1)
	sc.Split((&wordSplitter{}).split)
	return sc
}
