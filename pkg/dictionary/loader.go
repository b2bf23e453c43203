// Package dictionary feeds corpora into a completer: it tokenizes raw text
// into ASCII alphanumeric words, reads and writes word/count dictionaries,
// and keeps an optional vocabulary of everything it loaded.
package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Sink receives words from the loader.
type Sink interface {
	AddWord(word string, frequency int) error
}

type multiSink []Sink

func (m multiSink) AddWord(word string, frequency int) error {
	for _, s := range m {
		if err := s.AddWord(word, frequency); err != nil {
			return err
		}
	}
	return nil
}

// MultiSink hands every word to the sinks in order and stops at the first
// one that rejects it, so later sinks only see words the earlier ones took.
// Put the strictest sink first.
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

// LoaderStats provides statistics about the loading process
type LoaderStats struct {
	Files   int
	Tokens  int
	Entries int
	Skipped int
}

// Loader reads corpus files into a sink.
type Loader struct {
	sink       Sink
	extensions []string
	stats      LoaderStats
}

// NewLoader creates a loader writing into sink. Directory scans only pick
// files with one of the given extensions; none means every regular file.
func NewLoader(sink Sink, extensions ...string) *Loader {
	exts := make([]string, 0, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(e)
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return &Loader{sink: sink, extensions: exts}
}

// Stats returns what has been loaded so far.
func (l *Loader) Stats() LoaderStats {
	return l.stats
}

// LoadReader tokenizes r and inserts every word once, in source order.
// Words the sink rejects are counted as skipped.
func (l *Loader) LoadReader(r io.Reader) (int, error) {
	sc := NewScanner(r)
	n := 0
	for sc.Scan() {
		word := sc.Text()
		if err := l.sink.AddWord(word, 1); err != nil {
			l.stats.Skipped++
			log.Debugf("Skipping token %q: %v", word, err)
			continue
		}
		n++
	}
	l.stats.Tokens += n
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("scanning corpus: %w", err)
	}
	return n, nil
}

// LoadFile loads one file, choosing the reader by extension.
func (l *Loader) LoadFile(filename string) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to open corpus file %s: %w", filename, err)
	}
	defer file.Close()

	var n int
	switch format := DetectFormat(filename); format {
	case FormatBinary:
		n, err = ReadBinary(file, l.sink)
		l.stats.Entries += n
	default:
		n, err = l.LoadReader(file)
	}
	if err != nil {
		return n, fmt.Errorf("loading %s: %w", filename, err)
	}
	l.stats.Files++
	log.Debugf("Loaded %s: %d words", filename, n)
	return n, nil
}

// LoadDir loads every matching file directly inside dir, in name order.
func (l *Loader) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to scan corpus dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && l.matches(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		log.Warnf("No corpus files found in %s", dir)
	}
	total := 0
	for _, name := range names {
		n, err := l.LoadFile(filepath.Join(dir, name))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// LoadPaths loads each path as a file or a directory.
func (l *Loader) LoadPaths(paths ...string) (int, error) {
	total := 0
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return total, fmt.Errorf("corpus path %s: %w", p, err)
		}
		var n int
		if info.IsDir() {
			n, err = l.LoadDir(p)
		} else {
			n, err = l.LoadFile(p)
		}
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (l *Loader) matches(name string) bool {
	if len(l.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range l.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
