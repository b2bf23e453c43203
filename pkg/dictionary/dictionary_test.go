package dictionary

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	words []string
	freqs []int
	fail  map[string]bool
}

func (s *recordingSink) AddWord(word string, frequency int) error {
	if s.fail[word] {
		return errors.New("rejected")
	}
	s.words = append(s.words, word)
	s.freqs = append(s.freqs, frequency)
	return nil
}

func scanAll(t *testing.T, r io.Reader) []string {
	t.Helper()
	var words []string
	sc := NewScanner(r)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	require.NoError(t, sc.Err())
	return words
}

func TestScanner(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    []string
	}{
		{"plain words", "the cat sat", []string{"the", "cat", "sat"}},
		{"punctuation splits", "don't stop-now!", []string{"don", "t", "stop", "now"}},
		{"digits kept", "route 66, mile42", []string{"route", "66", "mile42"}},
		{"utf8 bytes separate", "café au lait", []string{"caf", "au", "lait"}},
		{"only separators", " ,.;\n\t", nil},
		{"empty", "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, scanAll(t, strings.NewReader(tc.input)))
		})
	}
}

func TestScannerAcrossBuffers(t *testing.T) {
	text := strings.Repeat("Hello, world! 42 times_over\n", 5000)

	words := scanAll(t, strings.NewReader(text))
	require.Len(t, words, 5*5000)
	assert.Equal(t, []string{"Hello", "world", "42", "times", "over"}, words[len(words)-5:])
}

func TestScannerDropsOverlongRuns(t *testing.T) {
	long := strings.Repeat("a", MaxWordLength+1)
	longer := strings.Repeat("b", 3*MaxWordLength)
	testCases := []struct {
		description string
		input       string
		expected    []string
	}{
		{"run at the limit is kept", "x " + strings.Repeat("a", MaxWordLength) + " y", []string{"x", strings.Repeat("a", MaxWordLength), "y"}},
		{"run past the limit", "before " + long + " after", []string{"before", "after"}},
		{"run past the buffer", "before " + longer + ", after", []string{"before", "after"}},
		{"run at end of input", "before " + longer, []string{"before"}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, scanAll(t, strings.NewReader(tc.input)))
		})
	}
}

func TestVocabulary(t *testing.T) {
	v := NewVocabulary()
	for _, w := range []string{"help", "hello", "help", "hero", "world"} {
		require.NoError(t, v.AddWord(w, 1))
	}
	require.NoError(t, v.AddWord("hello", 3))

	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 8, v.Total())
	assert.Equal(t, 4, v.Frequency("hello"))
	assert.Equal(t, 0, v.Frequency("hel"))

	assert.Equal(t, []Entry{{"hello", 4}, {"help", 2}, {"hero", 1}}, v.Words("he", 0))
	assert.Equal(t, []Entry{{"hello", 4}}, v.Words("he", 1))
	assert.Empty(t, v.Words("x", 0))

	assert.Error(t, v.AddWord("", 1))
	assert.Error(t, v.AddWord("zero", 0))
	assert.Equal(t, 4, v.Len())
}

func TestBinaryRoundTrip(t *testing.T) {
	v := NewVocabulary()
	require.NoError(t, v.AddWord("apple", 7))
	require.NoError(t, v.AddWord("Banana", 2))
	require.NoError(t, v.AddWord("c3po", 1))

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, v))

	sink := &recordingSink{}
	n, err := ReadBinary(&buf, sink)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"Banana", "apple", "c3po"}, sink.words)
	assert.Equal(t, []int{2, 7, 1}, sink.freqs)
}

func TestReadBinaryTruncated(t *testing.T) {
	v := NewVocabulary()
	require.NoError(t, v.AddWord("apple", 7))
	require.NoError(t, v.AddWord("berry", 3))

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, v))
	data := buf.Bytes()[:buf.Len()-2]

	sink := &recordingSink{}
	n, err := ReadBinary(bytes.NewReader(data), sink)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"apple"}, sink.words)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatBinary, DetectFormat("words.bin"))
	assert.Equal(t, FormatBinary, DetectFormat("WORDS.BIN"))
	assert.Equal(t, FormatText, DetectFormat("corpus.txt"))
	assert.Equal(t, FormatText, DetectFormat("README"))
}

func TestLoaderReader(t *testing.T) {
	sink := &recordingSink{fail: map[string]bool{"bad": true}}
	l := NewLoader(sink)

	n, err := l.LoadReader(strings.NewReader("one two, bad three"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"one", "two", "three"}, sink.words)
	assert.Equal(t, []int{1, 1, 1}, sink.freqs)
	assert.Equal(t, 1, l.Stats().Skipped)
}

func TestLoaderPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("beta gamma"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	v := NewVocabulary()
	require.NoError(t, v.AddWord("delta", 5))
	dict := filepath.Join(t.TempDir(), "extra.bin")
	require.NoError(t, SaveBinary(v, dict))

	sink := &recordingSink{}
	l := NewLoader(sink, "txt")
	n, err := l.LoadPaths(dir, dict)
	require.NoError(t, err)

	assert.Equal(t, 4, n)
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, sink.words)
	assert.Equal(t, []int{1, 1, 1, 5}, sink.freqs)

	stats := l.Stats()
	assert.Equal(t, 3, stats.Files)
	assert.Equal(t, 3, stats.Tokens)
	assert.Equal(t, 1, stats.Entries)
}

func TestLoaderMissingPath(t *testing.T) {
	l := NewLoader(&recordingSink{})
	_, err := l.LoadPaths(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMultiSink(t *testing.T) {
	first := &recordingSink{fail: map[string]bool{"x": true}}
	second := &recordingSink{}
	sink := MultiSink(first, second)

	require.NoError(t, sink.AddWord("ok", 2))
	assert.Error(t, sink.AddWord("x", 1))
	assert.Equal(t, []string{"ok"}, first.words)
	assert.Equal(t, []string{"ok"}, second.words)
	assert.Equal(t, []int{2}, second.freqs)
}

func TestMultiSinkKeepsVocabularyInStepWithIndex(t *testing.T) {
	seeded := NewVocabulary()
	require.NoError(t, seeded.AddWord("naive", 1))
	require.NoError(t, seeded.AddWord("na-ive", 4))

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, seeded))

	index := &recordingSink{fail: map[string]bool{"na-ive": true}}
	vocab := NewVocabulary()
	n, err := ReadBinary(&buf, MultiSink(index, vocab))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, []string{"naive"}, index.words)
	assert.Equal(t, 1, vocab.Len())
	assert.Equal(t, 0, vocab.Frequency("na-ive"))
}
