package trie

import (
	"errors"
	"testing"
)

func TestIndex(t *testing.T) {
	testCases := []struct {
		char        byte
		expected    int
		description string
	}{
		{'0', 1, "first digit"},
		{'9', 10, "last digit"},
		{'A', 11, "first uppercase"},
		{'Z', 36, "last uppercase"},
		{'a', 37, "first lowercase"},
		{'z', 62, "last lowercase"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := Index(tc.char)
			if err != nil {
				t.Fatalf("Index(%q) returned error: %v", tc.char, err)
			}
			if got != tc.expected {
				t.Errorf("Index(%q): expected %d, got %d", tc.char, tc.expected, got)
			}
			if s := slot(tc.char); s != got {
				t.Errorf("slot(%q) = %d disagrees with Index = %d", tc.char, s, got)
			}
		})
	}
}

func TestIndexRejectsOutsideAlphabet(t *testing.T) {
	for _, c := range []byte{' ', '-', '_', '/', '@', '[', '`', '{', 0x00, 0x7f, 0xc3} {
		if _, err := Index(c); !errors.Is(err, ErrInvalidChar) {
			t.Errorf("Index(%q): expected ErrInvalidChar, got %v", c, err)
		}
	}
}

// slot order must follow byte order so that tie-breaks by byte and walks by
// slot agree.
func TestIndexPreservesByteOrder(t *testing.T) {
	prev := 0
	for c := 0; c < 256; c++ {
		if !IsWordByte(byte(c)) {
			continue
		}
		idx, _ := Index(byte(c))
		if idx <= prev {
			t.Fatalf("Index(%q) = %d is not above previous slot %d", c, idx, prev)
		}
		prev = idx
	}
	if prev != AlphabetSize-1 {
		t.Errorf("expected last slot %d, got %d", AlphabetSize-1, prev)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(""); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("expected ErrEmptyWord, got %v", err)
	}
	if err := Validate("Word2Vec"); err != nil {
		t.Errorf("expected valid word, got %v", err)
	}

	err := Validate("ca t")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if verr.Pos != 2 || verr.Char != ' ' {
		t.Errorf("expected position 2 and ' ', got %d and %q", verr.Pos, verr.Char)
	}
	if !errors.Is(err, ErrInvalidChar) {
		t.Errorf("ValidationError should unwrap to ErrInvalidChar")
	}
}
