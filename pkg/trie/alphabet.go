package trie

// AlphabetSize is the number of link slots per node: the end-of-word slot
// plus 10 digits, 26 uppercase and 26 lowercase letters.
const AlphabetSize = 63

// EndOfWord is the reserved slot holding the terminal node of a word that
// ends exactly at the owning node.
const EndOfWord = 0

const (
	digitBase = 1
	upperBase = 11
	lowerBase = 37
)

// Index maps an ASCII digit or letter to its link slot in [1,62].
// Digits come first, then uppercase, then lowercase, which keeps slot order
// identical to byte order.
func Index(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c-'0') + digitBase, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + upperBase, nil
	case c >= 'a' && c <= 'z':
		return int(c-'a') + lowerBase, nil
	}
	return 0, ErrInvalidChar
}

// IsWordByte reports whether c belongs to the indexed alphabet.
func IsWordByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// slot is Index without the error, for bytes already validated.
func slot(c byte) int {
	switch {
	case c <= '9':
		return int(c-'0') + digitBase
	case c <= 'Z':
		return int(c-'A') + upperBase
	default:
		return int(c-'a') + lowerBase
	}
}

// Validate checks that s is non-empty and made only of indexed bytes.
func Validate(s string) error {
	if s == "" {
		return ErrEmptyWord
	}
	for i := 0; i < len(s); i++ {
		if !IsWordByte(s[i]) {
			return &ValidationError{Input: s, Pos: i, Char: s[i]}
		}
	}
	return nil
}
