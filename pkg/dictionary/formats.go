package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the corpus file formats the loader understands
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // raw text, tokenized on the fly
	FormatBinary             // word/count dictionary
)

func (f FileFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary dictionary"
	}
	return "unknown"
}

// DetectFormat guesses the format from the file extension. Anything that
// is not a .bin dictionary is read as text.
func DetectFormat(filename string) FileFormat {
	if strings.ToLower(filepath.Ext(filename)) == ".bin" {
		return FormatBinary
	}
	return FormatText
}

// Binary dictionary layout, little endian:
//
//	int32  entry count
//	repeated:
//	  uint16 word length
//	  []byte word
//	  uint32 frequency

// SaveBinary writes every vocabulary entry to filename.
func SaveBinary(v *Vocabulary, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create dictionary %s: %w", filename, err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Errorf("Closing dictionary file: %v", err)
		}
	}(file)

	if err := WriteBinary(file, v); err != nil {
		return fmt.Errorf("write dictionary %s: %w", filename, err)
	}
	log.Debugf("Saved %d entries to %s", v.Len(), filename)
	return nil
}

// WriteBinary encodes the vocabulary to w.
func WriteBinary(w io.Writer, v *Vocabulary) error {
	writer := bufio.NewWriter(w)
	if err := binary.Write(writer, binary.LittleEndian, int32(v.Len())); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	err := v.Each(func(e Entry) error {
		if len(e.Word) > math.MaxUint16 {
			return fmt.Errorf("word of %d bytes does not fit the format", len(e.Word))
		}
		if err := binary.Write(writer, binary.LittleEndian, uint16(len(e.Word))); err != nil {
			return fmt.Errorf("writing word length: %w", err)
		}
		if _, err := writer.WriteString(e.Word); err != nil {
			return fmt.Errorf("writing word %s: %w", e.Word, err)
		}
		freq := uint32(math.MaxUint32)
		if uint64(e.Frequency) < math.MaxUint32 {
			freq = uint32(e.Frequency)
		}
		if err := binary.Write(writer, binary.LittleEndian, freq); err != nil {
			return fmt.Errorf("writing frequency for word %s: %w", e.Word, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return writer.Flush()
}

// ReadBinary decodes a dictionary from r and hands every entry to sink.
// It returns the number of entries read.
func ReadBinary(r io.Reader, sink Sink) (int, error) {
	reader := bufio.NewReader(r)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}
	if totalEntries < 0 {
		return 0, fmt.Errorf("negative entry count %d", totalEntries)
	}

	count := 0
	for count < int(totalEntries) {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			return count, fmt.Errorf("reading word length of entry %d: %w", count, err)
		}
		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return count, fmt.Errorf("reading word of entry %d: %w", count, err)
		}
		var freq uint32
		if err := binary.Read(reader, binary.LittleEndian, &freq); err != nil {
			return count, fmt.Errorf("reading frequency of entry %d: %w", count, err)
		}

		word := string(wordBytes)
		if freq == 0 {
			log.Debugf("Entry %q has zero frequency, counting it once", word)
			freq = 1
		}
		if err := sink.AddWord(word, int(freq)); err != nil {
			log.Warnf("Skipping dictionary entry %q: %v", word, err)
		}
		count++
	}
	return count, nil
}
