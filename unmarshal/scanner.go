package unmarshal

import (
	"bytes"

	"github.com/viant/fizz/format"
)

// Scanner contains block-scan hooks for decoder whitespace and string scans.
type Scanner interface {
	SkipWhitespace(data []byte, pos int) int
	// FindCloseOrEscape returns position of the first closing sequence or backslash from pos, the other one is -1
	FindCloseOrEscape(data []byte, pos int, closing []byte) (closePos int, escapePos int)
}

type asciiScanner struct{}

// DefaultScanner returns byte oriented ASCII scanner
func DefaultScanner() Scanner {
	return asciiScanner{}
}

func (s asciiScanner) SkipWhitespace(data []byte, pos int) int {
	for pos < len(data) && format.IsWhitespace(data[pos]) {
		pos++
	}
	return pos
}

func (s asciiScanner) FindCloseOrEscape(data []byte, pos int, closing []byte) (int, int) {
	for i := pos; i < len(data); i++ {
		switch {
		case data[i] == '\\':
			return -1, i
		case data[i] == closing[0] && bytes.HasPrefix(data[i:], closing):
			return i, -1
		}
	}
	return -1, -1
}
