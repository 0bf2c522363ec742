package unmarshal

import (
	"fmt"
	"strings"
)

// InvalidCharacterError is returned when no production can start at Position, Character is empty at end of input
type InvalidCharacterError struct {
	Position  int
	Character string
}

func (e *InvalidCharacterError) Error() string {
	if e.Character == "" {
		return fmt.Sprintf("unmarshal: unexpected end of input at %d", e.Position)
	}
	return fmt.Sprintf("unmarshal: invalid character %q at %d", e.Character, e.Position)
}

// InvalidDelimiterError is returned when a separator or close bracket is expected at Position
type InvalidDelimiterError struct {
	Position int
	Expected []string
	Found    string
}

func (e *InvalidDelimiterError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, candidate := range e.Expected {
		expected[i] = fmt.Sprintf("%q", candidate)
	}
	found := "end of input"
	if e.Found != "" {
		found = fmt.Sprintf("%q", e.Found)
	}
	return fmt.Sprintf("unmarshal: expected %s at %d, found %s", strings.Join(expected, " or "), e.Position, found)
}

// TrailingDataError is returned when input continues after the root value
type TrailingDataError struct {
	Position int
}

func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("unmarshal: unexpected data after value at %d", e.Position)
}

func characterAt(data []byte, pos int) string {
	if pos >= len(data) {
		return ""
	}
	return string(data[pos : pos+1])
}
