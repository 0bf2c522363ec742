package format

import (
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

const (
	valueKey  = "value"
	keyKey    = "key"
	stringKey = "string"
	arrayKey  = "array"
	objectKey = "object"
)

// Parse parses config descriptor i.e. value=;,key=_,string=``,array=<>,object=()
// A value containing a coma has to be single quoted: value=','
// Bracket values are split in half into open and close sequences.
func Parse(descriptor string) (Config, error) {
	ret := Default()
	cursor := parsly.NewCursor("", []byte(descriptor), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value, err := matchPair(cursor)
		if err != nil {
			return Config{}, err
		}
		if key == "" {
			break
		}
		if err = ret.update(key, value); err != nil {
			return Config{}, err
		}
	}
	if err := ret.Validate(); err != nil {
		return Config{}, err
	}
	return ret, nil
}

func (c *Config) update(key string, value string) error {
	switch strings.ToLower(key) {
	case valueKey:
		c.Separators.Value = value
	case keyKey:
		c.Separators.Key = value
	case stringKey, arrayKey, objectKey:
		brackets, err := splitBrackets(key, value)
		if err != nil {
			return err
		}
		switch strings.ToLower(key) {
		case stringKey:
			c.String = brackets
		case arrayKey:
			c.Array = brackets
		default:
			c.Object = brackets
		}
	default:
		return fmt.Errorf("%w: unknown descriptor key %q", ErrInvalidConfig, key)
	}
	return nil
}

func splitBrackets(key, value string) (Brackets, error) {
	if value == "" || len(value)%2 != 0 {
		return Brackets{}, fmt.Errorf("%w: %s brackets %q need an open and close sequence of equal length", ErrInvalidConfig, key, value)
	}
	half := len(value) / 2
	return Brackets{Open: value[:half], Close: value[half:]}, nil
}

func matchPair(cursor *parsly.Cursor) (string, string, error) {
	match := cursor.MatchAfterOptional(whitespaceMatcher, eqTerminatorMatcher)
	if match.Code != eqTerminatorToken {
		if rest := strings.TrimSpace(string(cursor.Input[cursor.Pos:])); rest != "" {
			return "", "", fmt.Errorf("%w: expected key=value at %d", ErrInvalidConfig, cursor.Pos)
		}
		return "", "", nil
	}
	key := match.Text(cursor)
	key = strings.TrimSpace(key[:len(key)-1]) //exclude =
	value := ""
	match = cursor.MatchAny(quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case quotedToken:
		value = unquote(match.Text(cursor))
		cursor.MatchAfterOptional(whitespaceMatcher, comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = strings.TrimSpace(value[:len(value)-1]) //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = strings.TrimSpace(string(cursor.Input[cursor.Pos:]))
			cursor.Pos = len(cursor.Input)
		}
	}
	return key, value, nil
}

func quote(value string) string {
	builder := strings.Builder{}
	builder.WriteByte('\'')
	for i := 0; i < len(value); i++ {
		if value[i] == '\'' || value[i] == '\\' {
			builder.WriteByte('\\')
		}
		builder.WriteByte(value[i])
	}
	builder.WriteByte('\'')
	return builder.String()
}

func unquote(quoted string) string {
	if len(quoted) >= 2 {
		quoted = quoted[1 : len(quoted)-1]
	}
	if !strings.Contains(quoted, `\`) {
		return quoted
	}
	builder := strings.Builder{}
	for i := 0; i < len(quoted); i++ {
		if quoted[i] == '\\' && i+1 < len(quoted) {
			i++
		}
		builder.WriteByte(quoted[i])
	}
	return builder.String()
}
