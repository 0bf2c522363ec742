package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when separators or brackets cannot be told apart by the decoder.
var ErrInvalidConfig = errors.New("invalid format config")

type (
	// Brackets represents an open/close character sequence pair
	Brackets struct {
		Open  string
		Close string
	}

	// Separators represents value and key delimiters
	Separators struct {
		// Value separates array elements and object entries
		Value string
		// Key separates an object key from its value
		Key string
	}

	// Config represents notation delimiters, it is immutable once constructed
	Config struct {
		Separators Separators
		String     Brackets
		Array      Brackets
		Object     Brackets
	}

	// Option mutates config before validation
	Option func(c *Config)
)

// Default returns the conventional JSON-like delimiters
func Default() Config {
	return Config{
		Separators: Separators{Value: ",", Key: ":"},
		String:     Brackets{Open: `"`, Close: `"`},
		Array:      Brackets{Open: "[", Close: "]"},
		Object:     Brackets{Open: "{", Close: "}"},
	}
}

// Fizz returns delimiters that stay readable inside URL query strings
func Fizz() Config {
	return Config{
		Separators: Separators{Value: ";", Key: "_"},
		String:     Brackets{Open: "`", Close: "`"},
		Array:      Brackets{Open: "<", Close: ">"},
		Object:     Brackets{Open: "(", Close: ")"},
	}
}

// WithSeparators overrides value and key separators, empty arguments keep defaults
func WithSeparators(value, key string) Option {
	return func(c *Config) {
		if value != "" {
			c.Separators.Value = value
		}
		if key != "" {
			c.Separators.Key = key
		}
	}
}

// WithStringBrackets overrides string brackets
func WithStringBrackets(open, close string) Option {
	return func(c *Config) { c.String = Brackets{Open: open, Close: close} }
}

// WithArrayBrackets overrides array brackets
func WithArrayBrackets(open, close string) Option {
	return func(c *Config) { c.Array = Brackets{Open: open, Close: close} }
}

// WithObjectBrackets overrides object brackets
func WithObjectBrackets(open, close string) Option {
	return func(c *Config) { c.Object = Brackets{Open: open, Close: close} }
}

// New creates a validated config from defaults and options
func New(options ...Option) (Config, error) {
	ret := Default()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&ret)
	}
	if err := ret.Validate(); err != nil {
		return Config{}, err
	}
	return ret, nil
}

// Validate checks that every delimiter is usable and that the decoder can dispatch on open brackets
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"value separator", c.Separators.Value},
		{"key separator", c.Separators.Key},
		{"string open bracket", c.String.Open},
		{"string close bracket", c.String.Close},
		{"array open bracket", c.Array.Open},
		{"array close bracket", c.Array.Close},
		{"object open bracket", c.Object.Open},
		{"object close bracket", c.Object.Close},
	}
	for _, field := range fields {
		if field.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, field.name)
		}
		for i := 0; i < len(field.value); i++ {
			ch := field.value[i]
			if ch >= 0x80 {
				return fmt.Errorf("%w: %s %q is not ASCII", ErrInvalidConfig, field.name, field.value)
			}
			if IsWhitespace(ch) {
				return fmt.Errorf("%w: %s %q contains whitespace", ErrInvalidConfig, field.name, field.value)
			}
		}
	}
	opens := []struct {
		name  string
		value string
	}{
		{"string", c.String.Open},
		{"array", c.Array.Open},
		{"object", c.Object.Open},
	}
	for i, open := range opens {
		switch ch := open.value[0]; {
		case ch >= '0' && ch <= '9', ch == '-':
			return fmt.Errorf("%w: %s open bracket %q starts like a number", ErrInvalidConfig, open.name, open.value)
		case ch == 'n', ch == 't', ch == 'f':
			return fmt.Errorf("%w: %s open bracket %q starts like a literal", ErrInvalidConfig, open.name, open.value)
		}
		for _, other := range opens[i+1:] {
			if strings.HasPrefix(open.value, other.value) || strings.HasPrefix(other.value, open.value) {
				return fmt.Errorf("%w: %s and %s open brackets overlap", ErrInvalidConfig, open.name, other.name)
			}
		}
	}
	if strings.Contains(c.String.Close, `\`) || strings.ContainsAny(c.String.Close[:1], "bfnrt") {
		return fmt.Errorf("%w: string close bracket %q clashes with escape sequences", ErrInvalidConfig, c.String.Close)
	}
	for _, separator := range []string{c.Separators.Value, c.Separators.Key} {
		if ch := separator[0]; (ch >= '0' && ch <= '9') || strings.IndexByte(".eE", ch) != -1 {
			return fmt.Errorf("%w: separator %q continues a number", ErrInvalidConfig, separator)
		}
	}
	if c.Separators.Value == c.Separators.Key {
		return fmt.Errorf("%w: value and key separators are both %q", ErrInvalidConfig, c.Separators.Value)
	}
	for _, closing := range []string{c.Array.Close, c.Object.Close} {
		if strings.HasPrefix(closing, c.Separators.Value) || strings.HasPrefix(c.Separators.Value, closing) {
			return fmt.Errorf("%w: value separator %q collides with close bracket %q", ErrInvalidConfig, c.Separators.Value, closing)
		}
	}
	return nil
}

// Descriptor returns the textual form accepted by Parse
func (c Config) Descriptor() string {
	builder := strings.Builder{}
	pairs := [][2]string{
		{valueKey, c.Separators.Value},
		{keyKey, c.Separators.Key},
		{stringKey, c.String.Open + c.String.Close},
		{arrayKey, c.Array.Open + c.Array.Close},
		{objectKey, c.Object.Open + c.Object.Close},
	}
	for i, pair := range pairs {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(pair[0])
		builder.WriteByte('=')
		builder.WriteString(quote(pair[1]))
	}
	return builder.String()
}

// IsWhitespace returns true for ASCII whitespace skipped between values
func IsWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
