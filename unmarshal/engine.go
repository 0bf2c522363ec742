package unmarshal

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/viant/fizz/format"
	"github.com/viant/fizz/hook"
	"github.com/viant/fizz/value"
)

// Engine decodes the configured delimited notation into values.
type Engine struct {
	Hooks *hook.Pipeline

	config  format.Config
	scanner Scanner

	stringOpen, stringClose []byte
	arrayOpen, arrayClose   []byte
	objectOpen, objectClose []byte
	valueSep, keySep        []byte
}

// Option customizes decoder engine
type Option func(e *Engine)

// WithScanner sets whitespace and string scanner
func WithScanner(scanner Scanner) Option {
	return func(e *Engine) {
		if scanner != nil {
			e.scanner = scanner
		}
	}
}

// New creates a decoder with its own empty hook pipeline, config is expected to be valid
func New(config format.Config, options ...Option) *Engine {
	ret := &Engine{
		Hooks:       &hook.Pipeline{},
		config:      config,
		scanner:     DefaultScanner(),
		stringOpen:  []byte(config.String.Open),
		stringClose: []byte(config.String.Close),
		arrayOpen:   []byte(config.Array.Open),
		arrayClose:  []byte(config.Array.Close),
		objectOpen:  []byte(config.Object.Open),
		objectClose: []byte(config.Object.Close),
		valueSep:    []byte(config.Separators.Value),
		keySep:      []byte(config.Separators.Key),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Config returns engine configuration
func (e *Engine) Config() format.Config {
	return e.config
}

// DecodeString decodes text
func (e *Engine) DecodeString(text string) (value.Value, error) {
	return e.Decode([]byte(text))
}

// Decode decodes data, the whole input has to be consumed by the root value
func (e *Engine) Decode(data []byte) (value.Value, error) {
	d := &decoder{Engine: e, data: data}
	v, pos, err := d.parseValue(value.RootKey(), 0)
	if err != nil {
		return value.Value{}, err
	}
	if pos != len(data) {
		return value.Value{}, &TrailingDataError{Position: pos}
	}
	return v, nil
}

type decoder struct {
	*Engine
	data []byte
}

func (d *decoder) skipWS(pos int) int { return d.scanner.SkipWhitespace(d.data, pos) }

func (d *decoder) hasPrefix(pos int, token []byte) bool {
	return pos < len(d.data) && bytes.HasPrefix(d.data[pos:], token)
}

// parseValue parses a value surrounded by optional whitespace and runs the hook pass for key
func (d *decoder) parseValue(key value.Key, pos int) (value.Value, int, error) {
	pos = d.skipWS(pos)
	if pos >= len(d.data) {
		return value.Value{}, pos, &InvalidCharacterError{Position: pos}
	}
	var v value.Value
	var err error
	switch c := d.data[pos]; {
	case d.hasPrefix(pos, d.stringOpen):
		var s string
		if s, pos, err = d.parseString(pos); err == nil {
			v = value.String(s)
		}
	case c == '-' || isDigit(c):
		v, pos, err = d.parseNumber(pos)
	case d.hasPrefix(pos, d.arrayOpen):
		v, pos, err = d.parseArray(pos)
	case d.hasPrefix(pos, d.objectOpen):
		v, pos, err = d.parseObject(pos)
	default:
		v, pos, err = d.parseLiteral(pos)
	}
	if err != nil {
		return value.Value{}, pos, err
	}
	if v, err = d.Hooks.Apply(key, v); err != nil {
		return value.Value{}, pos, err
	}
	return v, d.skipWS(pos), nil
}

var (
	nullLiteral  = []byte("null")
	trueLiteral  = []byte("true")
	falseLiteral = []byte("false")
)

func (d *decoder) parseLiteral(pos int) (value.Value, int, error) {
	switch {
	case d.hasPrefix(pos, nullLiteral):
		return value.Null(), pos + len(nullLiteral), nil
	case d.hasPrefix(pos, trueLiteral):
		return value.Bool(true), pos + len(trueLiteral), nil
	case d.hasPrefix(pos, falseLiteral):
		return value.Bool(false), pos + len(falseLiteral), nil
	}
	return value.Value{}, pos, &InvalidCharacterError{Position: pos, Character: characterAt(d.data, pos)}
}

// parseNumber matches -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func (d *decoder) parseNumber(pos int) (value.Value, int, error) {
	start := pos
	if d.data[pos] == '-' {
		pos++
	}
	if pos >= len(d.data) || !isDigit(d.data[pos]) {
		return value.Value{}, pos, d.invalidCharacter(pos)
	}
	if d.data[pos] == '0' {
		pos++
		if pos < len(d.data) && isDigit(d.data[pos]) {
			return value.Value{}, pos, d.invalidCharacter(pos)
		}
	} else {
		pos = d.skipDigits(pos)
	}
	if pos < len(d.data) && d.data[pos] == '.' {
		pos++
		if pos >= len(d.data) || !isDigit(d.data[pos]) {
			return value.Value{}, pos, d.invalidCharacter(pos)
		}
		pos = d.skipDigits(pos)
	}
	if pos < len(d.data) && (d.data[pos] == 'e' || d.data[pos] == 'E') {
		pos++
		if pos < len(d.data) && (d.data[pos] == '+' || d.data[pos] == '-') {
			pos++
		}
		if pos >= len(d.data) || !isDigit(d.data[pos]) {
			return value.Value{}, pos, d.invalidCharacter(pos)
		}
		pos = d.skipDigits(pos)
	}
	f, err := strconv.ParseFloat(string(d.data[start:pos]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return value.Value{}, start, err
	}
	return value.Number(f), pos, nil
}

func (d *decoder) skipDigits(pos int) int {
	for pos < len(d.data) && isDigit(d.data[pos]) {
		pos++
	}
	return pos
}

func (d *decoder) invalidCharacter(pos int) error {
	return &InvalidCharacterError{Position: pos, Character: characterAt(d.data, pos)}
}

// parseString expects pos at the string open bracket
func (d *decoder) parseString(pos int) (string, int, error) {
	pos += len(d.stringOpen)
	closePos, escapePos := d.scanner.FindCloseOrEscape(d.data, pos, d.stringClose)
	if escapePos < 0 {
		if closePos < 0 {
			return "", len(d.data), d.unterminated()
		}
		return string(d.data[pos:closePos]), closePos + len(d.stringClose), nil
	}
	buf := make([]byte, 0, escapePos-pos+16)
	buf = append(buf, d.data[pos:escapePos]...)
	pos = escapePos
	for pos < len(d.data) {
		if d.hasPrefix(pos, d.stringClose) {
			return string(buf), pos + len(d.stringClose), nil
		}
		c := d.data[pos]
		if c != '\\' || pos+1 >= len(d.data) {
			buf = append(buf, c)
			pos++
			continue
		}
		if d.hasPrefix(pos+1, d.stringClose) {
			buf = append(buf, d.stringClose...)
			pos += 1 + len(d.stringClose)
			continue
		}
		if unescaped, ok := unescape(d.data[pos+1]); ok {
			buf = append(buf, unescaped)
			pos += 2
			continue
		}
		buf = append(buf, c)
		pos++
	}
	return "", len(d.data), d.unterminated()
}

func (d *decoder) unterminated() error {
	return &InvalidDelimiterError{Position: len(d.data), Expected: []string{d.config.String.Close}}
}

func unescape(c byte) (byte, bool) {
	switch c {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

func (d *decoder) parseArray(pos int) (value.Value, int, error) {
	pos = d.skipWS(pos + len(d.arrayOpen))
	if d.hasPrefix(pos, d.arrayClose) {
		return value.Sequence(), pos + len(d.arrayClose), nil
	}
	var items []value.Value
	for {
		item, next, err := d.parseValue(value.IndexKey(len(items)), pos)
		if err != nil {
			return value.Value{}, next, err
		}
		items = append(items, item)
		pos = next
		switch {
		case d.hasPrefix(pos, d.valueSep):
			pos += len(d.valueSep)
		case d.hasPrefix(pos, d.arrayClose):
			return value.Sequence(items...), pos + len(d.arrayClose), nil
		default:
			return value.Value{}, pos, d.invalidDelimiter(pos, d.config.Separators.Value, d.config.Array.Close)
		}
	}
}

func (d *decoder) parseObject(pos int) (value.Value, int, error) {
	pos = d.skipWS(pos + len(d.objectOpen))
	if d.hasPrefix(pos, d.objectClose) {
		return value.Mapping(), pos + len(d.objectClose), nil
	}
	entries := value.NewMap()
	for {
		pos = d.skipWS(pos)
		if !d.hasPrefix(pos, d.stringOpen) {
			return value.Value{}, pos, d.invalidDelimiter(pos, d.config.String.Open)
		}
		key, next, err := d.parseString(pos)
		if err != nil {
			return value.Value{}, next, err
		}
		pos = d.skipWS(next)
		if !d.hasPrefix(pos, d.keySep) {
			return value.Value{}, pos, d.invalidDelimiter(pos, d.config.Separators.Key)
		}
		item, next, err := d.parseValue(value.NameKey(key), pos+len(d.keySep))
		if err != nil {
			return value.Value{}, next, err
		}
		entries.Set(key, item)
		pos = next
		switch {
		case d.hasPrefix(pos, d.valueSep):
			pos += len(d.valueSep)
		case d.hasPrefix(pos, d.objectClose):
			return value.MappingOf(entries), pos + len(d.objectClose), nil
		default:
			return value.Value{}, pos, d.invalidDelimiter(pos, d.config.Separators.Value, d.config.Object.Close)
		}
	}
}

func (d *decoder) invalidDelimiter(pos int, expected ...string) error {
	return &InvalidDelimiterError{Position: pos, Expected: expected, Found: characterAt(d.data, pos)}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
