package unmarshal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fizz/format"
	"github.com/viant/fizz/hook"
	"github.com/viant/fizz/value"
)

func TestEngine_Decode(t *testing.T) {
	custom, err := format.New(format.WithStringBrackets("'", "*/"), format.WithSeparators("||", "=>"))
	require.NoError(t, err)
	var testCases = []struct {
		description string
		config      format.Config
		input       string
		expect      value.Value
	}{
		{
			description: "nested mapping",
			config:      format.Default(),
			input:       `{"a":1,"b":[1,2,3]}`,
			expect: value.Mapping(
				value.Field("a", value.Number(1)),
				value.Field("b", value.Sequence(value.Number(1), value.Number(2), value.Number(3))),
			),
		},
		{description: "empty array", config: format.Default(), input: `[]`, expect: value.Sequence()},
		{description: "empty object", config: format.Default(), input: `{}`, expect: value.Mapping()},
		{description: "empty with whitespace", config: format.Default(), input: " [ \n ] ", expect: value.Sequence()},
		{description: "empty object with whitespace", config: format.Default(), input: "{\t}", expect: value.Mapping()},
		{
			description: "whitespace everywhere",
			config:      format.Default(),
			input:       " {\v\"a\" :\f[ 1 , null ] ,\r\n\"b\": true } ",
			expect: value.Mapping(
				value.Field("a", value.Sequence(value.Number(1), value.Null())),
				value.Field("b", value.Bool(true)),
			),
		},
		{
			description: "fizz delimiters",
			config:      format.Fizz(),
			input:       "(`a`_1;`b`_<`x`;false;null>)",
			expect: value.Mapping(
				value.Field("a", value.Number(1)),
				value.Field("b", value.Sequence(value.String("x"), value.Bool(false), value.Null())),
			),
		},
		{
			description: "multi character delimiters",
			config:      custom,
			input:       `{'k*/=>['a\*/b**/||2]}`,
			expect:      value.Mapping(value.Field("k", value.Sequence(value.String("a*/b*"), value.Number(2)))),
		},
		{
			description: "numbers",
			config:      format.Default(),
			input:       `[0,-0.5,12.25,1e3,1E-2,-7e+1,1e400]`,
			expect: value.Sequence(
				value.Number(0), value.Number(-0.5), value.Number(12.25), value.Number(1000),
				value.Number(0.01), value.Number(-70), value.Number(math.Inf(1)),
			),
		},
		{
			description: "escapes",
			config:      format.Default(),
			input:       `"a\"b\\c\n\t\r\b\f\q"`,
			expect:      value.String("a\"b\\c\n\t\r\b\f\\q"),
		},
		{
			description: "escaped close bracket",
			config:      format.Fizz(),
			input:       "`it\\`s \\\"q\\\"`",
			expect:      value.String("it`s \"q\""),
		},
		{
			description: "duplicate keys overwrite in place",
			config:      format.Default(),
			input:       `{"a":1,"b":2,"a":3}`,
			expect:      value.Mapping(value.Field("a", value.Number(3)), value.Field("b", value.Number(2))),
		},
		{description: "literal", config: format.Default(), input: "true", expect: value.Bool(true)},
	}

	for _, testCase := range testCases {
		engine := New(testCase.config)
		actual, err := engine.DecodeString(testCase.input)
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.True(t, value.Equal(testCase.expect, actual), "%v: %#v", testCase.description, actual)
		if m, err := testCase.expect.AsMapping(); err == nil {
			actualMap, _ := actual.AsMapping()
			assert.Equal(t, m.Keys(), actualMap.Keys(), testCase.description)
		}
	}
}

func TestEngine_Decode_Errors(t *testing.T) {
	var testCases = []struct {
		description string
		config      format.Config
		input       string
		expect      error
	}{
		{description: "trailing separator at end", config: format.Default(), input: "[1,2,", expect: &InvalidCharacterError{Position: 5}},
		{description: "missing close", config: format.Default(), input: "[1,2", expect: &InvalidDelimiterError{Position: 4, Expected: []string{",", "]"}}},
		{description: "leading zero", config: format.Default(), input: "01", expect: &InvalidCharacterError{Position: 1, Character: "1"}},
		{description: "bare minus", config: format.Default(), input: "-", expect: &InvalidCharacterError{Position: 1}},
		{description: "missing fraction", config: format.Default(), input: "1.", expect: &InvalidCharacterError{Position: 2}},
		{description: "missing exponent", config: format.Default(), input: "1e+x", expect: &InvalidCharacterError{Position: 3, Character: "x"}},
		{description: "unterminated string", config: format.Default(), input: `"abc`, expect: &InvalidDelimiterError{Position: 4, Expected: []string{`"`}}},
		{description: "unterminated escaped string", config: format.Default(), input: `"a\"`, expect: &InvalidDelimiterError{Position: 4, Expected: []string{`"`}}},
		{description: "trailing data", config: format.Default(), input: `[1] x`, expect: &TrailingDataError{Position: 4}},
		{description: "trailing number", config: format.Default(), input: `1a`, expect: &TrailingDataError{Position: 1}},
		{description: "empty input", config: format.Default(), input: "  ", expect: &InvalidCharacterError{Position: 2}},
		{description: "unknown literal", config: format.Default(), input: "nul", expect: &InvalidCharacterError{Position: 0, Character: "n"}},
		{description: "element separator", config: format.Default(), input: "[1;2]", expect: &InvalidDelimiterError{Position: 2, Expected: []string{",", "]"}, Found: ";"}},
		{description: "trailing comma", config: format.Default(), input: "[1,]", expect: &InvalidCharacterError{Position: 3, Character: "]"}},
		{description: "key separator", config: format.Default(), input: `{"a" 1}`, expect: &InvalidDelimiterError{Position: 5, Expected: []string{":"}, Found: "1"}},
		{description: "key string", config: format.Default(), input: `{a:1}`, expect: &InvalidDelimiterError{Position: 1, Expected: []string{`"`}, Found: "a"}},
		{description: "object trailing comma", config: format.Default(), input: `{"a":1,}`, expect: &InvalidDelimiterError{Position: 7, Expected: []string{`"`}, Found: "}"}},
		{description: "default brackets under fizz", config: format.Fizz(), input: "[1]", expect: &InvalidCharacterError{Position: 0, Character: "["}},
	}
	for _, testCase := range testCases {
		engine := New(testCase.config)
		_, err := engine.DecodeString(testCase.input)
		if !assert.Error(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, err, testCase.description)
	}
}

func TestEngine_Hooks(t *testing.T) {
	engine := New(format.Default())
	var keys []string
	_, err := engine.Hooks.Add(func(key value.Key, v value.Value) (value.Value, error) {
		if key.IsRoot() {
			keys = append(keys, "$")
		} else {
			keys = append(keys, key.String())
		}
		return v, nil
	})
	require.NoError(t, err)
	_, err = engine.DecodeString(`{"a":[10,20],"b":{"c":null}}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "a", "c", "b", "$"}, keys)

	engine.Hooks.Reset()
	handle, _ := engine.Hooks.Add(hook.DateTime("yyyy-MM-dd"))
	actual, err := engine.DecodeString(`{"d1":1501308597,"d3":-11231231,"d6":3147483847,"n":10.5}`)
	require.NoError(t, err)
	expect := value.Mapping(
		value.Field("d1", value.String("2017-07-29")),
		value.Field("d3", value.Number(-11231231)),
		value.Field("d6", value.Number(3147483847)),
		value.Field("n", value.Number(10.5)),
	)
	assert.True(t, value.Equal(expect, actual))

	assert.True(t, engine.Hooks.Remove(handle))
	actual, err = engine.DecodeString(`{"d1":1501308597}`)
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Mapping(value.Field("d1", value.Number(1501308597))), actual))

	boom := errors.New("boom")
	_, _ = engine.Hooks.Add(func(key value.Key, v value.Value) (value.Value, error) {
		if key.Is("bad") {
			return v, boom
		}
		return v, nil
	})
	_, err = engine.DecodeString(`[{"bad":1}]`)
	assert.ErrorIs(t, err, boom)
}

type spaceOnly struct{}

func (spaceOnly) SkipWhitespace(data []byte, pos int) int {
	for pos < len(data) && data[pos] == ' ' {
		pos++
	}
	return pos
}

func (spaceOnly) FindCloseOrEscape(data []byte, pos int, closing []byte) (int, int) {
	return DefaultScanner().FindCloseOrEscape(data, pos, closing)
}

func TestWithScanner(t *testing.T) {
	engine := New(format.Default(), WithScanner(spaceOnly{}))
	_, err := engine.DecodeString(" [ 1 ] ")
	assert.NoError(t, err)
	_, err = engine.DecodeString("[\t1]")
	assert.Equal(t, &InvalidCharacterError{Position: 1, Character: "\t"}, err)
}

func TestErrors_Message(t *testing.T) {
	assert.EqualError(t, &InvalidCharacterError{Position: 3}, "unmarshal: unexpected end of input at 3")
	assert.EqualError(t, &InvalidCharacterError{Position: 0, Character: "x"}, `unmarshal: invalid character "x" at 0`)
	assert.EqualError(t, &InvalidDelimiterError{Position: 4, Expected: []string{",", "]"}}, `unmarshal: expected "," or "]" at 4, found end of input`)
	assert.EqualError(t, &TrailingDataError{Position: 2}, "unmarshal: unexpected data after value at 2")
}
