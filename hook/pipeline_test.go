package hook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fizz/value"
)

func appendSuffix(suffix string) Func {
	return func(_ value.Key, v value.Value) (value.Value, error) {
		s, err := v.AsString()
		if err != nil {
			return v, nil
		}
		return value.String(s + suffix), nil
	}
}

func TestPipeline_Apply(t *testing.T) {
	p := &Pipeline{}
	a, err := p.Add(appendSuffix("a"))
	require.NoError(t, err)
	b, err := p.Add(appendSuffix("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	actual, err := p.Apply(value.NameKey("x"), value.String(""))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.String("ab"), actual))

	assert.True(t, p.Remove(a))
	assert.False(t, p.Remove(a))
	assert.False(t, p.Contains(a))
	assert.True(t, p.Contains(b))
	actual, err = p.Apply(value.RootKey(), value.String(""))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.String("b"), actual))

	p.Reset()
	p.Reset()
	assert.Equal(t, 0, p.Len())
	actual, err = p.Apply(value.RootKey(), value.String("z"))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.String("z"), actual))
}

func TestPipeline_SameFunctionTwice(t *testing.T) {
	p := &Pipeline{}
	fn := appendSuffix("!")
	first, _ := p.Add(fn)
	second, _ := p.Add(fn)
	actual, err := p.Apply(value.RootKey(), value.String("hi"))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.String("hi!!"), actual))
	assert.True(t, p.Remove(first))
	assert.Equal(t, 1, p.Len())
	assert.True(t, p.Contains(second))
}

func TestPipeline_RemoveThenAdd(t *testing.T) {
	p := &Pipeline{}
	fn := appendSuffix("a")
	first, err := p.Add(fn)
	require.NoError(t, err)
	_, err = p.Add(appendSuffix("b"))
	require.NoError(t, err)
	assert.True(t, p.Remove(first))

	again, err := p.Add(fn)
	require.NoError(t, err)
	assert.NotEqual(t, first, again)
	assert.True(t, p.Contains(again))
	assert.False(t, p.Contains(first))
	assert.Equal(t, 2, p.Len())

	actual, err := p.Apply(value.RootKey(), value.String(""))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.String("ba"), actual))

	assert.False(t, p.Remove(first))
	assert.Equal(t, 2, p.Len())
	assert.True(t, p.Remove(again))
	assert.Equal(t, 1, p.Len())
}

func TestPipeline_Error(t *testing.T) {
	p := &Pipeline{}
	boom := errors.New("boom")
	called := false
	_, _ = p.Add(func(value.Key, value.Value) (value.Value, error) { return value.Value{}, boom })
	_, _ = p.Add(func(_ value.Key, v value.Value) (value.Value, error) { called = true; return v, nil })
	_, err := p.Apply(value.RootKey(), value.Null())
	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}

func TestAdapt(t *testing.T) {
	var testCases = []struct {
		description string
		fn          interface{}
		expectErr   bool
	}{
		{description: "func", fn: appendSuffix("x")},
		{description: "unnamed", fn: func(_ value.Key, v value.Value) (value.Value, error) { return v, nil }},
		{description: "no error", fn: func(_ value.Key, v value.Value) value.Value { return v }},
		{description: "value only", fn: func(v value.Value) value.Value { return v }},
		{description: "nil", fn: nil, expectErr: true},
		{description: "nil func", fn: Func(nil), expectErr: true},
		{description: "string", fn: "hook", expectErr: true},
		{description: "wrong signature", fn: func(s string) string { return s }, expectErr: true},
	}
	for _, testCase := range testCases {
		fn, err := Adapt(testCase.fn)
		if testCase.expectErr {
			var invalid *InvalidHookError
			assert.ErrorAs(t, err, &invalid, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
		assert.NotNil(t, fn, testCase.description)
	}

	p := &Pipeline{}
	_, err := p.Add(nil)
	assert.EqualError(t, err, "hook: nil hook")
	assert.Equal(t, 0, p.Len())
	_, err = p.AddAny(42)
	assert.EqualError(t, err, "hook: int is not callable as a hook")
}
