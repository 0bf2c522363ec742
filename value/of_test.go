package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type audit struct {
	Created time.Time `format:"timeLayout=2006-01-02"`
	Author  string    `json:"author,omitempty"`
}

type product struct {
	audit
	ID       int               `json:"id"`
	Name     string            `fizz:"name"`
	Price    float64           `json:"price"`
	Tags     []string          `json:"tags"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Secret   string            `json:"-"`
	Count    int               `json:"count,string"`
	Next     *product          `json:"next"`
	internal int
}

type money float64

func TestOf(t *testing.T) {
	created := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)
	var testCases = []struct {
		description string
		input       interface{}
		expect      Value
		expectErr   bool
	}{
		{description: "nil", input: nil, expect: Null()},
		{description: "value passthrough", input: String("x"), expect: String("x")},
		{description: "named float", input: money(2.5), expect: Number(2.5)},
		{description: "uint8", input: uint8(7), expect: Number(7)},
		{description: "bytes", input: []byte("hi"), expect: String("aGk=")},
		{description: "nil slice", input: []int(nil), expect: Null()},
		{description: "array", input: [2]bool{true, false}, expect: Sequence(Bool(true), Bool(false))},
		{description: "pointer", input: func() *string { s := "p"; return &s }(), expect: String("p")},
		{description: "int keyed map", input: map[int]bool{2: true, 1: false}, expect: Mapping(Field("1", Bool(false)), Field("2", Bool(true)))},
		{description: "time", input: created, expect: Time(created)},
		{description: "channel", input: make(chan int), expectErr: true},
		{description: "complex", input: complex(1, 2), expectErr: true},
		{description: "float keyed map", input: map[float64]int{1: 1}, expectErr: true},
		{
			description: "struct",
			input: &product{
				audit:  audit{Created: created},
				ID:     10,
				Name:   "pen",
				Price:  1.25,
				Tags:   []string{"a"},
				Secret: "x",
				Count:  3,
			},
			expect: Mapping(
				Field("Created", Custom(Timestamp{Time: created, Layout: "2006-01-02"})),
				Field("id", Number(10)),
				Field("name", String("pen")),
				Field("price", Number(1.25)),
				Field("tags", Sequence(String("a"))),
				Field("count", String("3")),
				Field("next", Null()),
			),
		},
	}
	for _, testCase := range testCases {
		actual, err := Of(testCase.input)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.True(t, Equal(testCase.expect, actual), "%v: %#v", testCase.description, actual)
	}
}

func TestOf_StructOrder(t *testing.T) {
	actual, err := Of(product{ID: 1, Next: &product{ID: 2}})
	require.NoError(t, err)
	m, err := actual.AsMapping()
	require.NoError(t, err)
	assert.Equal(t, []string{"Created", "id", "name", "price", "tags", "count", "next"}, m.Keys())
	next, _ := m.Get("next")
	id, ok := next.Get("id")
	assert.True(t, ok)
	assert.True(t, Equal(Number(2), id))
}

func TestOf_Callable(t *testing.T) {
	actual, err := Of(map[string]interface{}{"fn": func() {}})
	require.NoError(t, err)
	fn, _ := actual.Get("fn")
	assert.Equal(t, KindCallable, fn.Kind())
}

func TestOf_FormatTag(t *testing.T) {
	type meta struct {
		TraceID string `json:"traceId"`
	}
	type payload struct {
		UserName  string    `format:"caseFormat=lowerUnderscore"`
		CreatedAt time.Time `format:"dateFormat=yyyy-MM-dd"`
		Secret    string    `format:"ignore=true"`
		Note      string    `format:"omitempty=true"`
		Meta      meta      `format:"inline=true"`
	}
	in := payload{
		UserName:  "alice",
		CreatedAt: time.Date(2026, 2, 24, 10, 11, 12, 0, time.UTC),
		Secret:    "hidden",
		Meta:      meta{TraceID: "abc"},
	}
	actual, err := Of(in)
	require.NoError(t, err)
	data, err := ToJSON(actual)
	require.NoError(t, err)
	require.JSONEq(t, `{"user_name":"alice","CreatedAt":"2026-02-24","traceId":"abc"}`, string(data))
}
