package visitor

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewMapVisitor(t *testing.T) {
	var testCases = []struct {
		description string
		input       interface{}
		expectKeys  []string
		expectErr   bool
	}{
		{
			description: "string keys",
			input:       map[string]bool{"def": true, "abc": false},
			expectKeys:  []string{"abc", "def"},
		},
		{
			description: "interface values",
			input:       map[string]interface{}{"b": 1, "a": "x", "c": nil},
			expectKeys:  []string{"a", "b", "c"},
		},
		{
			description: "int keys",
			input:       map[int]string{10: "x", 2: "y"},
			expectKeys:  []string{"10", "2"},
		},
		{
			description: "named string keys",
			input:       map[keyName]int{"z": 1, "y": 2},
			expectKeys:  []string{"y", "z"},
		},
		{
			description: "float keys",
			input:       map[float64]float64{1: 1},
			expectErr:   true,
		},
		{
			description: "not a map",
			input:       []int{1},
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		visit, err := AnyMapVisitorOf(testCase.input)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var keys []string
		err = visit(func(key string, element any) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expectKeys, keys, testCase.description)
	}
}

type keyName string

func TestMapVisitorOf_Stop(t *testing.T) {
	visit := MapVisitorOf[int](map[string]int{"a": 1, "b": 2, "c": 3})
	var visited []int
	_ = visit(func(key string, element int) (bool, error) {
		visited = append(visited, element)
		return len(visited) < 2, nil
	})
	assert.Equal(t, []int{1, 2}, visited)
}
