package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fizz"
)

func TestRun(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		input       string
		expect      string
		expectErr   bool
	}{
		{description: "encode fizz", args: []string{"encode", "-preset", "fizz"}, input: `{"b":[1,"x"],"a":null}`, expect: "(`b`_<1;`x`>;`a`_null)\n"},
		{description: "encode default", args: []string{"encode"}, input: `[true, 2.5]`, expect: "[true,2.5]\n"},
		{description: "decode descriptor", args: []string{"decode", "-format", "array=<>"}, input: "<1,\"y\">\n", expect: "[1,\"y\"]\n"},
		{description: "check", args: []string{"check", "-preset", "fizz"}, input: "(`a`_1)", expect: "ok\n"},
		{description: "check invalid", args: []string{"check"}, input: "[1,2,", expectErr: true},
		{description: "unknown command", args: []string{"zip"}, input: "", expectErr: true},
		{description: "unknown preset", args: []string{"check", "-preset", "xml"}, input: "1", expectErr: true},
		{description: "exclusive flags", args: []string{"check", "-preset", "fizz", "-format", "value=;"}, input: "1", expectErr: true},
		{description: "no command", args: nil, expectErr: true},
	}
	for _, testCase := range testCases {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := run(testCase.args, strings.NewReader(testCase.input), stdout, stderr)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, stdout.String(), testCase.description)
	}
}

func TestRun_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.fizz")
	require.NoError(t, os.WriteFile(file, []byte("{\"a\":[1,2"), 0o644))
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := run([]string{"decode", "-v", file}, strings.NewReader(""), stdout, stderr)
	var delimiter *fizz.InvalidDelimiterError
	assert.True(t, errors.As(err, &delimiter))
	assert.Contains(t, stderr.String(), "parse failed")
}
