package fizz

import (
	"github.com/viant/fizz/format"
	"github.com/viant/fizz/hook"
	"github.com/viant/fizz/marshal"
	"github.com/viant/fizz/unmarshal"
	"github.com/viant/fizz/value"
)

type (
	// InvalidCharacterError see unmarshal.InvalidCharacterError
	InvalidCharacterError = unmarshal.InvalidCharacterError
	// InvalidDelimiterError see unmarshal.InvalidDelimiterError
	InvalidDelimiterError = unmarshal.InvalidDelimiterError
	// TrailingDataError see unmarshal.TrailingDataError
	TrailingDataError = unmarshal.TrailingDataError
	// InvalidHookError see hook.InvalidHookError
	InvalidHookError = hook.InvalidHookError
	// UnsupportedTypeError see value.UnsupportedTypeError
	UnsupportedTypeError = value.UnsupportedTypeError
)

var (
	// ErrOmitted is returned when the root value is omitted from output
	ErrOmitted = marshal.ErrOmitted
	// ErrInvalidConfig is returned for unusable delimiters
	ErrInvalidConfig = format.ErrInvalidConfig
)
