package hook

import (
	"fmt"
	"reflect"

	"github.com/viant/fizz/value"
)

// InvalidHookError is returned when a hook is nil or has unsupported signature
type InvalidHookError struct {
	Type reflect.Type
}

func (e *InvalidHookError) Error() string {
	if e.Type == nil {
		return "hook: nil hook"
	}
	return fmt.Sprintf("hook: %s is not callable as a hook", e.Type)
}

// Adapt converts supported function shapes into Func
func Adapt(fn interface{}) (Func, error) {
	switch actual := fn.(type) {
	case nil:
		return nil, &InvalidHookError{}
	case Func:
		if actual == nil {
			return nil, &InvalidHookError{}
		}
		return actual, nil
	case func(value.Key, value.Value) (value.Value, error):
		if actual == nil {
			return nil, &InvalidHookError{}
		}
		return actual, nil
	case func(value.Key, value.Value) value.Value:
		if actual == nil {
			return nil, &InvalidHookError{}
		}
		return func(key value.Key, v value.Value) (value.Value, error) {
			return actual(key, v), nil
		}, nil
	case func(value.Value) value.Value:
		if actual == nil {
			return nil, &InvalidHookError{}
		}
		return func(_ value.Key, v value.Value) (value.Value, error) {
			return actual(v), nil
		}, nil
	}
	return nil, &InvalidHookError{Type: reflect.TypeOf(fn)}
}
