package value

import (
	"encoding/base64"
	"reflect"
	"strconv"
	"time"

	"github.com/viant/fizz/internal/tagutil"
	"github.com/viant/fizz/visitor"
)

// UnsupportedTypeError is returned by Of for Go types without a value representation
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "value: unsupported type: " + e.Type.String()
}

var timeType = reflect.TypeOf(time.Time{})

// Of converts a Go value into a Value.
// Structs are converted with exported fields in declaration order, named by fizz, json or format tags;
// maps are converted with keys sorted; nil pointers, maps, slices and funcs become null.
func Of(v interface{}) (Value, error) {
	switch actual := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return actual, nil
	case *Map:
		if actual == nil {
			return Null(), nil
		}
		return MappingOf(actual), nil
	case Serializable:
		if rv := reflect.ValueOf(actual); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return Null(), nil
		}
		return Custom(actual), nil
	case time.Time:
		return Time(actual), nil
	case string:
		return String(actual), nil
	case bool:
		return Bool(actual), nil
	case float64:
		return Number(actual), nil
	case int:
		return Number(float64(actual)), nil
	case []byte:
		if actual == nil {
			return Null(), nil
		}
		return String(base64.StdEncoding.EncodeToString(actual)), nil
	}
	return ofReflect(reflect.ValueOf(v))
}

func ofReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return Of(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Func:
		if rv.IsNil() {
			return Null(), nil
		}
		return Callable(rv.Interface()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		return ofSequence(rv.Interface())
	case reflect.Array:
		return ofSequence(rv.Interface())
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		return ofMap(rv.Interface())
	case reflect.Struct:
		m := NewMap()
		if err := appendStruct(m, rv.Interface(), false); err != nil {
			return Value{}, err
		}
		return MappingOf(m), nil
	}
	return Value{}, &UnsupportedTypeError{Type: rv.Type()}
}

func ofSequence(v interface{}) (Value, error) {
	visit, err := visitor.AnySliceVisitorOf(v)
	if err != nil {
		return Value{}, err
	}
	var items []Value
	err = visit(func(index int, element any) (bool, error) {
		item, err := Of(element)
		if err != nil {
			return false, err
		}
		items = append(items, item)
		return true, nil
	})
	if err != nil {
		return Value{}, err
	}
	return Sequence(items...), nil
}

func ofMap(v interface{}) (Value, error) {
	visit, err := visitor.AnyMapVisitorOf(v)
	if err != nil {
		return Value{}, &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}
	m := NewMap()
	err = visit(func(key string, element any) (bool, error) {
		item, err := Of(element)
		if err != nil {
			return false, err
		}
		m.Set(key, item)
		return true, nil
	})
	if err != nil {
		return Value{}, err
	}
	return MappingOf(m), nil
}

// appendStruct adds struct fields to m, embedded fields do not override fields already present
func appendStruct(m *Map, v interface{}, embedded bool) error {
	visit, err := visitor.StructVisitorOf(v)
	if err != nil {
		return err
	}
	return visit(func(field *visitor.Field, element interface{}) (bool, error) {
		tag := tagutil.ResolveField(field.StructField)
		if tag.Ignore {
			return true, nil
		}
		if tag.Inline {
			if inner, ok := structOf(element); ok {
				return true, appendStruct(m, inner, true)
			}
		}
		if field.PkgPath != "" {
			return true, nil
		}
		if tag.OmitEmpty && isEmpty(element) {
			return true, nil
		}
		if embedded {
			if _, ok := m.Get(tag.Name); ok {
				return true, nil
			}
		}
		item, err := ofField(tag, element)
		if err != nil {
			return false, err
		}
		m.Set(tag.Name, item)
		return true, nil
	})
}

func ofField(tag tagutil.Field, element interface{}) (Value, error) {
	if tag.TimeLayout != "" {
		switch actual := element.(type) {
		case time.Time:
			return Custom(Timestamp{Time: actual, Layout: tag.TimeLayout}), nil
		case *time.Time:
			if actual == nil {
				return Null(), nil
			}
			return Custom(Timestamp{Time: *actual, Layout: tag.TimeLayout}), nil
		}
	}
	item, err := Of(element)
	if err != nil || !tag.AsString {
		return item, err
	}
	switch item.kind {
	case KindNumber:
		return String(strconv.FormatFloat(item.numberVal, 'f', -1, 64)), nil
	case KindBool:
		return String(strconv.FormatBool(item.boolVal)), nil
	}
	return item, nil
}

func structOf(element interface{}) (interface{}, bool) {
	rv := reflect.ValueOf(element)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct || rv.Type() == timeType {
		return nil, false
	}
	return rv.Interface(), true
}

func isEmpty(element interface{}) bool {
	if element == nil {
		return true
	}
	rv := reflect.ValueOf(element)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array:
		return rv.Len() == 0
	}
	return rv.IsZero()
}
