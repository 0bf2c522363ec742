package value

import (
	"fmt"
)

// Kind represents value kind
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
	KindCallable // Go func, never written out
	KindCustom   // Serializable resolved by the encoder
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindCallable:
		return "callable"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Value represents a node of the value graph, the zero Value is null
type Value struct {
	kind Kind

	boolVal   bool
	numberVal float64
	strVal    string

	items   []Value
	mapping *Map

	callable interface{}
	custom   Serializable
}

// Null creates a null value.
func Null() Value {
	return Value{}
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolVal: v}
}

// Number creates a number value.
func Number(v float64) Value {
	return Value{kind: KindNumber, numberVal: v}
}

// String creates a string value.
func String(v string) Value {
	return Value{kind: KindString, strVal: v}
}

// Sequence creates a sequence value.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Mapping creates a mapping value from ordered entries, later duplicates overwrite earlier ones.
func Mapping(entries ...Entry) Value {
	m := NewMap()
	for _, entry := range entries {
		m.Set(entry.Key, entry.Value)
	}
	return Value{kind: KindMapping, mapping: m}
}

// MappingOf wraps an existing map, nil creates an empty one
func MappingOf(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMapping, mapping: m}
}

// Callable wraps a Go func, it is omitted by the encoder.
func Callable(fn interface{}) Value {
	return Value{kind: KindCallable, callable: fn}
}

// Custom wraps a value that converts itself before encoding.
func Custom(s Serializable) Value {
	if s == nil {
		return Null()
	}
	return Value{kind: KindCustom, custom: s}
}

// Kind returns the value kind
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true if this is a null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean value.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("value: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsNumber returns the number value.
func (v Value) AsNumber() (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("value: expected number, got %s", v.kind)
	}
	return v.numberVal, nil
}

// AsString returns the string value.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("value: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsSequence returns sequence items.
func (v Value) AsSequence() ([]Value, error) {
	if v.kind != KindSequence {
		return nil, fmt.Errorf("value: expected sequence, got %s", v.kind)
	}
	return v.items, nil
}

// AsMapping returns the ordered map.
func (v Value) AsMapping() (*Map, error) {
	if v.kind != KindMapping {
		return nil, fmt.Errorf("value: expected mapping, got %s", v.kind)
	}
	return v.mapping, nil
}

// Callable returns wrapped func or nil
func (v Value) Callable() interface{} {
	return v.callable
}

// Custom returns wrapped Serializable or nil
func (v Value) Custom() Serializable {
	return v.custom
}

// Len returns the length of a sequence, mapping or string.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return v.mapping.Len()
	case KindString:
		return len(v.strVal)
	default:
		return 0
	}
}

// Index returns the i-th element of a sequence.
func (v Value) Index(i int) (Value, error) {
	if v.kind != KindSequence {
		return Value{}, fmt.Errorf("value: not a sequence")
	}
	if i < 0 || i >= len(v.items) {
		return Value{}, fmt.Errorf("value: index %d out of bounds (len=%d)", i, len(v.items))
	}
	return v.items[i], nil
}

// Get returns mapping entry value, null with false when absent or not a mapping
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	return v.mapping.Get(key)
}

// Interface returns native Go representation: nil, bool, float64, string, []interface{}, map[string]interface{}
// Callable and custom values are returned as wrapped.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindNumber:
		return v.numberVal
	case KindString:
		return v.strVal
	case KindSequence:
		ret := make([]interface{}, len(v.items))
		for i, item := range v.items {
			ret[i] = item.Interface()
		}
		return ret
	case KindMapping:
		ret := make(map[string]interface{}, v.mapping.Len())
		v.mapping.Range(func(key string, item Value) bool {
			ret[key] = item.Interface()
			return true
		})
		return ret
	case KindCallable:
		return v.callable
	case KindCustom:
		return v.custom
	}
	return nil
}

// GoString supports %#v for debugging
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "value.Null()"
	case KindBool:
		return fmt.Sprintf("value.Bool(%v)", v.boolVal)
	case KindNumber:
		return fmt.Sprintf("value.Number(%v)", v.numberVal)
	case KindString:
		return fmt.Sprintf("value.String(%q)", v.strVal)
	case KindSequence:
		return fmt.Sprintf("value.Sequence(%d items)", len(v.items))
	case KindMapping:
		return fmt.Sprintf("value.Mapping(%v)", v.mapping.Keys())
	case KindCallable:
		return fmt.Sprintf("value.Callable(%T)", v.callable)
	default:
		return fmt.Sprintf("value.Custom(%T)", v.custom)
	}
}
