package visitor

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// MapVisitorOf creates a visitor over map[string]E, keys are visited in sorted order.
func MapVisitorOf[E any](aMap map[string]E) Visitor[string, E] {
	keys := make([]string, 0, len(aMap))
	for k := range aMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return func(f func(key string, element E) (bool, error)) error {
		for _, k := range keys {
			continueVisit, err := f(k, aMap[k])
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitorOf creates a sorted key visitor from any map with string or integer keys.
// Integer keys are rendered in decimal and sorted as text.
func AnyMapVisitorOf(value interface{}) (Visitor[string, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return anyElements(MapVisitorOf[interface{}](actual)), nil
	case map[string]string:
		return anyElements(MapVisitorOf[string](actual)), nil
	case map[string]int:
		return anyElements(MapVisitorOf[int](actual)), nil
	case map[string]float64:
		return anyElements(MapVisitorOf[float64](actual)), nil
	case map[string]bool:
		return anyElements(MapVisitorOf[bool](actual)), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	keyFn, err := mapKeyText(val.Type().Key())
	if err != nil {
		return nil, err
	}
	visitor := &AnyMapVisitor{data: val, keyText: keyFn}
	return visitor.Visit, nil
}

func anyElements[E any](visitor Visitor[string, E]) Visitor[string, any] {
	return func(f func(key string, element any) (bool, error)) error {
		return visitor(func(key string, element E) (bool, error) {
			return f(key, element)
		})
	}
}

func mapKeyText(keyType reflect.Type) (func(reflect.Value) string, error) {
	switch keyType.Kind() {
	case reflect.String:
		return func(v reflect.Value) string { return v.String() }, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v reflect.Value) string { return strconv.FormatInt(v.Int(), 10) }, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(v reflect.Value) string { return strconv.FormatUint(v.Uint(), 10) }, nil
	}
	return nil, fmt.Errorf("unsupported map key type: %s", keyType)
}

// AnyMapVisitor visits reflected map entries ordered by key text
type AnyMapVisitor struct {
	data    reflect.Value
	keyText func(reflect.Value) string
}

// Visit iterates over the map via reflection and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key string, element any) (bool, error)) error {
	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, v.data.Len())
	iter := v.data.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: v.keyText(iter.Key()), value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	for _, e := range entries {
		continueVisit, err := f(e.key, e.value.Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
