package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf creates a Visitor for []E
func SliceVisitorOf[E any](value interface{}) (Visitor[int, E], error) {
	slice, ok := value.([]E)
	if !ok {
		var e []E
		return nil, fmt.Errorf("expected %T, got %T", e, value)
	}
	return typedSliceVisitor(slice), nil
}

func typedSliceVisitor[E any](slice []E) Visitor[int, E] {
	return func(f func(key int, element E) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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

// AnySliceVisitorOf creates an index visitor from any slice or array value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return anyItems(typedSliceVisitor(actual)), nil
	case []string:
		return anyItems(typedSliceVisitor(actual)), nil
	case []int:
		return anyItems(typedSliceVisitor(actual)), nil
	case []float64:
		return anyItems(typedSliceVisitor(actual)), nil
	case []bool:
		return anyItems(typedSliceVisitor(actual)), nil
	}
	val := reflect.ValueOf(value)
	if kind := val.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, nil
}

func anyItems[E any](visitor Visitor[int, E]) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		return visitor(func(key int, element E) (bool, error) {
			return f(key, element)
		})
	}
}

// AnySliceVisitor visits reflected slice or array elements.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over elements via reflection.
func (v *AnySliceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
