package value

import "reflect"

// Equal returns true when a and b are structurally equal.
// Mapping entries are compared by key regardless of order; callables compare by func pointer.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindNumber:
		return a.numberVal == b.numberVal
	case KindString:
		return a.strVal == b.strVal
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if a.mapping.Len() != b.mapping.Len() {
			return false
		}
		equal := true
		a.mapping.Range(func(key string, item Value) bool {
			other, ok := b.mapping.Get(key)
			equal = ok && Equal(item, other)
			return equal
		})
		return equal
	case KindCallable:
		if a.callable == nil || b.callable == nil {
			return a.callable == b.callable
		}
		av, bv := reflect.ValueOf(a.callable), reflect.ValueOf(b.callable)
		if av.Kind() != reflect.Func || bv.Kind() != reflect.Func {
			return false
		}
		return av.Pointer() == bv.Pointer()
	case KindCustom:
		return reflect.DeepEqual(a.custom, b.custom)
	}
	return false
}
