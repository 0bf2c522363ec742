package visitor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[reflect.Type, []*Field]()

// Field represents an exported struct field with unsafe value accessor
type Field struct {
	reflect.StructField
	xField *xunsafe.Field
}

// Value returns field value for the supplied struct pointer
func (f *Field) Value(structPtr unsafe.Pointer) interface{} {
	return f.xField.Value(structPtr)
}

// StructFields returns cached exported fields of the struct type
func StructFields(structType reflect.Type) []*Field {
	if fields, ok := structCache.Get(structType); ok {
		return fields
	}
	fields := make([]*Field, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" && !field.Anonymous {
			continue
		}
		fields = append(fields, &Field{StructField: field, xField: xunsafe.NewField(field)})
	}
	structCache.Put(structType, fields)
	return fields
}

// StructVisitor implements Visitor[*Field, interface{}] for structs using xunsafe.
type StructVisitor struct {
	ptr    unsafe.Pointer
	fields []*Field
}

// StructVisitorOf creates a StructVisitor from struct or pointer to struct value.
func StructVisitorOf(value interface{}) (Visitor[*Field, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		structType = valueType.Elem()
		if structType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected struct or pointer to struct, got nil %T", value)
		}
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	visitor := &StructVisitor{
		ptr:    xunsafe.AsPointer(value),
		fields: StructFields(structType),
	}
	return visitor.Visit, nil
}

// Visit iterates over exported struct fields in declaration order.
func (w *StructVisitor) Visit(f func(field *Field, element interface{}) (bool, error)) error {
	for _, field := range w.fields {
		continueVisit, err := f(field, field.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
