package itemfn

import (
	"fmt"
	"reflect"
)

// Lookup returns the value stored under field.
//
// It fails with *FieldNotFoundError when field is not a key of it. A field
// present with a nil value is returned as (nil, nil).
func Lookup(it *Item, field string) (any, error) {
	v, ok := it.Get(field)
	if !ok {
		return nil, &FieldNotFoundError{Field: field}
	}
	return v, nil
}

// FieldAs returns the value stored under field as a T.
//
// Values are never converted: an int field read as int64 is a
// *TypeMismatchError. A present nil satisfies any T whose zero value is nil
// (pointers, interfaces, maps, slices, funcs and channels).
func FieldAs[T any](it *Item, field string) (T, error) {
	var zero T
	v, err := Lookup(it, field)
	if err != nil {
		return zero, err
	}
	if v == nil {
		if nilable(reflect.TypeFor[T]()) {
			return zero, nil
		}
		return zero, mismatch[T](field, v)
	}
	t, ok := v.(T)
	if !ok {
		return zero, mismatch[T](field, v)
	}
	return t, nil
}

func mismatch[T any](field string, got any) *TypeMismatchError {
	g := "nil"
	if got != nil {
		g = fmt.Sprintf("%T", got)
	}
	return &TypeMismatchError{
		Field: field,
		Want:  reflect.TypeFor[T]().String(),
		Got:   g,
	}
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
