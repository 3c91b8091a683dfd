package itemfn

// ValueSetter sets a field to a constant. See SetFieldFromValue.
type ValueSetter struct {
	field string
	value any
}

// SetFieldFromValue returns a mapper that yields a copy of its input with
// field created or overwritten by value. The input item is left unchanged.
func SetFieldFromValue(field string, value any) ValueSetter {
	return ValueSetter{field: field, value: value}
}

// Apply returns a copy of it with the field set.
func (s ValueSetter) Apply(it *Item) (*Item, error) {
	return it.Clone().Set(s.field, s.value), nil
}

// FunctionSetter sets a field to a value computed from the item.
// See SetFieldFromFunction.
type FunctionSetter[T any] struct {
	field string
	fn    Function[*Item, T]
}

// SetFieldFromFunction returns a mapper that computes fn on its input and
// yields a copy of the input with field set to the result.
//
// fn sees the original item, so a field may be derived from its own
// previous value. An error from fn is returned unchanged and no item is
// produced.
func SetFieldFromFunction[T any](field string, fn Function[*Item, T]) FunctionSetter[T] {
	return FunctionSetter[T]{field: field, fn: fn}
}

// Apply computes the value from it, then returns a copy of it with the
// field set to that value.
func (s FunctionSetter[T]) Apply(it *Item) (*Item, error) {
	v, err := s.fn.Apply(it)
	if err != nil {
		return nil, err
	}
	return SetFieldFromValue(s.field, v).Apply(it)
}
