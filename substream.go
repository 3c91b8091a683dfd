package itemfn

// SubStreamOutput reduces the sub-stream of a group item.
// See OutputSubStream.
type SubStreamOutput[T any] struct {
	field  string
	reduce Function[[]*Item, T]
}

// OutputSubStream returns a mapper that applies reduce to the []*Item held
// in the SubStreamField of a group item and yields its result.
//
// An item without a sub-stream fails with *FieldNotFoundError; a sub-stream
// field holding anything but []*Item fails with *TypeMismatchError. Errors
// from reduce are returned unchanged, and how reduce treats an empty
// sequence is up to reduce.
func OutputSubStream[T any](reduce Function[[]*Item, T]) SubStreamOutput[T] {
	return OutputSubStreamFrom(SubStreamField, reduce)
}

// OutputSubStreamFrom is OutputSubStream for group items that keep their
// sub-stream under another field name.
func OutputSubStreamFrom[T any](field string, reduce Function[[]*Item, T]) SubStreamOutput[T] {
	return SubStreamOutput[T]{field: field, reduce: reduce}
}

// Apply reduces the sub-stream of the group item it.
func (s SubStreamOutput[T]) Apply(it *Item) (T, error) {
	seq, err := FieldAs[[]*Item](it, s.field)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.reduce.Apply(seq)
}
