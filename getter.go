package itemfn

// FieldGetter reads one field. See GetField.
type FieldGetter[T any] struct {
	field string
}

// GetField returns a mapper yielding the value of field as a T.
// It fails with *FieldNotFoundError or *TypeMismatchError as FieldAs does.
func GetField[T any](field string) FieldGetter[T] {
	return FieldGetter[T]{field: field}
}

// Apply returns the value of the field as a T.
func (g FieldGetter[T]) Apply(it *Item) (T, error) {
	return FieldAs[T](it, g.field)
}

// MapConverter turns an item into a plain map. See ToMap.
type MapConverter struct{}

// ToMap returns a mapper yielding a snapshot of every field, as Item.Map
// does. The result is a copy: mutating the item afterwards leaves it
// unchanged.
func ToMap() MapConverter {
	return MapConverter{}
}

// Apply returns a snapshot of it. It never fails.
func (MapConverter) Apply(it *Item) (map[string]any, error) {
	return it.Map(), nil
}

// SubItemGetter reads a nested item. See GetSubItem.
type SubItemGetter struct {
	field string
}

// GetSubItem returns a mapper yielding the *Item stored under field.
//
// The nested item is returned by reference: calling Set on it changes the
// value seen through the parent. Clone it first to detach.
func GetSubItem(field string) SubItemGetter {
	return SubItemGetter{field: field}
}

// Apply returns the nested item stored under the field.
func (g SubItemGetter) Apply(it *Item) (*Item, error) {
	return FieldAs[*Item](it, g.field)
}
