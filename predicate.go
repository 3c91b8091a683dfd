package itemfn

import "reflect"

// ContainsFieldPredicate tests whether an item has a field. See ContainsField.
type ContainsFieldPredicate struct {
	field string
}

// ContainsField returns a predicate that is true iff the item has field.
// Absence is an answer, not an error: the predicate never fails.
func ContainsField(field string) ContainsFieldPredicate {
	return ContainsFieldPredicate{field: field}
}

// Apply reports whether it has the field. It never fails.
func (p ContainsFieldPredicate) Apply(it *Item) (bool, error) {
	return it.Has(p.field), nil
}

// FieldInPredicate tests a field value against a fixed candidate set.
// See FieldIn.
type FieldInPredicate[T comparable] struct {
	field      string
	candidates map[T]struct{}
}

// FieldIn returns a predicate that is true iff the value of field equals one
// of candidates. Duplicate candidates are irrelevant.
//
// The predicate fails with *FieldNotFoundError when the item has no such
// field. A value whose dynamic type is not T equals no candidate, so the
// predicate is false rather than failing.
func FieldIn[T comparable](field string, candidates ...T) FieldInPredicate[T] {
	set := make(map[T]struct{}, len(candidates))
	for _, c := range candidates {
		// an uncomparable candidate equals nothing and cannot be hashed
		if any(c) != nil && !reflect.ValueOf(c).Comparable() {
			continue
		}
		set[c] = struct{}{}
	}
	return FieldInPredicate[T]{field: field, candidates: set}
}

// Apply reports whether the value of the field is one of the candidates.
func (p FieldInPredicate[T]) Apply(it *Item) (bool, error) {
	v, err := Lookup(it, p.field)
	if err != nil {
		return false, err
	}
	if v == nil {
		// A present nil reads as the zero T wherever FieldAs accepts it.
		if !nilable(reflect.TypeFor[T]()) {
			return false, nil
		}
		var zero T
		_, found := p.candidates[zero]
		return found, nil
	}
	t, ok := v.(T)
	if !ok {
		return false, nil
	}
	// Hashing a value that holds a slice, map or func panics, even when
	// nested inside a struct, array or interface.
	if !reflect.ValueOf(v).Comparable() {
		return false, nil
	}
	_, found := p.candidates[t]
	return found, nil
}
