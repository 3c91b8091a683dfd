package itemfn

import (
	"iter"
	"maps"
	"slices"

	"github.com/davecgh/go-spew/spew"
)

// SubStreamField is the field under which a group item stores its
// embedded sequence of items.
const SubStreamField = "sub_stream"

// Item is a dynamically-keyed record flowing through a pipeline.
//
// Field values are unconstrained: scalars, nested *Item values, or []*Item
// sub-streams. A field mapped to nil is present; Get reports it with ok set
// to true, which is distinct from an absent field.
//
// Set and Remove mutate the item in place and exist for producers that build
// items. The mappers of this package never call them on their input: they
// clone first and return the clone.
//
// A nil *Item behaves as an empty item for every read.
type Item struct {
	fields map[string]any
}

// New returns an empty item.
func New() *Item {
	return &Item{fields: make(map[string]any)}
}

// FromMap returns an item holding a copy of m's entries.
// Later changes to m do not affect the item.
func FromMap(m map[string]any) *Item {
	return &Item{fields: maps.Clone(m)}
}

// Get returns the value stored under name and whether the field is present.
func (it *Item) Get(name string) (any, bool) {
	if it == nil {
		return nil, false
	}
	v, ok := it.fields[name]
	return v, ok
}

// Has reports whether name is a field of the item.
func (it *Item) Has(name string) bool {
	_, ok := it.Get(name)
	return ok
}

// Set creates or overwrites the field name and returns the item, so that
// producers can chain calls.
func (it *Item) Set(name string, value any) *Item {
	if it.fields == nil {
		it.fields = make(map[string]any)
	}
	it.fields[name] = value
	return it
}

// Remove deletes the field name. Removing an absent field is a no-op.
func (it *Item) Remove(name string) *Item {
	delete(it.fields, name)
	return it
}

// Len returns the number of fields.
func (it *Item) Len() int {
	if it == nil {
		return 0
	}
	return len(it.fields)
}

// Keys returns the field names in sorted order.
func (it *Item) Keys() []string {
	if it == nil {
		return []string{}
	}
	return slices.Sorted(maps.Keys(it.fields))
}

// All returns an iterator over the fields in sorted key order.
func (it *Item) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range it.Keys() {
			if !yield(k, it.fields[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy: the field map is new, values are shared.
func (it *Item) Clone() *Item {
	if it == nil {
		return New()
	}
	return FromMap(it.fields)
}

// Map returns a snapshot of the item as a plain map.
//
// Nested items are converted recursively, so neither the returned map nor
// anything reachable from it aliases the item's storage: *Item values become
// map[string]any and []*Item values become []map[string]any. Other values
// are copied as-is.
//
// An item reachable more than once converts to a single map shared by every
// occurrence. A cycle, such as an item stored in one of its own fields,
// therefore yields a map that contains itself.
func (it *Item) Map() map[string]any {
	return it.snapshot(make(map[*Item]map[string]any))
}

func (it *Item) snapshot(seen map[*Item]map[string]any) map[string]any {
	if m, ok := seen[it]; ok {
		return m
	}
	out := make(map[string]any, it.Len())
	if it != nil {
		seen[it] = out
	}
	for k, v := range it.All() {
		out[k] = snapshotValue(v, seen)
	}
	return out
}

func snapshotValue(v any, seen map[*Item]map[string]any) any {
	switch t := v.(type) {
	case *Item:
		if t == nil {
			return map[string]any(nil)
		}
		return t.snapshot(seen)
	case []*Item:
		if t == nil {
			return []map[string]any(nil)
		}
		out := make([]map[string]any, len(t))
		for i, sub := range t {
			if sub != nil {
				out[i] = sub.snapshot(seen)
			}
		}
		return out
	default:
		return v
	}
}

var printer = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	MaxDepth:                10,
}

// String renders the item on a single line, e.g. map[age:30 name:Alice].
// Nesting deeper than 10 levels, cycles included, is cut off as <max>.
func (it *Item) String() string {
	return printer.Sprintf("%v", it.Map())
}

// Dump renders the item with types, one field per line.
func (it *Item) Dump() string {
	return printer.Sdump(it.Map())
}
