package itemfn

import "fmt"

// ProjectMode selects how Project interprets its field list.
type ProjectMode int

const (
	// Include keeps only the listed fields.
	Include ProjectMode = iota
	// Exclude drops the listed fields.
	Exclude
)

// String returns "include" or "exclude".
func (m ProjectMode) String() string {
	switch m {
	case Include:
		return "include"
	case Exclude:
		return "exclude"
	default:
		return fmt.Sprintf("ProjectMode(%d)", int(m))
	}
}

// Projector restricts an item's key set. See Project.
type Projector struct {
	mode   ProjectMode
	fields map[string]struct{}
}

// Project returns a mapper yielding a new item restricted to, or stripped
// of, fields.
//
// Names that are not keys of the input are ignored in both modes: a
// projection filters, it never validates. Values are shared with the input.
//
// Project panics if mode is neither Include nor Exclude.
func Project(mode ProjectMode, fields ...string) Projector {
	if mode != Include && mode != Exclude {
		panic("itemfn.Project: unknown mode " + mode.String())
	}
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return Projector{mode: mode, fields: set}
}

// IncludeFields is Project(Include, fields...).
func IncludeFields(fields ...string) Projector {
	return Project(Include, fields...)
}

// ExcludeFields is Project(Exclude, fields...).
func ExcludeFields(fields ...string) Projector {
	return Project(Exclude, fields...)
}

// Apply returns a new item holding the projected fields of it.
func (p Projector) Apply(it *Item) (*Item, error) {
	out := New()
	for k, v := range it.All() {
		_, listed := p.fields[k]
		if listed == (p.mode == Include) {
			out.Set(k, v)
		}
	}
	return out, nil
}
