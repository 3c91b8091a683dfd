package pipe

import (
	"fmt"
	"reflect"

	"github.com/KasperOmsK/itemfn"
)

// Map applies fn to each value and yields the results.
//
// A value for which fn fails is dropped and reported on the error channel.
//
// Errors from the input Pipe are preserved.
func Map[In, Out any](p Pipe[In], fn itemfn.Function[In, Out]) Pipe[Out] {
	return newPipe(func(yield func(Out) bool) {
		for in := range p.values() {
			result, err := fn.Apply(in)
			if err != nil {
				p.errors <- PipelineError{Item: in, Reason: err}
				continue
			}
			if !yield(result) {
				return
			}
		}
	}, p.errors)
}

// Filter yields only the values for which predicate is true.
//
// A value for which predicate fails is dropped and reported on the error
// channel.
//
// Errors from the input Pipe are preserved.
func Filter[T any](p Pipe[T], predicate itemfn.Function[T, bool]) Pipe[T] {
	return newPipe(func(yield func(T) bool) {
		for in := range p.values() {
			keep, err := predicate.Apply(in)
			if err != nil {
				p.errors <- PipelineError{Item: in, Reason: err}
				continue
			}
			if keep {
				if !yield(in) {
					return
				}
			}
		}
	}, p.errors)
}

// GroupByField groups consecutive items sharing the same value of field and
// yields one group item per run:
//
//	{field: <value>, sub_stream: [<items of the run>]}
//
// Like a streaming group-by it does not reorder: given items whose field
// values are A, A, B, A it yields three groups. Sort upstream for one group
// per value.
//
// Items lacking field, or whose value is not comparable, are dropped and
// reported on the error channel; they do not end the current run.
//
// Errors from the input Pipe are preserved.
func GroupByField(p Pipe[*itemfn.Item], field string) Pipe[*itemfn.Item] {
	return newPipe(func(yield func(*itemfn.Item) bool) {
		var (
			accum []*itemfn.Item
			key   any
		)
		emit := func() bool {
			group := itemfn.New().
				Set(field, key).
				Set(itemfn.SubStreamField, accum)
			accum = nil
			return yield(group)
		}

		for it := range p.values() {
			k, err := itemfn.Lookup(it, field)
			if err == nil && k != nil && !reflect.ValueOf(k).Comparable() {
				err = fmt.Errorf("field %q: cannot group by %T", field, k)
			}
			if err != nil {
				p.errors <- PipelineError{Item: it, Reason: err}
				continue
			}
			if len(accum) > 0 && k != key {
				if !emit() {
					return
				}
			}
			key = k
			accum = append(accum, it)
		}

		// last group
		if len(accum) > 0 {
			emit()
		}
	}, p.errors)
}
