/*
Package pipe runs itemfn functions over a stream of items.

A Pipe[T] is a lazily-evaluated iter.Seq[T] paired with an error channel.
Stages are package-level functions taking an itemfn.Function; each returns
a new Pipe sharing its input's error channel, so a failure anywhere in the
chain surfaces as a PipelineError on the channel returned by Results and
the failing value is dropped from the stream.

	in := pipe.FromItems(items)
	adults := pipe.Filter(in, itemfn.FieldIn("age_group", "adult"))
	named := pipe.Map(adults, itemfn.IncludeFields("name", "city"))
	groups := pipe.GroupByField(named, "city")
	counts := pipe.Map(groups, itemfn.OutputSubStream(count))

	vals, errs := counts.Results()
	go func() {
		for err := range errs {
			log.Println(err)
		}
	}()
	for n := range vals {
		...
	}

Errors must be consumed concurrently with values: a stage reporting an
error blocks until it is received.
*/
package pipe

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/KasperOmsK/itemfn"
)

// PipelineError is a failure of one stage on one value.
type PipelineError struct {
	// Item is the value the stage was applied to.
	Item any
	// Reason is the error returned by the stage's function, unchanged.
	Reason error
}

// Error describes the failing value and the stage error.
func (e PipelineError) Error() string {
	return fmt.Sprintf("processing %v: %v", e.Item, e.Reason)
}

// Unwrap returns Reason.
func (e PipelineError) Unwrap() error {
	return e.Reason
}

// Pipe is a lazily-evaluated stream of T.
type Pipe[T any] struct {
	seq    iter.Seq[T]
	errors chan PipelineError
	taps   *[]func(T)
}

func newPipe[T any](seq iter.Seq[T], errors chan PipelineError) Pipe[T] {
	return Pipe[T]{seq: seq, errors: errors, taps: new([]func(T))}
}

// From wraps seq into a Pipe with a fresh error channel.
func From[T any](seq iter.Seq[T]) Pipe[T] {
	return newPipe(seq, make(chan PipelineError))
}

// Tap registers fn to observe every value of the pipe as it flows to the
// next stage, for instance to inspect items between two mappers. Taps run
// in the order they were registered, before the value is passed on, and
// see only values that reached this pipe: values dropped upstream never
// reach them.
//
// Tap returns p so calls can be chained. It panics if fn is nil.
func (p Pipe[T]) Tap(fn func(T)) Pipe[T] {
	if fn == nil {
		panic("pipe.Tap: fn must not be nil")
	}
	*p.taps = append(*p.taps, fn)
	return p
}

// values is the pipe's sequence with its taps applied.
func (p Pipe[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range p.seq {
			for _, tap := range *p.taps {
				tap(v)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromItems is From over a slice of items.
func FromItems(items []*itemfn.Item) Pipe[*itemfn.Item] {
	return From(slices.Values(items))
}

// Results returns the pipe's values and errors.
//
// The error channel is closed once iteration of the values ends, whether by
// exhaustion or by the consumer stopping early. Results must be called at
// most once per pipeline.
func (p Pipe[T]) Results() (iter.Seq[T], <-chan PipelineError) {
	var once sync.Once
	done := func() { once.Do(func() { close(p.errors) }) }

	return func(yield func(T) bool) {
		defer done()
		for v := range p.values() {
			if !yield(v) {
				return
			}
		}
	}, p.errors
}

// Values returns the pipe's values and discards every error.
func (p Pipe[T]) Values() iter.Seq[T] {
	vals, errs := p.Results()
	go func() {
		for range errs {
		}
	}()
	return vals
}
