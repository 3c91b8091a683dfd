package itemfn

type (
	// Function is a unary operation that may fail. Every predicate and
	// mapper of this package implements it.
	Function[In, Out any] interface {
		Apply(in In) (Out, error)
	}

	// Func adapts an ordinary function to Function.
	Func[In, Out any] func(in In) (Out, error)
)

// Apply calls f(in).
func (f Func[In, Out]) Apply(in In) (Out, error) {
	return f(in)
}

// Then returns a Function that applies f and feeds its result to g.
// An error from f short-circuits g and is returned as-is.
func Then[A, B, C any](f Function[A, B], g Function[B, C]) Function[A, C] {
	return Func[A, C](func(in A) (C, error) {
		mid, err := f.Apply(in)
		if err != nil {
			var zero C
			return zero, err
		}
		return g.Apply(mid)
	})
}

// Not negates a predicate. Errors pass through.
func Not[T any](p Function[T, bool]) Function[T, bool] {
	return Func[T, bool](func(in T) (bool, error) {
		ok, err := p.Apply(in)
		if err != nil {
			return false, err
		}
		return !ok, nil
	})
}

// And is true when every predicate is true. Evaluation stops at the first
// false result or error. And with no predicates is true.
func And[T any](preds ...Function[T, bool]) Function[T, bool] {
	return Func[T, bool](func(in T) (bool, error) {
		for _, p := range preds {
			ok, err := p.Apply(in)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	})
}

// Or is true when any predicate is true. Evaluation stops at the first
// true result or error. Or with no predicates is false.
func Or[T any](preds ...Function[T, bool]) Function[T, bool] {
	return Func[T, bool](func(in T) (bool, error) {
		for _, p := range preds {
			ok, err := p.Apply(in)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	})
}
