// result.go - a two-branch result value for generic error types.
//
// Plain Go code returns (T, error) and uses err == nil as the success test.
// That does not work for an arbitrary error type E (which may not be
// comparable to nil), so Result records the branch explicitly. Of and Split
// convert between Result and the (T, error) form.
package errctx

// Result holds either a success value of type T or an error of type E.
// The zero Result is Ok with T's zero value.
type Result[T, E any] struct {
	val    T
	err    E
	failed bool
}

// Ok returns a success Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v}
}

// Err returns a failed Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err, failed: true}
}

// Of adapts an ordinary Go (T, error) return into a Result. A nil err means Ok.
//
//	r := errctx.Of(os.ReadFile(path))
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// Split converts r back into the (T, error) form. On the Ok branch the error
// is an untyped nil, never a typed-nil E.
func Split[T any, E error](r Result[T, E]) (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.val, nil
}

func (r Result[T, E]) IsOk() bool  { return !r.failed }
func (r Result[T, E]) IsErr() bool { return r.failed }

// Value returns the success value and true, or T's zero value and false.
func (r Result[T, E]) Value() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.val, true
}

// Failure returns the error and true, or E's zero value and false.
func (r Result[T, E]) Failure() (E, bool) {
	if !r.failed {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unpack returns both slots. Exactly one of them is meaningful; check IsOk.
func (r Result[T, E]) Unpack() (T, E) { return r.val, r.err }

// mapErr rebuilds r with its error passed through fn. The Ok branch is copied
// through and fn is not called.
func mapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if !r.failed {
		return Ok[T, F](r.val)
	}
	return Err[T](fn(r.err))
}
