// nocontext.go - marking an error as a root cause that has no context yet.
//
// A NoContext[E] is an error that has not been annotated. Attaching the first
// context unwraps the marker instead of nesting it: the result is a plain
// Carrier[E, C], not a Carrier[NoContext[E], C]. Carrier already implements
// FromErrorAndContext for (E, C), and Go allows one method of that name per
// type, so the promotion is exposed as a Builder (Promote) and as the Result
// helpers WrapRoot / WrapRootWith.
package errctx

import "fmt"

// NoContext marks Err as a root cause. It renders and unwraps exactly like Err.
type NoContext[E any] struct {
	Err E
}

var _ error = NoContext[error]{}

// RootCause wraps err in the NoContext marker.
func RootCause[E any](err E) NoContext[E] {
	return NoContext[E]{Err: err}
}

// Error delegates to Err.
func (n NoContext[E]) Error() string {
	if err, ok := any(n.Err).(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", n.Err)
}

// Unwrap returns Err when it holds an error value, nil otherwise.
func (n NoContext[E]) Unwrap() error {
	if err, ok := any(n.Err).(error); ok {
		return err
	}
	return nil
}

// Promote attaches the first context to a root cause. It is a
// Builder[NoContext[E], C, Carrier[E, C]].
func Promote[E, C any](n NoContext[E], ctx C) Carrier[E, C] {
	return New(n.Err, ctx)
}

// MapNoContext marks r's error as a root cause. The Ok branch is untouched.
func MapNoContext[T, E any](r Result[T, E]) Result[T, NoContext[E]] {
	return mapErr(r, RootCause[E])
}

// WrapRoot attaches ctx to a root cause, producing a single-level Carrier.
func WrapRoot[T, E, C any](r Result[T, NoContext[E]], ctx C) Result[T, Carrier[E, C]] {
	return ContextFunc(r, ctx, Promote[E, C])
}

// WrapRootWith is WrapRoot with a lazily-built context.
func WrapRootWith[T, E, C any](r Result[T, NoContext[E]], fn func() C) Result[T, Carrier[E, C]] {
	return WithContextFunc(r, fn, Promote[E, C])
}
