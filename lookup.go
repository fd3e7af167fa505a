// lookup.go - typed access to context values after an error has propagated.
//
// Overview
//
//	Once a Carrier (or any ContextReporter) has been returned up the stack and
//	possibly re-wrapped with fmt.Errorf("%w") or errors.Join, these helpers
//	find context values again by their Go type.
//
// Caveats
//   - Matching uses a type assertion on the stored context: the dynamic type
//     must be C exactly (or implement C when C is an interface). No
//     conversions are attempted.
//   - Target types built through a caller's FromErrorAndContext take part only
//     if they implement ContextReporter themselves.
package errctx

import (
	"fmt"
	"reflect"
)

// ContextReporter is implemented by errors that expose an attached context
// value. Carrier implements it.
type ContextReporter interface {
	ContextValue() any
}

// ContextOf returns the first context of type C found in err's unwrap graph,
// outermost first. It returns (zero, false) if err is nil or nothing matches.
func ContextOf[C any](err error) (C, bool) {
	var (
		out   C
		found bool
	)
	Walk(err, func(e error) bool {
		r, ok := e.(ContextReporter)
		if !ok {
			return true
		}
		if v, ok := r.ContextValue().(C); ok {
			out, found = v, true
			return false
		}
		return true
	})
	return out, found
}

// MustContextOf is ContextOf that panics when no context of type C is present.
//
// Use it in tests or where absence is a programming error.
func MustContextOf[C any](err error) C {
	v, ok := ContextOf[C](err)
	if !ok {
		panic(fmt.Errorf("errctx.MustContextOf[%v]: no such context in %v", reflect.TypeFor[C](), err))
	}
	return v
}

// HasContext reports whether a context of type C appears anywhere in err's
// unwrap graph.
func HasContext[C any](err error) bool {
	_, ok := ContextOf[C](err)
	return ok
}

// Contexts returns every attached context value in Walk order (outermost
// first). Equal value-typed carriers each contribute their context; a
// pointer-typed error reached through several paths contributes once.
// It returns nil if there are none.
func Contexts(err error) []any {
	var out []any
	Walk(err, func(e error) bool {
		if r, ok := e.(ContextReporter); ok {
			out = append(out, r.ContextValue())
		}
		return true
	})
	return out
}
