// capability.go - the contract a target error type implements to accept context.
//
// A type F is "contextual over (E, C)" when it can be built from an inner error
// of type E and a context value of type C. Generic operations in this package
// constrain F by Contextual[E, C, F] and call the method on F's zero value, so
// the capability is resolved at compile time and costs no dynamic dispatch.
package errctx

// Contextual is implemented by a type F that can be constructed from an inner
// error and a context value.
//
// FromErrorAndContext MUST:
//   - Be total: construction cannot fail. If building F can fail for a given
//     implementation, handle that outside this contract.
//   - Incorporate both err and ctx into the returned value. How they are stored
//     or rendered is up to the implementation.
//   - Not depend on receiver state. It is called on the zero value of F; use a
//     value receiver or a pointer receiver that never dereferences.
//
// Example:
//
//	type QueryError struct {
//	    Table string
//	    Err   error
//	}
//
//	func (QueryError) FromErrorAndContext(err error, table string) QueryError {
//	    return QueryError{Table: table, Err: err}
//	}
type Contextual[E, C, F any] interface {
	FromErrorAndContext(err E, ctx C) F
}

// Builder is the explicit factory form of Contextual.
//
// Go allows only one FromErrorAndContext method per type, so a target type
// that accepts several context shapes exposes one Builder per shape and is
// used through the ...Func operations (ContextFunc, WithContextFunc,
// ConvertFunc, AttachFunc).
type Builder[E, C, F any] func(err E, ctx C) F

// BuilderOf returns the Builder backed by F's FromErrorAndContext method.
func BuilderOf[F Contextual[E, C, F], E, C any]() Builder[E, C, F] {
	return build[F, E, C]
}

// build invokes the capability on F's zero value.
func build[F Contextual[E, C, F], E, C any](err E, ctx C) F {
	var zero F
	return zero.FromErrorAndContext(err, ctx)
}
