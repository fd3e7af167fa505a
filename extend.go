// extend.go - attaching context to a Result.
//
// Go methods cannot declare their own type parameters, so the operations are
// package functions taking the Result first. Every one of them:
//   - Returns the Ok branch unchanged and does no other work on it.
//   - Builds a Carrier from the error and the context on the Err branch and
//     converts it into the target type (Convert / ConvertFunc).
//   - Calls a lazy supplier at most once, and only on the Err branch.
package errctx

// Context attaches ctx to r's error, converting it into the target type F.
//
//	out := errctx.Context[ConfigError](r, "loading config")
//
// ctx is evaluated by the caller before the call; use WithContext when it is
// expensive to build.
func Context[F Contextual[E, C, F], T, E, C any](r Result[T, E], ctx C) Result[T, F] {
	return mapErr(r, func(err E) F {
		return Convert[F](New(err, ctx))
	})
}

// WithContext is Context with a lazily-built context: fn runs exactly once
// when r is an error and never when r is Ok.
func WithContext[F Contextual[E, C, F], T, E, C any](r Result[T, E], fn func() C) Result[T, F] {
	return mapErr(r, func(err E) F {
		return Convert[F](New(err, fn()))
	})
}

// ContextFunc is Context with an explicit Builder instead of F's method.
func ContextFunc[T, E, C, F any](r Result[T, E], ctx C, b Builder[E, C, F]) Result[T, F] {
	return mapErr(r, func(err E) F {
		return ConvertFunc(New(err, ctx), b)
	})
}

// WithContextFunc is WithContext with an explicit Builder instead of F's method.
func WithContextFunc[T, E, C, F any](r Result[T, E], fn func() C, b Builder[E, C, F]) Result[T, F] {
	return mapErr(r, func(err E) F {
		return ConvertFunc(New(err, fn()), b)
	})
}

// WrapContext attaches ctx using Carrier as the target type. Calls nest:
//
//	r2 := errctx.WrapContext(errctx.WrapContext(r, "opening file"), "processing fish sticks")
//	// r2's error: while processing fish sticks got error: while opening file got error: ...
func WrapContext[T, E, C any](r Result[T, E], ctx C) Result[T, Carrier[E, C]] {
	return Context[Carrier[E, C]](r, ctx)
}

// WrapContextWith is WrapContext with a lazily-built context.
func WrapContextWith[T, E, C any](r Result[T, E], fn func() C) Result[T, Carrier[E, C]] {
	return WithContext[Carrier[E, C]](r, fn)
}
