package errctx

// InContextOf runs body and attaches ctx to its error, if any. It is a
// convenience for grouping several fallible steps under one context:
//
//	r := errctx.InContextOf[SyncError]("syncing inventory", func() errctx.Result[int, error] {
//	    ...
//	})
func InContextOf[F Contextual[E, C, F], T, E, C any](ctx C, body func() Result[T, E]) Result[T, F] {
	return Context[F](body(), ctx)
}

// InContextOfWith runs body and, only if it fails, builds the context with fn.
func InContextOfWith[F Contextual[E, C, F], T, E, C any](fn func() C, body func() Result[T, E]) Result[T, F] {
	return WithContext[F](body(), fn)
}

// InRootContextOf runs body, whose error is an unannotated root cause, and
// promotes that error into a Carrier holding ctx.
func InRootContextOf[T, E, C any](ctx C, body func() Result[T, NoContext[E]]) Result[T, Carrier[E, C]] {
	return WrapRoot(body(), ctx)
}

// Within is InContextOf for bodies returning (T, error).
func Within[F ErrorContextual[C, F], T, C any](ctx C, body func() (T, error)) (T, error) {
	v, err := body()
	return Attach[F](v, err, ctx)
}
