package errctx

// Convert turns a Carrier into the target type F by decomposing it and calling
// F's FromErrorAndContext. The result is the same value a direct
// FromErrorAndContext(err, ctx) call would produce.
//
// F cannot be inferred from the argument, so name it at the call site:
//
//	qe := errctx.Convert[QueryError](errctx.New(err, "users"))
func Convert[F Contextual[E, C, F], E, C any](c Carrier[E, C]) F {
	err, ctx := c.Parts()
	return build[F](err, ctx)
}

// ConvertFunc is Convert with an explicit Builder.
func ConvertFunc[E, C, F any](c Carrier[E, C], b Builder[E, C, F]) F {
	err, ctx := c.Parts()
	return b(err, ctx)
}
