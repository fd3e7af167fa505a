// attach.go - the same operations for ordinary (T, error) call sites.
//
// Purpose
//   - Let functions that return (T, error) or error attach context inline
//     without going through Result.
//   - A nil err is the success path: it is returned as an untyped nil, so
//     callers never see a typed-nil F boxed in a non-nil error.
//
// On the error path the value v is passed through unchanged (mirrors
// io.Writer-style partial results); callers that do not care ignore it.
package errctx

// ErrorContextual constrains a target type that is itself an error and can
// be built from an inner error plus a context of type C.
type ErrorContextual[C, F any] interface {
	error
	Contextual[error, C, F]
}

// Attach returns (v, nil) when err is nil and (v, F{err, ctx}) otherwise.
//
//	data, err := os.ReadFile(path)
//	return errctx.Attach[LoadError](data, err, path)
func Attach[F ErrorContextual[C, F], T, C any](v T, err error, ctx C) (T, error) {
	if err == nil {
		return v, nil
	}
	return v, Convert[F](New(err, ctx))
}

// AttachWith is Attach with a lazily-built context: fn is never called when
// err is nil.
func AttachWith[F ErrorContextual[C, F], T, C any](v T, err error, fn func() C) (T, error) {
	if err == nil {
		return v, nil
	}
	return v, Convert[F](New(err, fn()))
}

// AttachFunc is Attach with an explicit Builder.
func AttachFunc[T, C any, F error](v T, err error, ctx C, b Builder[error, C, F]) (T, error) {
	if err == nil {
		return v, nil
	}
	return v, ConvertFunc(New(err, ctx), b)
}

// Wrap attaches ctx to err for functions that return only an error.
// Wrap(nil, ...) is nil.
func Wrap[F ErrorContextual[C, F], C any](err error, ctx C) error {
	if err == nil {
		return nil
	}
	return Convert[F](New(err, ctx))
}

// WrapWith is Wrap with a lazily-built context.
func WrapWith[F ErrorContextual[C, F], C any](err error, fn func() C) error {
	if err == nil {
		return nil
	}
	return Convert[F](New(err, fn()))
}
