// Package errctx attaches statically-typed context to errors as they
// propagate up a call chain, without erasing the original error's type.
//
// The package is small and policy-free: no logging, no retries, no
// classification. It is built from four pieces:
//
//   - Contextual / Builder:
//     the capability "a type F can be built from an inner error E plus a
//     context value C". Implement FromErrorAndContext on your error type, or
//     hand a Builder to the ...Func variants when one type accepts several
//     context shapes.
//   - Carrier:
//     an immutable (error, context) pair. It implements the capability for
//     itself, so it is also the default target when you do not have one.
//   - Convert / ConvertFunc:
//     the bridge turning a Carrier into any target type.
//   - Context / WithContext (Result) and Attach / AttachWith / Wrap ((T, error)):
//     the call-site operations. The success path is passed through untouched
//     and lazy suppliers are never invoked on it.
//
// # Typical patterns
//
// A target error type that records where the failure happened:
//
//	type LoadError struct {
//	    Path string
//	    Err  error
//	}
//
//	func (LoadError) FromErrorAndContext(err error, path string) LoadError {
//	    return LoadError{Path: path, Err: err}
//	}
//
//	func (e LoadError) Error() string { return e.Path + ": " + e.Err.Error() }
//
//	func load(path string) ([]byte, error) {
//	    data, err := os.ReadFile(path)
//	    return errctx.Attach[LoadError](data, err, path)
//	}
//
// Attach cannot infer F from its arguments, so the target is always named at
// the call site. The remaining type parameters are inferred.
//
// With the Result type the same flow reads:
//
//	r := errctx.Of(os.ReadFile(path))
//	out := errctx.WithContext[LoadError](r, func() string { return path })
//
// Without a target type, WrapContext and Wrap build Carrier values. Carriers
// nest and render as
//
//	while processing fish sticks got error: while opening file got error: file is no good
//
// # The value slot on the error path
//
// One rule throughout: on failure the value is whatever the input held.
// Attach, AttachWith, AttachFunc and Within return the caller's v unchanged
// (like an io.Writer's partial count). A Result on the Err branch holds no
// value, so Value and Split report T's zero value.
//
// # Root causes
//
// RootCause and MapNoContext mark an error as not yet annotated. WrapRoot,
// WrapRootWith and InRootContextOf attach the first context by promoting the
// marker into a plain Carrier[E, C] rather than nesting it.
//
// # Capability receivers
//
// Generic operations call FromErrorAndContext on the zero value of F. Use a
// value receiver, or a pointer receiver that does not dereference.
//
// # Reading context back
//
// ContextOf, HasContext and Contexts walk an error's unwrap graph (including
// errors.Join trees) and return context values by dynamic type. Any error
// that implements ContextValue() any takes part, not only Carrier.
//
// # Interop
//
//   - Carrier.Unwrap exposes the inner error, so errors.Is/As see through it.
//   - Carrier implements fmt.Formatter: %v and %s are concise, %+v is verbose
//     and recursive.
//   - Carrier implements slog.LogValuer and logs as a {context, error} group.
//
// # Performance
//
// Everything is resolved through generics at compile time. The Ok path does
// no work beyond returning its input; Carrier is a plain value. The one
// deviation is the lookup family, which inspects dynamic types at runtime.
package errctx
