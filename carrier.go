// carrier.go - the generic (error, context) pair.
//
// Design:
//   - Carrier is a plain value: two unexported fields fixed at construction.
//     Nothing in the package mutates a Carrier after New returns it.
//   - Accessors copy out one part without touching the other; Parts returns
//     both. Go has no move semantics, so a decomposed Carrier stays readable;
//     callers treat it as spent by convention.
//   - Carrier is itself Contextual (identity), which makes it the default
//     target type and the identity case of Convert.
package errctx

import (
	"fmt"
	"log/slog"
)

// Carrier pairs an error of type E with a context value of type C.
//
// A Carrier is created at the moment context is attached and normally
// converted straight into a target type (see Convert). When no target type is
// needed it is returned as-is: Carrier implements error, Unwrap, fmt.Formatter
// and slog.LogValuer.
type Carrier[E, C any] struct {
	err E
	ctx C
}

// compile-time guarantees
var (
	_ Contextual[error, string, Carrier[error, string]] = Carrier[error, string]{}
	_ error                                             = Carrier[error, string]{}
	_ fmt.Formatter                                     = Carrier[error, string]{}
	_ slog.LogValuer                                    = Carrier[error, string]{}
	_ ContextReporter                                   = Carrier[error, string]{}
)

// New builds a Carrier from err and ctx. It never fails and performs no
// validation; a nil err is stored as-is.
func New[E, C any](err E, ctx C) Carrier[E, C] {
	return Carrier[E, C]{err: err, ctx: ctx}
}

// Err returns the inner error.
func (c Carrier[E, C]) Err() E { return c.err }

// Context returns the attached context value.
func (c Carrier[E, C]) Context() C { return c.ctx }

// Parts decomposes the carrier into its error and context.
func (c Carrier[E, C]) Parts() (E, C) { return c.err, c.ctx }

// FromErrorAndContext implements Contextual for Carrier itself. It is exactly New.
func (Carrier[E, C]) FromErrorAndContext(err E, ctx C) Carrier[E, C] {
	return New(err, ctx)
}

// ContextValue implements ContextReporter.
func (c Carrier[E, C]) ContextValue() any { return c.ctx }

// Error renders "while <context> got error: <error>". Nested carriers render
// outermost context first.
func (c Carrier[E, C]) Error() string {
	return fmt.Sprintf("while %v got error: %v", c.ctx, c.err)
}

// Unwrap returns the inner error when E holds an error value, nil otherwise.
func (c Carrier[E, C]) Unwrap() error {
	if err, ok := any(c.err).(error); ok {
		return err
	}
	return nil
}

// LogValue renders the carrier as a {context, error} group. Nested carriers
// resolve recursively through slog.
func (c Carrier[E, C]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("context", c.ctx),
		slog.Any("error", c.err),
	)
}
