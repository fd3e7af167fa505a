// fixtures_test.go - target error types shared by the package tests.
package errctx

import (
	"fmt"
	"strconv"
)

// stringContextError renders "<context>: <error>" from a string error.
type stringContextError struct{ msg string }

func (stringContextError) FromErrorAndContext(err string, ctx string) stringContextError {
	return stringContextError{msg: ctx + ": " + err}
}

func (e stringContextError) Error() string { return e.msg }

// ioError is a small closed error enum.
type ioError int

const (
	ioNotFound ioError = iota + 1
	ioPermission
)

func (e ioError) Error() string {
	switch e {
	case ioNotFound:
		return "not found"
	case ioPermission:
		return "permission denied"
	default:
		return "io error " + strconv.Itoa(int(e))
	}
}

// retryError stores the io error and the attempt count as a pair.
type retryError struct {
	Err      ioError
	Attempts uint32
}

func (retryError) FromErrorAndContext(err ioError, attempts uint32) retryError {
	return retryError{Err: err, Attempts: attempts}
}

func (e retryError) Error() string {
	return fmt.Sprintf("after %d attempts: %v", e.Attempts, e.Err)
}

// loadError wraps any error with the path being loaded. It also reports the
// path through ContextReporter.
type loadError struct {
	Path string
	Err  error
}

func (loadError) FromErrorAndContext(err error, path string) loadError {
	return loadError{Path: path, Err: err}
}

func (e loadError) Error() string     { return e.Path + ": " + e.Err.Error() }
func (e loadError) Unwrap() error     { return e.Err }
func (e loadError) ContextValue() any { return e.Path }

// ptrError uses a nil-safe pointer receiver for the capability.
type ptrError struct {
	Op  string
	Err error
}

func (*ptrError) FromErrorAndContext(err error, op string) *ptrError {
	return &ptrError{Op: op, Err: err}
}

func (e *ptrError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *ptrError) Unwrap() error { return e.Err }

// queryError accepts two context shapes through explicit builders.
type queryError struct {
	Table string
	Row   int
	Err   error
}

func (e queryError) Error() string {
	if e.Table != "" {
		return "table " + e.Table + ": " + e.Err.Error()
	}
	return "row " + strconv.Itoa(e.Row) + ": " + e.Err.Error()
}

func (e queryError) Unwrap() error { return e.Err }

func queryByTable(err error, table string) queryError {
	return queryError{Table: table, Err: err}
}

func queryByRow(err error, row int) queryError {
	return queryError{Row: row, Err: err}
}

// mustNotCall returns a supplier that fails the test if invoked.
func mustNotCall[C any](t interface{ Fatalf(string, ...any) }) func() C {
	return func() C {
		t.Fatalf("context supplier must not be called on the success path")
		var zero C
		return zero
	}
}

// countingSupplier returns a supplier of v and a pointer to its call count.
func countingSupplier[C any](v C) (func() C, *int) {
	n := 0
	return func() C {
		n++
		return v
	}, &n
}
