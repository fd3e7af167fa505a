// format.go - fmt.Formatter for Carrier.
//
// Behavior:
//
//	%s, %v   concise string (Error()).
//	%q       quoted Error().
//	%+v      verbose multi-line format:
//	           ctx=<context>
//	           cause: <inner error, recursively formatted with %+v>
package errctx

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the context and, recursively, the cause. A nil cause
// (E held no error) is rendered with %v so non-error E still shows up.
func formatVerbose(w io.Writer, ctx, cause any) {
	_, _ = fmt.Fprintf(w, "ctx=%v", ctx)
	_, _ = io.WriteString(w, "\ncause: ")
	if err, ok := cause.(error); ok {
		_, _ = fmt.Fprintf(w, "%+v", err)
		return
	}
	_, _ = fmt.Fprintf(w, "%v", cause)
}

func (c Carrier[E, C]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, c.ctx, c.err)
			return
		}
		formatConcise(s, c)
	case 's':
		formatConcise(s, c)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.Error())
	default:
		formatConcise(s, c)
	}
}
