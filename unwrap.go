// unwrap.go - traversal over error graphs.
//
// Scope:
//   - Pre-order traversal over single- and multi-wrapped errors, so lookups
//     cooperate with errors.Join (Unwrap() []error) and classic wrapping
//     (Unwrap() error) alike.
//   - Nodes are identified by identity, not by value. A pointer-typed error
//     reached twice is visited once (this is what makes cycles terminate);
//     value-typed errors such as Carrier are visited every time they occur,
//     so two equal carriers joined together both count.
//   - Value types cannot close a cycle without a pointer or reference type
//     somewhere in between; such pathological graphs are bounded by maxDepth
//     (nesting) and maxNodes (total visits). Width is never capped on its own:
//     a join of any number of causes is fully explored.
package errctx

import "reflect"

// single/multi unwrap interfaces (stdlib-compatible)
type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const (
	maxDepth = 1 << 12
	maxNodes = 1 << 20
)

// seenPtrs tracks pointer-typed errors by address.
type seenPtrs map[uintptr]struct{}

// mark returns true if err should be visited: it is not a pointer, or it is a
// pointer not seen before.
func (s seenPtrs) mark(err error) bool {
	if err == nil {
		return false
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return true
	}
	id := rv.Pointer()
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// children returns the direct causes of err, left to right.
func children(err error) []error {
	switch u := err.(type) {
	case multiUnwrapper:
		return u.Unwrap()
	case singleUnwrapper:
		if c := u.Unwrap(); c != nil {
			return []error{c}
		}
	}
	return nil
}

// Walk visits the nodes of err's unwrap graph in pre-order (a node before its
// causes, joined causes left to right). It stops as soon as visit returns
// false. A nil err or visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	type frame struct {
		err   error
		depth int
	}

	seen := make(seenPtrs, 8)
	seen.mark(err)
	stack := make([]frame, 0, 8)
	stack = append(stack, frame{err: err})

	for visited := 0; len(stack) > 0 && visited < maxNodes; visited++ {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur.err) {
			return
		}
		if cur.depth >= maxDepth {
			continue
		}

		// push in reverse for left-to-right order
		kids := children(cur.err)
		for i := len(kids) - 1; i >= 0; i-- {
			if k := kids[i]; k != nil && seen.mark(k) {
				stack = append(stack, frame{err: k, depth: cur.depth + 1})
			}
		}
	}
}

// Root returns the root cause of err: the first leaf reached by Walk (the
// deepest error along the first unwrap path). Root(nil) is nil.
func Root(err error) error {
	var root error
	Walk(err, func(e error) bool {
		if len(children(e)) == 0 {
			root = e
			return false
		}
		return true
	})
	return root
}
