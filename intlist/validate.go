package intlist

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// validateErrorf tags a sentinel with the chain position where it was found.
func validateErrorf(pos int, err error) error {
	return fmt.Errorf("Validate: node %d: %w", pos, err)
}

// Validate checks the structural invariants of the chain reachable from head:
// the chain is finite and acyclic, and it reaches no released node.
//
// It returns nil for a nil head or a well-formed chain, an error wrapping
// ErrCycle when a node is reached twice, or an error wrapping ErrReleasedNode
// when a released node is reachable. Positions in the message are 0-based.
//
// Unlike Size and Tail, Validate terminates on cyclic chains, so it is the
// safe first call on a chain of unknown origin.
// Complexity: O(n) time, O(n) memory for the visited set.
func Validate(head *Node) error {
	seen := mapset.NewThreadUnsafeSet[*Node]()
	pos := 0
	for cur := head; cur != nil; cur = cur.next {
		if cur.released {
			return validateErrorf(pos, ErrReleasedNode)
		}
		if seen.Contains(cur) {
			return validateErrorf(pos, ErrCycle)
		}
		seen.Add(cur)
		pos++
	}

	return nil
}
