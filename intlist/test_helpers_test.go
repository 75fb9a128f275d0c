package intlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/intlist"
)

// mustChain builds a heap chain from values and fails the test if a non-empty
// input produced nil.
func mustChain(t *testing.T, values ...int) *intlist.Node {
	t.Helper()
	head := intlist.FromArray(values)
	if len(values) > 0 {
		require.NotNil(t, head, "FromArray(%v) returned nil", values)
	}

	return head
}

// nodesOf returns every node of the chain in order, so tests can check that
// an operation relinked nodes instead of copying them.
func nodesOf(head *intlist.Node) []*intlist.Node {
	var out []*intlist.Node
	for cur := head; cur != nil; cur = cur.Next() {
		out = append(out, cur)
	}

	return out
}

// requireBalanced asserts the pool counter invariant and the expected live count.
func requireBalanced(t *testing.T, p *intlist.Pool, live int) {
	t.Helper()
	s := p.Stats()
	require.Equal(t, live, s.Live, "live nodes")
	require.Equal(t, s.Allocated-s.Released, s.Live, "Allocated-Released must equal Live")
}
