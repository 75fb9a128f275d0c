// Package intlist defines the Node type, the Pool allocator options and the
// sentinel errors shared by every intlist operation.
package intlist

import "errors"

// Sentinel errors for intlist operations.
var (
	// ErrCycle indicates a chain that reaches the same node twice.
	ErrCycle = errors.New("intlist: chain contains a cycle")

	// ErrReleasedNode indicates a chain that reaches a node already released
	// by Destroy or Remove.
	ErrReleasedNode = errors.New("intlist: chain reaches a released node")

	// ErrNotInteger indicates a vector entry that is NaN, infinite, fractional
	// or outside the int range.
	ErrNotInteger = errors.New("intlist: value is not an integer")

	// ErrExhausted indicates that a Pool reached its capacity.
	ErrExhausted = errors.New("intlist: pool exhausted")
)

// Node is one element of a chain and, when it is the first one, the handle of
// the whole list.
//
// Data is freely writable. The successor link is private so that only the
// package can relink nodes; read it with Next.
type Node struct {
	// Data is the integer payload.
	Data int

	next     *Node // successor, nil at the tail
	pool     *Pool // allocator that owns this node; nil for plain heap nodes
	released bool  // set once the node has been handed back to its pool
}

// Next returns the successor of n, or nil when n is the tail or n is nil.
// Complexity: O(1).
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}

	return n.next
}

// Released reports whether n has been released by Destroy or Remove.
// A released node must not be read or linked again.
func (n *Node) Released() bool {
	return n != nil && n.released
}

// PoolOption configures a Pool before first use.
type PoolOption func(p *Pool)

// WithCapacity limits the number of live nodes a Pool hands out.
// A non-positive n leaves the pool unbounded.
func WithCapacity(n int) PoolOption {
	return func(p *Pool) {
		if n < 0 {
			n = 0
		}
		p.capacity = n
	}
}

// WithOnAlloc registers fn to run after every successful allocation.
func WithOnAlloc(fn func(n *Node)) PoolOption {
	return func(p *Pool) { p.onAlloc = fn }
}

// WithOnRelease registers fn to run just before a node is released.
// The node still holds its Data when fn sees it.
func WithOnRelease(fn func(n *Node)) PoolOption {
	return func(p *Pool) { p.onRelease = fn }
}

// PoolStats is a point-in-time snapshot of a Pool's counters.
type PoolStats struct {
	Capacity  int // 0 means unbounded
	Live      int // nodes allocated and not yet released
	Allocated int // total successful allocations
	Released  int // total releases
	Failed    int // allocations refused because of capacity
}
