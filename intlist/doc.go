// Package intlist implements an owned, singly linked list of integers that is
// addressed only through its head node.
//
// What:
//
//   - A list is a *Node: the first node of a chain, or nil for the empty list.
//     There is no wrapper object, so size and tail are computed by traversal.
//   - Queries: Head, Tail, Size, Find, ToArray, Equal.
//   - Mutations: Create, Destroy, Append, Extend, FromArray, Remove.
//   - Ordering: Sort and MergeSorted relink existing nodes without allocating.
//   - Conversions: ToVector / FromVector bridge to gonum dense vectors.
//   - Validate checks the structural invariants of a chain.
//
// Ownership:
//
//	The holder of a head owns every node reachable from it. Destroy releases
//	the whole chain; Remove releases exactly one node and hands back the new
//	head. Released nodes are unlinked and marked, so Validate reports any
//	chain that still reaches one.
//
// Allocation:
//
//	Package-level Create and FromArray allocate plain heap nodes and never
//	fail. A *Pool allocates nodes with an optional capacity limit, keeps
//	allocate/release counters and runs hooks. Nodes remember their pool, so
//	Append, Extend, Remove and Destroy account to the right pool no matter
//	which function is called. A nil *Pool behaves like the plain heap.
//
// Failure signalling:
//
//	Allocation failure is signalled by absence: Create and FromArray return
//	nil, Append becomes a no-op. A nil head is a valid empty list for every
//	operation and never an error. Append cannot grow an empty list because it
//	returns nothing; use Extend when the head may be nil.
//
// Complexity:
//
//   - Head, Create:                     O(1).
//   - Tail, Size, Find, Append, Remove: O(n).
//   - ToArray, FromArray, Destroy:      O(n), Memory: O(n).
//   - Sort:                             O(n log n).
//   - MergeSorted:                      O(N log k) for N nodes over k chains.
//
// Concurrency:
//
//	Neither chains nor pools are safe for concurrent use. Callers that share
//	a chain across goroutines must serialise access themselves.
//
// Errors:
//
//   - ErrCycle:        a chain revisits a node.
//   - ErrReleasedNode: a chain reaches a node that was already released.
//   - ErrNotInteger:   a vector entry is not representable as int.
//   - ErrExhausted:    a pool could not allocate a node.
package intlist
