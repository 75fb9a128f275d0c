// Package lvlist is a small, pure-Go playground for an owned singly linked
// list of integers.
//
// Everything lives in one subpackage:
//
//	intlist/ — Node handle type, Pool allocator, queries (Head, Tail, Size,
//	           Find, ToArray), mutations (Create, Append, Extend, FromArray,
//	           Remove, Destroy), Validate, Sort/MergeSorted and gonum vector
//	           conversions.
//
// Quick ASCII example:
//
//	head ──▶ [1] ──▶ [2] ──▶ [3] ──▶ nil
//
// is the list [1 2 3]; the head node is the list, nil is the empty list.
//
// A runnable tour lives in examples/intlist_quick_tour.go.
//
//	go get github.com/katalvlaran/lvlist/intlist
package lvlist
