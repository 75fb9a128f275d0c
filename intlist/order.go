package intlist

import (
	priorityqueue "gopkg.in/dnaeon/go-priorityqueue.v1"
)

// Sort reorders the chain reachable from head into ascending Data order and
// returns the new head. It takes ownership of head: the input handle must not
// be used afterwards except as a node of the returned chain.
//
// Nodes are relinked, never copied or allocated, so pool accounting is
// unchanged. The relative order of equal values is unspecified.
// Complexity: O(n log n) time, O(n) memory for the heap.
func Sort(head *Node) *Node {
	if head == nil || head.next == nil {
		return head
	}
	pq := priorityqueue.New[*Node, int64](priorityqueue.MinHeap)
	for cur := head; cur != nil; cur = cur.next {
		pq.Put(cur, int64(cur.Data))
	}
	var out chainBuilder
	for pq.Len() > 0 {
		out.push(pq.Get().Value)
	}

	return out.head
}

// MergeSorted merges chains that are each sorted ascending into one sorted
// chain and returns its head. It takes ownership of every input; nil heads
// are skipped and no inputs yield nil.
//
// Only the current front of each chain sits in the heap, so memory stays
// O(k). If an input is not sorted, every node still appears exactly once in
// the result but the result is not guaranteed sorted. Ties between chains are
// broken in unspecified order.
// Complexity: O(N log k) for N nodes over k chains.
func MergeSorted(heads ...*Node) *Node {
	pq := priorityqueue.New[*Node, int64](priorityqueue.MinHeap)
	for _, h := range heads {
		if h != nil {
			pq.Put(h, int64(h.Data))
		}
	}
	var out chainBuilder
	for pq.Len() > 0 {
		n := pq.Get().Value
		if n.next != nil {
			pq.Put(n.next, int64(n.next.Data)) // the chain's new front
		}
		out.push(n)
	}

	return out.head
}

// chainBuilder links nodes into a fresh chain in push order.
type chainBuilder struct {
	head, tail *Node
}

// push detaches n from its old successor and links it at the tail.
func (b *chainBuilder) push(n *Node) {
	n.next = nil
	if b.head == nil {
		b.head = n
	} else {
		b.tail.next = n
	}
	b.tail = n
}
