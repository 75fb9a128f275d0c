package intlist

// Create allocates a single heap node holding value, with no successor.
// Heap allocation does not fail, so the result is never nil.
// Complexity: O(1).
func Create(value int) *Node {
	return (*Pool)(nil).Create(value)
}

// Create allocates a single node holding value from p.
// It returns nil when p has reached its capacity.
// Complexity: O(1).
func (p *Pool) Create(value int) *Node {
	return p.alloc(value)
}

// Destroy releases every node reachable from head. A nil head is a no-op.
//
// After Destroy the caller must treat head, and every node handle previously
// obtained from the chain, as invalid. Released nodes are unlinked and marked,
// so Validate reports them if they are reached again.
// Complexity: O(n).
func Destroy(head *Node) {
	cur := head
	for cur != nil {
		next := cur.next
		release(cur)
		cur = next
	}
}

// Append links a new node holding value after the tail of head.
//
// Precondition: head is non-nil. Append returns nothing, so it cannot hand a
// new head back to the caller; with a nil head it does nothing. The new node
// is allocated from head's pool; if that allocation fails the list is left
// unchanged and no signal is given. Use Extend when head may be nil or when
// the caller needs to know the resulting head.
// Complexity: O(n).
func Append(head *Node, value int) {
	if head == nil {
		return // no handle to return to the caller
	}
	tail := Tail(head)
	node := head.pool.alloc(value)
	if node == nil {
		return
	}
	tail.next = node
}

// Extend appends value like Append but returns the resulting head, so it can
// also start a list from a nil head. On allocation failure it returns head
// unchanged.
// Complexity: O(n).
func Extend(head *Node, value int) *Node {
	return (*Pool)(nil).Extend(head, value)
}

// Extend appends value to head and returns the resulting head.
//
// A non-nil head keeps allocating from its own pool; p is only used to create
// the first node when head is nil. On allocation failure head is returned
// unchanged, which is nil when the list was empty.
// Complexity: O(n).
func (p *Pool) Extend(head *Node, value int) *Node {
	if head == nil {
		return p.alloc(value)
	}
	node := head.pool.alloc(value)
	if node == nil {
		return head
	}
	Tail(head).next = node

	return head
}

// FromArray builds a new heap chain holding values in order.
// It returns nil for an empty or nil slice.
// Complexity: O(n).
func FromArray(values []int) *Node {
	return (*Pool)(nil).FromArray(values)
}

// FromArray builds a new chain from p holding values in order.
//
// It returns nil for an empty or nil slice. If any allocation fails partway,
// every node allocated by this call is released before returning nil, so no
// partial chain is left behind.
// Complexity: O(n).
func (p *Pool) FromArray(values []int) *Node {
	if len(values) == 0 {
		return nil
	}
	head := p.alloc(values[0])
	if head == nil {
		return nil
	}
	tail := head
	for _, v := range values[1:] {
		node := p.alloc(v)
		if node == nil {
			Destroy(head) // roll back everything built so far
			return nil
		}
		tail.next = node
		tail = node
	}

	return head
}

// Remove unlinks and releases the first node, in head-to-tail order, whose
// Data equals value, and returns the resulting head.
//
// The returned head differs from the input when the head itself matched.
// When value is absent head is returned unchanged; a nil head yields nil;
// removing the only node yields nil.
// Complexity: O(n).
func Remove(head *Node, value int) *Node {
	if head == nil {
		return nil
	}
	if head.Data == value {
		newHead := head.next
		release(head)
		return newHead
	}
	prev := head
	for cur := head.next; cur != nil; cur = cur.next {
		if cur.Data == value {
			prev.next = cur.next
			release(cur)
			return head
		}
		prev = cur
	}

	return head
}
