package intlist

// Pool hands out list nodes and takes them back.
//
// A Pool can cap the number of live nodes (WithCapacity), which is the only
// way an allocation can fail, and it counts every allocation and release so
// that callers can prove a chain was fully destroyed.
//
// Every node records the Pool that allocated it. Release always goes back to
// that Pool, and Append/Extend allocate from the head's Pool, so a chain stays
// accounted to one Pool for its lifetime.
//
// A nil *Pool is valid and stands for the plain heap: unbounded, no counters,
// no hooks. Package-level Create and FromArray use it.
//
// Pool is not safe for concurrent use.
type Pool struct {
	capacity  int // max live nodes; 0 = unbounded
	live      int
	allocated int
	released  int
	failed    int

	onAlloc   func(n *Node)
	onRelease func(n *Node)
}

// NewPool creates a Pool configured by opts.
// By default the pool is unbounded and has no hooks.
// Complexity: O(len(opts)).
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Cap returns the live-node limit, 0 when unbounded.
func (p *Pool) Cap() int {
	if p == nil {
		return 0
	}

	return p.capacity
}

// Live returns the number of nodes allocated and not yet released.
func (p *Pool) Live() int {
	if p == nil {
		return 0
	}

	return p.live
}

// Allocated returns the total number of successful allocations.
func (p *Pool) Allocated() int {
	if p == nil {
		return 0
	}

	return p.allocated
}

// Released returns the total number of released nodes.
func (p *Pool) Released() int {
	if p == nil {
		return 0
	}

	return p.released
}

// Stats returns a snapshot of all counters.
// Invariant: Allocated - Released == Live.
func (p *Pool) Stats() PoolStats {
	if p == nil {
		return PoolStats{}
	}

	return PoolStats{
		Capacity:  p.capacity,
		Live:      p.live,
		Allocated: p.allocated,
		Released:  p.released,
		Failed:    p.failed,
	}
}

// alloc returns a fresh tail node holding value, or nil if the pool is full.
func (p *Pool) alloc(value int) *Node {
	if p == nil {
		return &Node{Data: value}
	}
	if p.capacity > 0 && p.live >= p.capacity {
		p.failed++
		return nil
	}
	n := &Node{Data: value, pool: p}
	p.live++
	p.allocated++
	if p.onAlloc != nil {
		p.onAlloc(n)
	}

	return n
}

// release detaches n and returns it to the pool that allocated it.
// Releasing an already released node is ignored so counters never drift.
func release(n *Node) {
	if n == nil || n.released {
		return
	}
	if p := n.pool; p != nil {
		if p.onRelease != nil {
			p.onRelease(n)
		}
		p.live--
		p.released++
	}
	n.next = nil
	n.released = true
}
