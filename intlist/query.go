package intlist

// Head returns head unchanged. It exists so callers can name the first node
// of a chain explicitly.
// Complexity: O(1).
func Head(head *Node) *Node {
	return head
}

// Tail returns the last node reachable from head, or nil if head is nil.
// Complexity: O(n).
func Tail(head *Node) *Node {
	if head == nil {
		return nil
	}
	cur := head
	for cur.next != nil {
		cur = cur.next
	}

	return cur
}

// Size returns the number of nodes reachable from head; 0 for nil.
// Complexity: O(n).
func Size(head *Node) int {
	count := 0
	for cur := head; cur != nil; cur = cur.next {
		count++
	}

	return count
}

// Find returns the first node, in head-to-tail order, whose Data equals
// value. It returns nil when value is absent or head is nil.
// Complexity: O(n).
func Find(head *Node, value int) *Node {
	for cur := head; cur != nil; cur = cur.next {
		if cur.Data == value {
			return cur
		}
	}

	return nil
}

// ToArray copies the data of the chain, head to tail, into a new slice owned
// by the caller. It returns nil for a nil head, so "no list" and "empty
// result" look the same.
// Complexity: O(n) time, O(n) memory.
func ToArray(head *Node) []int {
	if head == nil {
		return nil
	}
	out := make([]int, 0, Size(head))
	for cur := head; cur != nil; cur = cur.next {
		out = append(out, cur.Data)
	}

	return out
}

// Equal reports whether two chains hold the same data in the same order.
// Two nil heads are equal.
// Complexity: O(min(n, m)).
func Equal(a, b *Node) bool {
	for a != nil && b != nil {
		if a.Data != b.Data {
			return false
		}
		a, b = a.next, b.next
	}

	return a == nil && b == nil
}
