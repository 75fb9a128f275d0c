package intlist

// Test bridge: lets intlist_test build malformed chains that the public API
// never produces.

// ExportedLink sets a's successor to b without any ownership checks.
func ExportedLink(a, b *Node) { a.next = b }

// ExportedToInt exposes toInt for boundary tests.
var ExportedToInt = toInt
