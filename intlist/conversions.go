package intlist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToVector copies the chain's data, head to tail, into a new dense vector.
// It returns nil for a nil head because gonum does not allow zero-length
// vectors.
// Complexity: O(n) time, O(n) memory.
func ToVector(head *Node) *mat.VecDense {
	if head == nil {
		return nil
	}
	data := make([]float64, 0, Size(head))
	for cur := head; cur != nil; cur = cur.next {
		data = append(data, float64(cur.Data))
	}

	return mat.NewVecDense(len(data), data)
}

// FromVector builds a heap chain from the entries of v, in index order.
// See (*Pool).FromVector for the error contract.
func FromVector(v mat.Vector) (*Node, error) {
	return (*Pool)(nil).FromVector(v)
}

// FromVector builds a chain from p holding the entries of v in index order.
//
// A nil or zero-length vector yields (nil, nil). Every entry is checked before
// anything is allocated: an entry that is NaN, infinite, fractional or outside
// the int range yields an error wrapping ErrNotInteger. If p runs out of
// capacity partway, the partial chain is released and an error wrapping
// ErrExhausted is returned.
// Complexity: O(n).
func (p *Pool) FromVector(v mat.Vector) (*Node, error) {
	if vd, ok := v.(*mat.VecDense); ok && vd == nil {
		return nil, nil // typed nil, e.g. ToVector(nil)
	}
	if v == nil || v.Len() == 0 {
		return nil, nil
	}
	values := make([]int, v.Len())
	for i := range values {
		x, err := toInt(v.AtVec(i))
		if err != nil {
			return nil, fmt.Errorf("FromVector: entry %d: %w", i, err)
		}
		values[i] = x
	}
	head := p.FromArray(values)
	if head == nil {
		return nil, fmt.Errorf("FromVector: %d entries: %w", len(values), ErrExhausted)
	}

	return head, nil
}

// toInt converts x to int when it holds an exact integer within int range.
func toInt(x float64) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, ErrNotInteger
	}
	// -MinInt is exactly 2^(wordsize-1), the first value past MaxInt.
	if x < math.MinInt || x >= -float64(math.MinInt) {
		return 0, ErrNotInteger
	}

	return int(x), nil
}
