package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Permute returns a new shape with dimensions reordered by perm, where
// perm[i] is the source axis for destination axis i.
//
// Example:
//
//	Shape{2, 3, 32, 32}.Permute([]int{0, 2, 3, 1}) // → Shape{2, 32, 32, 3}
func (s Shape) Permute(perm []int) (Shape, error) {
	if len(perm) != len(s) {
		return nil, fmt.Errorf("permutation length %d does not match rank %d", len(perm), len(s))
	}
	out := make(Shape, len(s))
	seen := make([]bool, len(s))
	for i, src := range perm {
		if src < 0 || src >= len(s) {
			return nil, fmt.Errorf("permutation index %d out of range for rank %d", src, len(s))
		}
		if seen[src] {
			return nil, fmt.Errorf("permutation repeats source axis %d", src)
		}
		seen[src] = true
		out[i] = s[src]
	}
	return out, nil
}
