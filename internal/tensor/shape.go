package tensor

import "fmt"

// Shape represents the dimensions of a tensor, or the declared shape of a
// model output variable. A declared shape may carry -1 as its last entry,
// leaving the trailing dimension unconstrained.
type Shape []int

// NumElements returns the total number of elements, or -1 if the shape
// carries the trailing wildcard.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		if dim < 0 {
			return -1
		}
		n *= dim
	}
	return n
}

// Validate checks a concrete tensor shape (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// ValidateDef checks a declared variable shape: every dimension must be
// non-negative or the -1 wildcard marking it unconstrained. By convention
// the wildcard is declared trailing; derivation may push it to an interior
// position by appending derivative dimensions.
func (s Shape) ValidateDef() error {
	for i, dim := range s {
		if dim < -1 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be non-negative or the -1 wildcard)", i, dim)
		}
	}
	return nil
}

// HasWildcard reports whether the last entry is the -1 wildcard.
func (s Shape) HasWildcard() bool {
	return len(s) > 0 && s[len(s)-1] == -1
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

// Prepend returns a new shape with dims inserted before s. It is used to
// frame a declared per-variable shape with batch dimensions, e.g.
// Shape{1}.Prepend(nframes, nloc) for a per-atom scalar.
func (s Shape) Prepend(dims ...int) Shape {
	out := make(Shape, 0, len(dims)+len(s))
	out = append(out, dims...)
	out = append(out, s...)
	return out
}
