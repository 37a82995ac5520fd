package tensor

import (
	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one dimension and no negative sizes.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return errors.Wrap(ErrUnsupportedRank, "tensor needs at least one dimension")
	}
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrInvalidShape, "dimension %d has negative size %d", i, dim)
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

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Shapes are compared from the trailing dimension. Where both operands have
// a dimension the sizes must be equal or one of them must be 1, and the
// larger size is taken. Where only one operand has a dimension its size is
// used as is.
//
// Examples:
//
//	(3, 3) + (1, 3) → (3, 3)
//	(3, 3) + (3,)   → (3, 3)
//	(2, 3) + (3, 2) → ErrBroadcastIncompatible
func BroadcastShapes(a, b Shape) (Shape, error) {
	ndim := max(len(a), len(b))
	result := make(Shape, ndim)

	for i := 0; i < ndim; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		switch {
		case aIdx >= 0 && bIdx >= 0:
			aDim, bDim := a[aIdx], b[bIdx]
			if aDim != bDim && aDim != 1 && bDim != 1 {
				return nil, errors.Wrapf(ErrBroadcastIncompatible,
					"%v vs %v (dimension %d: %d vs %d)", a, b, ndim-1-i, aDim, bDim)
			}
			result[ndim-1-i] = max(aDim, bDim)
		case aIdx >= 0:
			result[ndim-1-i] = a[aIdx]
		default:
			result[ndim-1-i] = b[bIdx]
		}
	}

	return result, nil
}

// MatMulShape returns the output shape of a @ b.
//
// Both operands must be vectors or both matrices. Two vectors of equal
// length produce a one-element vector (dot product); an (M, K) matrix times
// a (K, N) matrix produces (M, N). Batched operands are rejected.
func MatMulShape(a, b Shape) (Shape, error) {
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrMatmulShapeIncompatible, "rank %d vs rank %d", len(a), len(b))
	}

	switch len(a) {
	case 1:
		if a[0] != b[0] {
			return nil, errors.Wrapf(ErrMatmulShapeIncompatible, "vectors of length %d and %d", a[0], b[0])
		}
		return Shape{1}, nil
	case 2:
		if a[1] != b[0] {
			return nil, errors.Wrapf(ErrMatmulShapeIncompatible,
				"%v @ %v (inner dimensions %d vs %d)", a, b, a[1], b[0])
		}
		return Shape{a[0], b[1]}, nil
	default:
		return nil, errors.Wrapf(ErrMatmulShapeIncompatible, "batched operands of rank %d", len(a))
	}
}
