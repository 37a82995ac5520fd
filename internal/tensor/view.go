package tensor

import (
	"github.com/pkg/errors"
)

// view returns a tensor sharing t's storage with new metadata.
func (t *Tensor) view(shape Shape, stride []int) *Tensor {
	return &Tensor{
		dtype:   t.dtype,
		shape:   shape,
		stride:  stride,
		offset:  t.offset,
		storage: t.storage.Retain(),
	}
}

func (t *Tensor) checkDim(dim int) error {
	if dim < 0 || dim >= len(t.shape) {
		return errors.Wrapf(ErrIndexOutOfRange, "dimension %d for shape %v", dim, t.shape)
	}
	return nil
}

// Transpose returns a view with dimensions d0 and d1 swapped.
// The view shares storage with t; writes through either are visible in both.
func (t *Tensor) Transpose(d0, d1 int) (*Tensor, error) {
	if err := t.checkDim(d0); err != nil {
		return nil, err
	}
	if err := t.checkDim(d1); err != nil {
		return nil, err
	}
	shape := t.shape.Clone()
	stride := append([]int(nil), t.stride...)
	shape[d0], shape[d1] = shape[d1], shape[d0]
	stride[d0], stride[d1] = stride[d1], stride[d0]
	return t.view(shape, stride), nil
}

// T returns the view with the last two dimensions swapped.
// Rank-1 tensors are returned as a plain view.
func (t *Tensor) T() (*Tensor, error) {
	n := len(t.shape)
	if n < 2 {
		return t.view(t.shape.Clone(), append([]int(nil), t.stride...)), nil
	}
	return t.Transpose(n-2, n-1)
}

// Unsqueeze returns a view with a dimension of size 1 inserted at dim
// (0 <= dim <= rank).
func (t *Tensor) Unsqueeze(dim int) (*Tensor, error) {
	if dim < 0 || dim > len(t.shape) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "unsqueeze dimension %d for shape %v", dim, t.shape)
	}
	inner := 1
	if dim < len(t.shape) {
		inner = t.stride[dim] * t.shape[dim]
	}
	shape := make(Shape, 0, len(t.shape)+1)
	stride := make([]int, 0, len(t.shape)+1)
	shape = append(append(append(shape, t.shape[:dim]...), 1), t.shape[dim:]...)
	stride = append(append(append(stride, t.stride[:dim]...), inner), t.stride[dim:]...)
	return t.view(shape, stride), nil
}
