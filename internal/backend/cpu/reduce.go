package cpu

import (
	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// Sum sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDims: if true, keep the reduced dimension with size 1; if false,
//     remove it. A rank-1 input always keeps shape (1).
//
// Example:
//
//	x, _ := tensor.New(tensor.Shape{2, 3, 4}, tensor.Float32)
//	y, _ := backend.Sum(x, -1, true)  // shape: [2, 3, 1]
//	z, _ := backend.Sum(x, -1, false) // shape: [2, 3]
func (cpu *CPUBackend) Sum(x *tensor.Tensor, dim int, keepDims bool) (*tensor.Tensor, error) {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, errors.Wrapf(tensor.ErrIndexOutOfRange, "sum: dimension %d for shape %v", dim, shape)
	}

	squeeze := !keepDims && ndim > 1
	outShape := ReducedShape(shape, dim, !squeeze)

	out, err := tensor.New(outShape, x.DType())
	if err != nil {
		return nil, errors.Wrap(err, "sum")
	}

	oidx := make([]int, len(outShape))
	err = Iterate(shape, func(idx []int) error {
		if squeeze {
			copy(oidx, idx[:dim])
			copy(oidx[dim:], idx[dim+1:])
		} else {
			copy(oidx, idx)
			oidx[dim] = 0
		}
		v, err := x.At(idx...)
		if err != nil {
			return err
		}
		cur, err := out.At(oidx...)
		if err != nil {
			return err
		}
		return out.Set(cur.Add(v), oidx...)
	})
	if err != nil {
		return nil, errors.Wrap(err, "sum")
	}
	return out, nil
}

// ReducedShape returns shape with dim reduced to 1 (keep) or removed.
func ReducedShape(shape tensor.Shape, dim int, keep bool) tensor.Shape {
	if keep {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	out = append(out, shape[:dim]...)
	return append(out, shape[dim+1:]...)
}
