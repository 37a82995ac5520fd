package cpu

import (
	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// MatMul performs matrix multiplication.
//
//	(K) @ (K)       -> (1)   dot product
//	(M, K) @ (K, N) -> (M, N)
//
// Every output cell is an inner product over K accumulated from zero in
// the promoted dtype.
func (cpu *CPUBackend) MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	outShape, err := tensor.MatMulShape(a.Shape(), b.Shape())
	if err != nil {
		return nil, errors.Wrap(err, "matmul")
	}

	dtype := tensor.Promote(a.DType(), b.DType())
	out, err := tensor.New(outShape, dtype)
	if err != nil {
		return nil, errors.Wrap(err, "matmul")
	}

	if a.Rank() == 1 {
		acc := tensor.FromFloat64(0, dtype)
		for k := 0; k < a.Shape()[0]; k++ {
			x, err := a.At(k)
			if err != nil {
				return nil, errors.Wrap(err, "matmul")
			}
			y, err := b.At(k)
			if err != nil {
				return nil, errors.Wrap(err, "matmul")
			}
			acc = acc.Add(x.Mul(y))
		}
		if err := out.Set(acc, 0); err != nil {
			return nil, errors.Wrap(err, "matmul")
		}
		return out, nil
	}

	m, inner, cols := a.Shape()[0], a.Shape()[1], b.Shape()[1]
	for i := 0; i < m; i++ {
		for j := 0; j < cols; j++ {
			acc := tensor.FromFloat64(0, dtype)
			for k := 0; k < inner; k++ {
				x, err := a.At(i, k)
				if err != nil {
					return nil, errors.Wrap(err, "matmul")
				}
				y, err := b.At(k, j)
				if err != nil {
					return nil, errors.Wrap(err, "matmul")
				}
				acc = acc.Add(x.Mul(y))
			}
			if err := out.Set(acc, i, j); err != nil {
				return nil, errors.Wrap(err, "matmul")
			}
		}
	}
	return out, nil
}
