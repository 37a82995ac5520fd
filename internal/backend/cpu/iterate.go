package cpu

import (
	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// MaxRank is the highest rank the kernels iterate over.
const MaxRank = 4

// Iterate calls fn for every coordinate of shape in row-major order.
//
// Ranks 1 to 4 are supported; rank 0 is a no-op and higher ranks fail with
// tensor.ErrUnsupportedRank. The index slice is reused between calls and
// must not be retained by fn. Iteration stops at the first error.
func Iterate(shape tensor.Shape, fn func(idx []int) error) error {
	switch len(shape) {
	case 0:
		return nil
	case 1:
		idx := make([]int, 1)
		for i := 0; i < shape[0]; i++ {
			idx[0] = i
			if err := fn(idx); err != nil {
				return err
			}
		}
	case 2:
		idx := make([]int, 2)
		for i := 0; i < shape[0]; i++ {
			for j := 0; j < shape[1]; j++ {
				idx[0], idx[1] = i, j
				if err := fn(idx); err != nil {
					return err
				}
			}
		}
	case 3:
		idx := make([]int, 3)
		for i := 0; i < shape[0]; i++ {
			for j := 0; j < shape[1]; j++ {
				for k := 0; k < shape[2]; k++ {
					idx[0], idx[1], idx[2] = i, j, k
					if err := fn(idx); err != nil {
						return err
					}
				}
			}
		}
	case 4:
		idx := make([]int, 4)
		for i := 0; i < shape[0]; i++ {
			for j := 0; j < shape[1]; j++ {
				for k := 0; k < shape[2]; k++ {
					for l := 0; l < shape[3]; l++ {
						idx[0], idx[1], idx[2], idx[3] = i, j, k, l
						if err := fn(idx); err != nil {
							return err
						}
					}
				}
			}
		}
	default:
		return errors.Wrapf(tensor.ErrUnsupportedRank, "iterating rank %d (max %d)", len(shape), MaxRank)
	}
	return nil
}
