package autodiff

import (
	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// reduceBroadcast sums a gradient over the dimensions that broadcasting
// expanded in the forward pass, so it can be accumulated into a tensor of
// targetShape.
//
// Example:
//
//	Forward: a[3,1] + c[3,4] -> out[3,4]  (a was broadcast along dim 1)
//	Backward: grad_out[3,4] -> grad_a[3,1] (sum along dim 1)
//
// Leading dimensions the target lacks are summed away. Dimensions where the
// gradient is 1 and the target is larger are left for the caller's
// broadcasting assignment.
func (b *AutodiffBackend[B]) reduceBroadcast(grad *tensor.Tensor, targetShape tensor.Shape) (*tensor.Tensor, error) {
	result := grad
	var err error

	for result.Rank() > len(targetShape) {
		result, err = b.Sum(result, 0, false)
		if err != nil {
			return nil, err
		}
	}

	offset := len(targetShape) - result.Rank()
	for i := 0; i < result.Rank(); i++ {
		if targetShape[offset+i] == 1 && result.Shape()[i] != 1 {
			result, err = b.Sum(result, i, true)
			if err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}
