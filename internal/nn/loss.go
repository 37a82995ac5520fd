package nn

import (
	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// SquaredErrorLoss computes the summed squared error over the batch.
//
// Loss = sum((predictions - targets)², dim=0)
//
// For predictions of shape [batch_size, 1] the loss has shape [1].
//
// Example:
//
//	loss := nn.NewSquaredErrorLoss(backend)
//	predictions, _ := model.Forward(input)
//	l, _ := loss.Forward(predictions, targets)
//	_ = backend.Backward(l)
type SquaredErrorLoss[B tensor.Backend] struct {
	backend B
}

// NewSquaredErrorLoss creates a new squared error loss function.
func NewSquaredErrorLoss[B tensor.Backend](backend B) *SquaredErrorLoss[B] {
	return &SquaredErrorLoss[B]{
		backend: backend,
	}
}

// Forward computes the loss. Targets broadcast against predictions.
func (m *SquaredErrorLoss[B]) Forward(predictions, targets *tensor.Tensor) (*tensor.Tensor, error) {
	diff, err := m.backend.Sub(predictions, targets)
	if err != nil {
		return nil, errors.Wrap(err, "squared error")
	}
	squared, err := m.backend.Mul(diff, diff)
	if err != nil {
		return nil, errors.Wrap(err, "squared error")
	}
	return m.backend.Sum(squared, 0, false)
}

// Parameters returns an empty slice (loss functions have no trainable parameters).
func (m *SquaredErrorLoss[B]) Parameters() []*Parameter {
	return nil
}
