// Package nn implements neural network modules on top of the micro-torch
// tensor engine.
//
// This package provides building blocks for small trainable models:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named trainable tensor with gradient tracking
//   - Linear: Fully connected layer computing x @ W + b
//   - SquaredErrorLoss: Sum of squared errors over the batch dimension
//
// Design inspired by PyTorch's nn.Module.
package nn

import (
	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all trainable parameters
type Module interface {
	// Forward computes the output of the module given an input tensor.
	// Shape errors from the backend are returned unchanged in kind.
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules without trainable parameters.
	Parameters() []*Parameter
}
