package nn

import (
	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are leaf tensors that require gradient computation. The
// gradient lives on the tensor itself and is filled by the backward pass.
//
// Example:
//
//	weight, _ := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
//	grad, err := weight.Grad() // after backend.Backward(loss)
type Parameter struct {
	name   string         // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Tensor // Leaf tensor with requires_grad set
}

// NewParameter marks t as requiring gradients and wraps it.
// It fails with tensor.ErrInvalidGradFlag if t is not a leaf.
func NewParameter(name string, t *tensor.Tensor) (*Parameter, error) {
	if err := t.SetRequiresGrad(true); err != nil {
		return nil, err
	}
	return &Parameter{name: name, tensor: t}, nil
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the accumulated gradient.
// It fails with tensor.ErrUngradientedRead before the first backward pass.
func (p *Parameter) Grad() (*tensor.Tensor, error) {
	return p.tensor.Grad()
}

// ZeroGrad resets the accumulated gradient to zero.
//
// This should be called after every update to avoid accumulating
// gradients from previous iterations.
func (p *Parameter) ZeroGrad() error {
	return p.tensor.ResetGrad()
}
