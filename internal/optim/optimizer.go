// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//
// Design inspired by PyTorch's torch.optim.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.1,
//	}, backend)
//
//	for step := range steps {
//	    output, _ := model.Forward(input)
//	    l, _ := loss.Forward(output, targets)
//	    _ = backend.Backward(l)
//
//	    _ = optimizer.Step()
//	    _ = optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/m7moudredafouad/micro-torch/internal/nn"
	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Reset gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies the accumulated gradients to all parameters in place.
	// Parameters without a gradient are skipped.
	Step() error

	// ZeroGrad resets all parameter gradients to zero.
	//
	// Leaf gradients accumulate across backward passes, so this should be
	// called after every Step.
	ZeroGrad() error

	// GetLR returns the current learning rate.
	GetLR() float32
}

// noGrader is implemented by backends that record a graph, such as
// autodiff.AutodiffBackend.
type noGrader interface {
	NoGrad() func()
}

// withoutRecording runs fn with graph recording disabled when the backend
// records one.
func withoutRecording(backend tensor.Backend, fn func() error) error {
	if ng, ok := backend.(noGrader); ok {
		defer ng.NoGrad()()
	}
	return fn()
}

// getGradient retrieves the gradient for a parameter.
//
// Returns nil if no gradient is found (parameter wasn't part of computation graph).
func getGradient(param *nn.Parameter) *tensor.Tensor {
	if param == nil || !param.Tensor().HasGrad() {
		return nil
	}
	grad, err := param.Grad()
	if err != nil {
		return nil
	}
	return grad
}
