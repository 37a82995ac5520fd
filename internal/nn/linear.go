package nn

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// LinearConfig configures a Linear layer.
type LinearConfig struct {
	InFeatures  int   // Number of input features
	OutFeatures int   // Number of output features
	Seed        int64 // Seed for weight initialization (default: 0)
	NoBias      bool  // Omit the bias term
}

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	layer, _ := nn.NewLinear(nn.LinearConfig{InFeatures: 2, OutFeatures: 1}, backend)
//
//	output, _ := layer.Forward(input) // [4, 2] -> [4, 1]
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [out_features]
	backend     B
}

// NewLinear creates a new Linear layer.
func NewLinear[B tensor.Backend](config LinearConfig, backend B) (*Linear[B], error) {
	if config.InFeatures <= 0 || config.OutFeatures <= 0 {
		return nil, errors.Wrapf(tensor.ErrInvalidShape,
			"linear: %d -> %d features", config.InFeatures, config.OutFeatures)
	}

	rng := rand.New(rand.NewSource(config.Seed)) //nolint:gosec // weight init

	weightTensor, err := Xavier(config.InFeatures, config.OutFeatures,
		tensor.Shape{config.InFeatures, config.OutFeatures}, rng)
	if err != nil {
		return nil, errors.Wrap(err, "linear weight")
	}
	weight, err := NewParameter("weight", weightTensor)
	if err != nil {
		return nil, err
	}

	l := &Linear[B]{
		inFeatures:  config.InFeatures,
		outFeatures: config.OutFeatures,
		weight:      weight,
		backend:     backend,
	}

	if !config.NoBias {
		biasTensor, err := Zeros(tensor.Shape{config.OutFeatures})
		if err != nil {
			return nil, errors.Wrap(err, "linear bias")
		}
		if l.bias, err = NewParameter("bias", biasTensor); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Forward computes the output of the linear layer.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear[B]) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		return nil, errors.Wrapf(tensor.ErrRankMismatch,
			"linear: expected 2D input [batch, features], got shape %v", inputShape)
	}
	if inputShape[1] != l.inFeatures {
		return nil, errors.Wrapf(tensor.ErrMatmulShapeIncompatible,
			"linear: expected input with %d features, got %d", l.inFeatures, inputShape[1])
	}

	// [batch_size, in_features] @ [in_features, out_features]
	output, err := l.backend.MatMul(input, l.weight.Tensor())
	if err != nil {
		return nil, errors.Wrap(err, "linear")
	}

	if l.bias != nil {
		// Bias [out_features] broadcasts over the batch dimension.
		output, err = l.backend.Add(output, l.bias.Tensor())
		if err != nil {
			return nil, errors.Wrap(err, "linear bias")
		}
	}
	return output, nil
}

// Parameters returns [weight, bias], or [weight] without bias.
func (l *Linear[B]) Parameters() []*Parameter {
	if l.bias != nil {
		return []*Parameter{l.weight, l.bias}
	}
	return []*Parameter{l.weight}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter, or nil.
func (l *Linear[B]) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}

var _ Module = (*Linear[tensor.Backend])(nil)
