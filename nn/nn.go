// Copyright 2025 The micro-torch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/m7moudredafouad/micro-torch/internal/nn"
	"github.com/m7moudredafouad/micro-torch/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter marks t as requiring gradients and wraps it as a parameter.
func NewParameter(name string, t *tensor.Tensor) (*Parameter, error) {
	return nn.NewParameter(name, t)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear[B tensor.Backend] = nn.Linear[B]

// LinearConfig configures a Linear layer.
type LinearConfig = nn.LinearConfig

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	layer, _ := nn.NewLinear(nn.LinearConfig{InFeatures: 2, OutFeatures: 1, Seed: 42}, backend)
func NewLinear[B tensor.Backend](config LinearConfig, backend B) (*Linear[B], error) {
	return nn.NewLinear(config, backend)
}

// Loss functions

// SquaredErrorLoss sums squared errors over the batch dimension.
type SquaredErrorLoss[B tensor.Backend] = nn.SquaredErrorLoss[B]

// NewSquaredErrorLoss creates a new squared error loss.
func NewSquaredErrorLoss[B tensor.Backend](backend B) *SquaredErrorLoss[B] {
	return nn.NewSquaredErrorLoss(backend)
}

// Initialization

// Xavier draws a float32 tensor from the Glorot uniform distribution.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) (*tensor.Tensor, error) {
	return nn.Xavier(fanIn, fanOut, shape, rng)
}

// Uniform draws a float32 tensor from U(low, high).
func Uniform(shape tensor.Shape, low, high float64, rng *rand.Rand) (*tensor.Tensor, error) {
	return nn.Uniform(shape, low, high, rng)
}

// Zeros creates a float32 tensor filled with zeros.
func Zeros(shape tensor.Shape) (*tensor.Tensor, error) {
	return nn.Zeros(shape)
}
