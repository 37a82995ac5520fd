// Copyright 2025 The micro-torch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/m7moudredafouad/micro-torch/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go broadcasting kernels
//
// Decorator backends for additional functionality:
//   - autodiff: Automatic differentiation (wraps any backend)
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	x, _ := tensor.Full(tensor.Shape{3}, 2, tensor.Float32)
//	_ = x.SetRequiresGrad(true)
//	y, _ := backend.Mul(x, x)
//	_ = backend.Backward(y)
type Backend = tensor.Backend
