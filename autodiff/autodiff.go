// Copyright 2025 The micro-torch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation
// (backpropagation) over a dynamic graph recorded on the tensors
// themselves. It wraps any backend to add autodiff capabilities.
//
// Example:
//
//	import (
//	    "github.com/m7moudredafouad/micro-torch/autodiff"
//	    "github.com/m7moudredafouad/micro-torch/backend/cpu"
//	    "github.com/m7moudredafouad/micro-torch/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//
//	    x, _ := tensor.Full(tensor.Shape{2, 3}, 2, tensor.Float32)
//	    _ = x.SetRequiresGrad(true)
//	    y, _ := backend.Mul(x, x) // recorded
//
//	    _ = backend.Backward(y)
//	    grad, _ := x.Grad() // 2x = 4
//	}
package autodiff

import (
	"github.com/m7moudredafouad/micro-torch/internal/autodiff"
	"github.com/m7moudredafouad/micro-torch/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
// Recording starts enabled; use NoGrad to suspend it.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
//	defer backend.NoGrad()() // evaluation only
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}
