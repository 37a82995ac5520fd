// Copyright 2025 The micro-torch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Loss functions: SquaredErrorLoss
//   - Utilities: Module interface, Parameter
//   - Initialization: Xavier, Uniform, Zeros
//
// # Basic Usage
//
//	import (
//	    "github.com/m7moudredafouad/micro-torch/autodiff"
//	    "github.com/m7moudredafouad/micro-torch/backend/cpu"
//	    "github.com/m7moudredafouad/micro-torch/nn"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//
//	    layer, _ := nn.NewLinear(nn.LinearConfig{InFeatures: 2, OutFeatures: 1}, backend)
//	    loss := nn.NewSquaredErrorLoss(backend)
//
//	    output, _ := layer.Forward(input)
//	    l, _ := loss.Forward(output, targets)
//	    _ = backend.Backward(l)
//	}
package nn
