// Copyright 2025 The micro-torch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	backend := autodiff.New(cpu.New())
//	model, _ := nn.NewLinear(nn.LinearConfig{InFeatures: 2, OutFeatures: 1}, backend)
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1}, backend)
//
//	for step := range steps {
//	    output, _ := model.Forward(input)
//	    l, _ := loss.Forward(output, targets)
//	    _ = backend.Backward(l)
//	    _ = optimizer.Step()
//	    _ = optimizer.ZeroGrad()
//	}
package optim
