// Copyright 2025 The micro-torch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - NumPy-compatible broadcasting for element-wise arithmetic
//   - Matrix multiplication with broadcast leading dimensions
//   - Sum reduction along one dimension
//   - In-place compound assignment (AddAssign, SubAssign, MulAssign, DivAssign)
//
// Kernels iterate tensors of rank 1 to 4.
//
// # Basic Usage
//
//	import (
//	    "github.com/m7moudredafouad/micro-torch/backend/cpu"
//	    "github.com/m7moudredafouad/micro-torch/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.Full(tensor.Shape{3}, 16, tensor.Uint32)
//	    y, _ := backend.Div(x, tensor.Scalar(4, tensor.Uint32)) // [4, 4, 4]
//	}
//
// # Thread Safety
//
// The backend itself holds no state. Tensors are not synchronized, so
// callers must not write a tensor while another goroutine reads it.
package cpu
