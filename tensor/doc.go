// Copyright 2025 The micro-torch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided, reference-counted tensors for the
// micro-torch engine.
//
// # Overview
//
// A Tensor is a view over a shared Storage buffer described by a shape,
// per-dimension strides and an element offset. This package provides:
//   - Creation: New, Zeros, Ones, Full, FromSlice, Scalar
//   - Element access: At, Set, Fill, Assign, Values
//   - Zero-copy views: Transpose, T, Unsqueeze
//   - NumPy-style broadcasting rules (BroadcastShapes)
//   - Gradient bookkeeping used by the autodiff package
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
//	    x, _ := tensor.Full(tensor.Shape{2, 3}, 2, tensor.Float32)
//	    y, _ := tensor.Ones(tensor.Shape{1, 3}, tensor.Float32)
//	    z, _ := backend.Add(x, y) // broadcasts to [2, 3]
//	    fmt.Println(z)
//	}
//
// # Supported Data Types
//
// Every element is a 32-bit word:
//   - Uint32, Int32 (integers, wrapping arithmetic)
//   - Float32
//
// Mixed operands promote to the later type in that order.
//
// # Errors
//
// Fallible operations return errors wrapping one of the sentinel values
// below; match them with errors.Is.
package tensor
