// Copyright 2025 The micro-torch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/m7moudredafouad/micro-torch/internal/backend/cpu"
	"github.com/m7moudredafouad/micro-torch/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// MaxRank is the highest tensor rank the CPU kernels support.
const MaxRank = internalcpu.MaxRank

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32)
//	y, _ := backend.Sum(x, 1, false) // shape [2]
func New() *Backend {
	return internalcpu.New()
}
