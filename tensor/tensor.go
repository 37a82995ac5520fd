// Copyright 2025 The micro-torch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Data type constants, in promotion order.
const (
	Unknown DataType = tensor.Unknown
	Uint32  DataType = tensor.Uint32
	Int32   DataType = tensor.Int32
	Float32 DataType = tensor.Float32
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Element is a single tagged 32-bit tensor value.
type Element = tensor.Element

// Storage is the shared, reference-counted buffer behind tensors and views.
type Storage = tensor.Storage

// Tensor is a strided view over a Storage with optional gradient tracking.
type Tensor = tensor.Tensor

// Op records the operation that produced a non-leaf tensor.
type Op = tensor.Op

// OpKind identifies a differentiable operation.
type OpKind = tensor.OpKind

// Operation kinds.
const (
	OpNone   OpKind = tensor.OpNone
	OpAdd    OpKind = tensor.OpAdd
	OpSub    OpKind = tensor.OpSub
	OpMul    OpKind = tensor.OpMul
	OpDiv    OpKind = tensor.OpDiv
	OpMatMul OpKind = tensor.OpMatMul
	OpSum    OpKind = tensor.OpSum
)

// Errors returned by tensor operations.
var (
	ErrRankMismatch            = tensor.ErrRankMismatch
	ErrIndexOutOfRange         = tensor.ErrIndexOutOfRange
	ErrBroadcastIncompatible   = tensor.ErrBroadcastIncompatible
	ErrMatmulShapeIncompatible = tensor.ErrMatmulShapeIncompatible
	ErrUnsupportedRank         = tensor.ErrUnsupportedRank
	ErrUngradientedRead        = tensor.ErrUngradientedRead
	ErrInvalidGradFlag         = tensor.ErrInvalidGradFlag
	ErrUnimplementedBackward   = tensor.ErrUnimplementedBackward
	ErrInvalidShape            = tensor.ErrInvalidShape
	ErrDivideByZero            = tensor.ErrDivideByZero
	ErrStorageReleased         = tensor.ErrStorageReleased
)

// New creates a zero-filled contiguous tensor.
// An unknown dtype defaults to Float32.
func New(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.New(shape, dtype)
}

// NewWithStrides creates a zero-filled tensor laid out with explicit strides.
func NewWithStrides(shape Shape, strides []int, dtype DataType) (*Tensor, error) {
	return tensor.NewWithStrides(shape, strides, dtype)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.Zeros(shape, dtype)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.Ones(shape, dtype)
}

// Full creates a tensor filled with v.
func Full(shape Shape, v float64, dtype DataType) (*Tensor, error) {
	return tensor.Full(shape, v, dtype)
}

// FromSlice creates a tensor from row-major values.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.Float32)
func FromSlice(values []float64, shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.FromSlice(values, shape, dtype)
}

// Scalar creates a one-element tensor of shape [1].
func Scalar(v float64, dtype DataType) *Tensor {
	return tensor.Scalar(v, dtype)
}

// ZerosLike creates a zero-filled contiguous tensor with t's shape and dtype.
func ZerosLike(t *Tensor) *Tensor {
	return tensor.ZerosLike(t)
}

// OnesLike creates a one-filled contiguous tensor with t's shape and dtype.
func OnesLike(t *Tensor) *Tensor {
	return tensor.OnesLike(t)
}

// BroadcastShapes returns the NumPy broadcast of a and b.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// MatMulShape returns the output shape of a @ b.
func MatMulShape(a, b Shape) (Shape, error) {
	return tensor.MatMulShape(a, b)
}

// Promote returns the common dtype of a mixed operation.
func Promote(a, b DataType) DataType {
	return tensor.Promote(a, b)
}
