// Package cpu implements the forward compute kernels of micro-torch on the CPU:
// broadcasting element-wise arithmetic, matrix multiplication and reductions.
package cpu

import (
	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

type binaryFn func(x, y tensor.Element) (tensor.Element, error)

func add(x, y tensor.Element) (tensor.Element, error) { return x.Add(y), nil }
func sub(x, y tensor.Element) (tensor.Element, error) { return x.Sub(y), nil }
func mul(x, y tensor.Element) (tensor.Element, error) { return x.Mul(y), nil }
func div(x, y tensor.Element) (tensor.Element, error) { return x.Div(y) }

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return elementwise("add", a, b, add)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return elementwise("sub", a, b, sub)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return elementwise("mul", a, b, mul)
}

// Div performs element-wise division with broadcasting.
// Integer division by zero fails with tensor.ErrDivideByZero.
func (cpu *CPUBackend) Div(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return elementwise("div", a, b, div)
}

// AddAssign computes dst += src in place.
func (cpu *CPUBackend) AddAssign(dst, src *tensor.Tensor) error {
	return assign("add", dst, src, add)
}

// SubAssign computes dst -= src in place.
func (cpu *CPUBackend) SubAssign(dst, src *tensor.Tensor) error {
	return assign("sub", dst, src, sub)
}

// MulAssign computes dst *= src in place.
func (cpu *CPUBackend) MulAssign(dst, src *tensor.Tensor) error {
	return assign("mul", dst, src, mul)
}

// DivAssign computes dst /= src in place.
func (cpu *CPUBackend) DivAssign(dst, src *tensor.Tensor) error {
	return assign("div", dst, src, div)
}

// elementwise allocates the broadcast output and fills it with fn applied to
// broadcast reads of both operands, in the promoted dtype.
func elementwise(name string, a, b *tensor.Tensor, fn binaryFn) (*tensor.Tensor, error) {
	outShape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	out, err := tensor.New(outShape, tensor.Promote(a.DType(), b.DType()))
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	err = Iterate(outShape, func(idx []int) error {
		x, err := a.BroadcastedRead(idx...)
		if err != nil {
			return err
		}
		y, err := b.BroadcastedRead(idx...)
		if err != nil {
			return err
		}
		v, err := fn(x, y)
		if err != nil {
			return err
		}
		return out.Set(v, idx...)
	})
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return out, nil
}

// assign computes fn(dst, src) into a temporary and copies it back, so src
// may alias dst. The broadcast result must keep dst's shape.
func assign(name string, dst, src *tensor.Tensor, fn binaryFn) error {
	outShape, err := tensor.BroadcastShapes(dst.Shape(), src.Shape())
	if err != nil {
		return errors.Wrapf(err, "%s assign", name)
	}
	if !outShape.Equal(dst.Shape()) {
		return errors.Wrapf(tensor.ErrBroadcastIncompatible,
			"%s assign: %v does not broadcast into %v", name, src.Shape(), dst.Shape())
	}

	result, err := elementwise(name, dst, src, fn)
	if err != nil {
		return errors.Wrap(err, "assign")
	}

	err = Iterate(dst.Shape(), func(idx []int) error {
		v, err := result.At(idx...)
		if err != nil {
			return err
		}
		return dst.Set(v, idx...)
	})
	return errors.Wrapf(err, "%s assign", name)
}
