// Package autodiff implements reverse-mode automatic differentiation using
// the decorator pattern.
//
// AutodiffBackend wraps any tensor.Backend and records a dynamic graph while
// computing forward values:
//   - Recording context: each AutodiffBackend carries its own grad mode, so
//     independent training loops never share state
//   - Graph construction: outputs of differentiable ops carry a tensor.Op
//     naming the op kind and its operands
//   - Backward pass: topological sort over the recorded operands, then a
//     reverse walk dispatching on the op kind
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//
//	x, _ := tensor.Full(tensor.Shape{3}, 2, tensor.Float32)
//	_ = x.SetRequiresGrad(true)
//	y, _ := backend.Mul(x, x) // y = x²
//
//	_ = backend.Backward(y)
//	grad, _ := x.Grad() // dy/dx = 2x = 4
package autodiff

import (
	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// AutodiffBackend wraps a Backend and adds automatic differentiation.
// It implements the tensor.Backend interface.
//
// Type parameter B must satisfy the tensor.Backend interface.
type AutodiffBackend[B tensor.Backend] struct {
	inner     B    // Wrapped backend computing forward values
	recording bool // Grad mode: whether new operations record graph edges
}

// New creates a new AutodiffBackend wrapping the given backend.
// Recording is enabled initially.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner:     backend,
		recording: true,
	}
}

// Inner returns the wrapped backend for direct access.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// IsRecording returns true if new operations record graph edges.
func (b *AutodiffBackend[B]) IsRecording() bool {
	return b.recording
}

// SetRecording switches grad mode on or off.
func (b *AutodiffBackend[B]) SetRecording(on bool) {
	b.recording = on
}

// NoGrad disables recording and returns a function restoring the previous
// grad mode. Intended for use with defer:
//
//	defer backend.NoGrad()()
func (b *AutodiffBackend[B]) NoGrad() func() {
	wasRecording := b.recording
	b.recording = false
	return func() {
		b.recording = wasRecording
	}
}

// record attaches op to out when grad mode is on and at least one operand
// requires gradients.
func (b *AutodiffBackend[B]) record(out *tensor.Tensor, op *tensor.Op) {
	if !b.recording {
		return
	}
	for _, in := range op.Inputs {
		if in.RequiresGrad() {
			out.SetOp(op)
			return
		}
	}
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(a, c *tensor.Tensor) (*tensor.Tensor, error) {
	result, err := b.inner.Add(a, c)
	if err != nil {
		return nil, err
	}
	b.record(result, tensor.NewOp(tensor.OpAdd, a, c))
	return result, nil
}

// Sub performs element-wise subtraction and records the operation.
func (b *AutodiffBackend[B]) Sub(a, c *tensor.Tensor) (*tensor.Tensor, error) {
	result, err := b.inner.Sub(a, c)
	if err != nil {
		return nil, err
	}
	b.record(result, tensor.NewOp(tensor.OpSub, a, c))
	return result, nil
}

// Mul performs element-wise multiplication and records the operation.
func (b *AutodiffBackend[B]) Mul(a, c *tensor.Tensor) (*tensor.Tensor, error) {
	result, err := b.inner.Mul(a, c)
	if err != nil {
		return nil, err
	}
	b.record(result, tensor.NewOp(tensor.OpMul, a, c))
	return result, nil
}

// Div performs element-wise division and records the operation.
func (b *AutodiffBackend[B]) Div(a, c *tensor.Tensor) (*tensor.Tensor, error) {
	result, err := b.inner.Div(a, c)
	if err != nil {
		return nil, err
	}
	b.record(result, tensor.NewOp(tensor.OpDiv, a, c))
	return result, nil
}

// MatMul performs matrix multiplication and records the operation.
func (b *AutodiffBackend[B]) MatMul(a, c *tensor.Tensor) (*tensor.Tensor, error) {
	result, err := b.inner.MatMul(a, c)
	if err != nil {
		return nil, err
	}
	b.record(result, tensor.NewOp(tensor.OpMatMul, a, c))
	return result, nil
}

// Sum reduces dim and records the operation.
func (b *AutodiffBackend[B]) Sum(x *tensor.Tensor, dim int, keepDims bool) (*tensor.Tensor, error) {
	result, err := b.inner.Sum(x, dim, keepDims)
	if err != nil {
		return nil, err
	}
	if dim < 0 {
		dim += x.Rank()
	}
	op := tensor.NewOp(tensor.OpSum, x)
	op.Dim = dim
	op.KeepDims = keepDims
	b.record(result, op)
	return result, nil
}

// AddScalar computes x + v with v lifted to a one-element tensor of x's dtype.
func (b *AutodiffBackend[B]) AddScalar(x *tensor.Tensor, v float64) (*tensor.Tensor, error) {
	return b.Add(x, tensor.Scalar(v, x.DType()))
}

// SubScalar computes x - v.
func (b *AutodiffBackend[B]) SubScalar(x *tensor.Tensor, v float64) (*tensor.Tensor, error) {
	return b.Sub(x, tensor.Scalar(v, x.DType()))
}

// MulScalar computes x * v.
func (b *AutodiffBackend[B]) MulScalar(x *tensor.Tensor, v float64) (*tensor.Tensor, error) {
	return b.Mul(x, tensor.Scalar(v, x.DType()))
}

// DivScalar computes x / v.
func (b *AutodiffBackend[B]) DivScalar(x *tensor.Tensor, v float64) (*tensor.Tensor, error) {
	return b.Div(x, tensor.Scalar(v, x.DType()))
}

// AddAssign computes dst += src in place. Compound forms are not recorded.
func (b *AutodiffBackend[B]) AddAssign(dst, src *tensor.Tensor) error {
	return b.inner.AddAssign(dst, src)
}

// SubAssign computes dst -= src in place.
func (b *AutodiffBackend[B]) SubAssign(dst, src *tensor.Tensor) error {
	return b.inner.SubAssign(dst, src)
}

// MulAssign computes dst *= src in place.
func (b *AutodiffBackend[B]) MulAssign(dst, src *tensor.Tensor) error {
	return b.inner.MulAssign(dst, src)
}

// DivAssign computes dst /= src in place.
func (b *AutodiffBackend[B]) DivAssign(dst, src *tensor.Tensor) error {
	return b.inner.DivAssign(dst, src)
}

// compile-time check
var _ tensor.Backend = (*AutodiffBackend[tensor.Backend])(nil)

// errUnknownOp wraps ErrUnimplementedBackward for op kinds without a rule.
func errUnknownOp(kind tensor.OpKind) error {
	return errors.Wrapf(tensor.ErrUnimplementedBackward, "op %s", kind)
}
