package tensor

import (
	"github.com/pkg/errors"
)

// Tensor is a strided view over a Storage buffer.
//
// A tensor owns its shape, stride and offset metadata and shares its
// Storage with every view derived from it (see Transpose). Tensors produced
// by arithmetic always get fresh storage.
//
// The autograd fields live here as well: requiresGrad marks tensors whose
// gradient should be computed, grad holds the accumulated gradient once a
// backward pass has reached the tensor, and op records how a non-leaf
// tensor was produced.
type Tensor struct {
	dtype   DataType
	shape   Shape
	stride  []int
	offset  int
	storage *Storage

	requiresGrad bool
	grad         *Tensor
	op           *Op
}

// New allocates a zero-filled tensor with row-major strides.
// An Unknown dtype defaults to Float32.
func New(shape Shape, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return alloc(shape, shape.ComputeStrides(), dtype), nil
}

// NewWithStrides allocates a tensor with explicit strides. The storage is
// sized to cover the furthest element those strides can address.
func NewWithStrides(shape Shape, strides []int, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, errors.Wrapf(ErrRankMismatch, "shape %v has %d dimensions, strides %v has %d",
			shape, len(shape), strides, len(strides))
	}
	for i, s := range strides {
		if s < 0 {
			return nil, errors.Wrapf(ErrInvalidShape, "negative stride %d at dimension %d", s, i)
		}
	}
	return alloc(shape, append([]int(nil), strides...), dtype), nil
}

func alloc(shape Shape, strides []int, dtype DataType) *Tensor {
	if !dtype.Valid() {
		dtype = Float32
	}
	span := 0
	if shape.NumElements() > 0 {
		span = 1
		for i, dim := range shape {
			span += (dim - 1) * strides[i]
		}
	}
	return &Tensor{
		dtype:   dtype,
		shape:   shape.Clone(),
		stride:  strides,
		storage: NewStorage(span * dtype.Size()),
	}
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape, dtype DataType) (*Tensor, error) {
	return New(shape, dtype)
}

// Ones creates a tensor filled with 1.
func Ones(shape Shape, dtype DataType) (*Tensor, error) {
	return Full(shape, 1, dtype)
}

// Full creates a tensor with every element set to v.
func Full(shape Shape, v float64, dtype DataType) (*Tensor, error) {
	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	if err := t.Fill(v); err != nil {
		return nil, err
	}
	return t, nil
}

// FromSlice creates a tensor from row-major values.
func FromSlice(values []float64, shape Shape, dtype DataType) (*Tensor, error) {
	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	if err := t.Assign(values); err != nil {
		return nil, err
	}
	return t, nil
}

// Scalar creates a one-element tensor of shape (1). Binary operations
// broadcast it against any shape.
func Scalar(v float64, dtype DataType) *Tensor {
	t := alloc(Shape{1}, []int{1}, dtype)
	_ = t.store(0, FromFloat64(v, t.dtype))
	return t
}

// ZerosLike creates a zero-filled tensor with t's shape and dtype.
func ZerosLike(t *Tensor) *Tensor {
	return alloc(t.shape, t.shape.ComputeStrides(), t.dtype)
}

// OnesLike creates a tensor of ones with t's shape and dtype.
func OnesLike(t *Tensor) *Tensor {
	out := ZerosLike(t)
	_ = out.Fill(1)
	return out
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides.
func (t *Tensor) Strides() []int {
	return t.stride
}

// Offset returns the element offset of the first element in storage.
func (t *Tensor) Offset() int {
	return t.offset
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Storage returns the shared storage backing the tensor.
func (t *Tensor) Storage() *Storage {
	return t.storage
}

// Release drops this tensor's reference to its storage.
// The tensor must not be used afterwards.
func (t *Tensor) Release() {
	t.storage.Release()
}

// elementOffset validates a multi-index and returns its element offset in storage.
func (t *Tensor) elementOffset(indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, errors.Wrapf(ErrRankMismatch, "got %d indices for shape %v", len(indices), t.shape)
	}
	off := t.offset
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d for dimension %d (size %d)", idx, i, t.shape[i])
		}
		off += idx * t.stride[i]
	}
	return off, nil
}

func (t *Tensor) load(off int) (Element, error) {
	bits, err := t.storage.Load32(off * t.dtype.Size())
	if err != nil {
		return Element{}, err
	}
	return elemFromBits(bits, t.dtype), nil
}

func (t *Tensor) store(off int, v Element) error {
	return t.storage.Store32(off*t.dtype.Size(), v.As(t.dtype).bits)
}

// At returns the element at the given indices.
//
// Example:
//
//	t, _ := tensor.New(tensor.Shape{3, 4}, tensor.Float32)
//	v, err := t.At(1, 2) // row 1, column 2
func (t *Tensor) At(indices ...int) (Element, error) {
	off, err := t.elementOffset(indices)
	if err != nil {
		return Element{}, err
	}
	return t.load(off)
}

// Set writes value, converted to the tensor's dtype, at the given indices.
func (t *Tensor) Set(value Element, indices ...int) error {
	off, err := t.elementOffset(indices)
	if err != nil {
		return err
	}
	return t.store(off, value)
}

// BroadcastedRead reads the tensor as if it were broadcast to the rank of
// indices. Leading index components without a matching dimension are
// ignored, and dimensions of size 1 are always read at index 0.
func (t *Tensor) BroadcastedRead(indices ...int) (Element, error) {
	skip := len(indices) - len(t.shape)
	if skip < 0 {
		return Element{}, errors.Wrapf(ErrRankMismatch,
			"broadcast read with %d indices from shape %v", len(indices), t.shape)
	}

	off := t.offset
	for j, size := range t.shape {
		idx := indices[skip+j]
		switch {
		case size == 1:
		case idx >= 0 && idx < size:
			off += idx * t.stride[j]
		default:
			return Element{}, errors.Wrapf(ErrBroadcastIncompatible,
				"index %d does not broadcast to dimension %d of shape %v", idx, j, t.shape)
		}
	}
	return t.load(off)
}

// Fill writes v, converted to the tensor's dtype, into every element.
func (t *Tensor) Fill(v float64) error {
	e := FromFloat64(v, t.dtype)
	return t.walk(func(off, _ int) error {
		return t.store(off, e)
	})
}

// Assign writes row-major values into the tensor.
// len(values) must equal NumElements().
func (t *Tensor) Assign(values []float64) error {
	if len(values) != t.NumElements() {
		return errors.Wrapf(ErrInvalidShape, "%d values for shape %v (%d elements)",
			len(values), t.shape, t.NumElements())
	}
	return t.walk(func(off, i int) error {
		return t.store(off, FromFloat64(values[i], t.dtype))
	})
}

// Values returns the elements in row-major order as float64.
func (t *Tensor) Values() ([]float64, error) {
	out := make([]float64, 0, t.NumElements())
	err := t.walk(func(off, _ int) error {
		e, err := t.load(off)
		if err != nil {
			return err
		}
		out = append(out, e.Float64())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// walk visits every element in row-major order, passing its storage offset
// and its flat logical position.
func (t *Tensor) walk(fn func(off, i int) error) error {
	n := t.NumElements()
	if n == 0 {
		return nil
	}
	idx := make([]int, len(t.shape))
	for i := 0; i < n; i++ {
		off := t.offset
		for d, v := range idx {
			off += v * t.stride[d]
		}
		if err := fn(off, i); err != nil {
			return err
		}
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < t.shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return nil
}

// Clone creates a contiguous deep copy of the tensor's values.
// The copy is a leaf that does not require gradients.
func (t *Tensor) Clone() (*Tensor, error) {
	out := ZerosLike(t)
	err := t.walk(func(off, i int) error {
		e, err := t.load(off)
		if err != nil {
			return err
		}
		return out.store(i, e)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RequiresGrad returns true if gradients are computed for this tensor.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// SetRequiresGrad marks this tensor for gradient computation.
// Only leaf tensors accept the flag; tensors produced by a recorded
// operation fail with ErrInvalidGradFlag.
func (t *Tensor) SetRequiresGrad(requires bool) error {
	if t.op != nil {
		return errors.Wrapf(ErrInvalidGradFlag, "tensor is the output of %s", t.op.Kind)
	}
	t.requiresGrad = requires
	return nil
}

// IsLeaf reports whether the tensor was not produced by a recorded operation.
func (t *Tensor) IsLeaf() bool {
	return t.op == nil
}

// Op returns the recorded operation that produced the tensor, or nil for leaves.
func (t *Tensor) Op() *Op {
	return t.op
}

// SetOp attaches a recorded operation, turning the tensor into a graph node
// that requires gradients. Used by the autograd engine.
func (t *Tensor) SetOp(op *Op) {
	t.op = op
	t.requiresGrad = op != nil
}

// Grad returns the accumulated gradient.
// It fails with ErrUngradientedRead until a backward pass has reached the tensor.
func (t *Tensor) Grad() (*Tensor, error) {
	if t.grad == nil {
		return nil, errors.Wrapf(ErrUngradientedRead, "tensor of shape %v", t.shape)
	}
	return t.grad, nil
}

// HasGrad reports whether a gradient has been accumulated.
func (t *Tensor) HasGrad() bool {
	return t.grad != nil
}

// SetGrad replaces the gradient tensor. Used by the autograd engine.
func (t *Tensor) SetGrad(grad *Tensor) {
	t.grad = grad
}

// ResetGrad zeroes the accumulated gradient in place, so every holder of
// the gradient tensor observes the reset. It is a no-op without a gradient.
func (t *Tensor) ResetGrad() error {
	if t.grad == nil {
		return nil
	}
	return t.grad.Fill(0)
}
