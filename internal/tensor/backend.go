package tensor

// Backend defines the interface that compute backends implement.
//
// Binary operations broadcast their operands and return a fresh tensor of
// the promoted dtype. The *Assign forms are the compound operators
// (a += b, ...): they write into dst in place and are never recorded for
// autograd.
type Backend interface {
	// Name returns a human-readable backend name.
	Name() string

	// Element-wise binary operations
	Add(a, b *Tensor) (*Tensor, error)
	Sub(a, b *Tensor) (*Tensor, error)
	Mul(a, b *Tensor) (*Tensor, error)
	Div(a, b *Tensor) (*Tensor, error)

	// Matrix operations
	MatMul(a, b *Tensor) (*Tensor, error)

	// Reduction operations
	Sum(x *Tensor, dim int, keepDims bool) (*Tensor, error)

	// Compound assignment
	AddAssign(dst, src *Tensor) error
	SubAssign(dst, src *Tensor) error
	MulAssign(dst, src *Tensor) error
	DivAssign(dst, src *Tensor) error
}
