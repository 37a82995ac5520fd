// Package tensor provides the core tensor data model for micro-torch:
// reference-counted storage, strided multi-dimensional tensors and the
// autograd bookkeeping attached to them.
package tensor

// DataType represents runtime type information for tensors.
//
// The declaration order is the promotion order: a binary operation between
// two types yields the later one.
type DataType int

// Supported data types for tensors.
const (
	Unknown DataType = iota
	Uint32
	Int32
	Float32
)

// Size returns the byte size of the data type.
// Every supported element is 32 bits wide.
func (dt DataType) Size() int {
	return 4
}

// String returns the short tag used when printing tensors.
func (dt DataType) String() string {
	switch dt {
	case Uint32:
		return "u32"
	case Int32:
		return "i32"
	case Float32:
		return "f32"
	default:
		return "unknown"
	}
}

// Valid reports whether dt names a concrete element type.
func (dt DataType) Valid() bool {
	return dt == Uint32 || dt == Int32 || dt == Float32
}

// Promote returns the wider of two data types (Uint32 < Int32 < Float32).
// Unknown defers to the other operand.
func Promote(a, b DataType) DataType {
	if a == Unknown {
		return b
	}
	if b == Unknown {
		return a
	}
	if a > b {
		return a
	}
	return b
}
