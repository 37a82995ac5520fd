package tensor

// OpKind identifies the differentiable operation that produced a tensor.
type OpKind int

// Operation kinds recorded in the autograd graph.
const (
	OpNone OpKind = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMatMul
	OpSum
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpMatMul:
		return "matmul"
	case OpSum:
		return "sum"
	default:
		return "none"
	}
}

// Op is the autograd record of the operation that produced a tensor: its
// kind and the operands it was applied to. Operands are shared, not owned;
// a tensor may feed any number of downstream operations.
type Op struct {
	Kind   OpKind
	Inputs []*Tensor

	// Dim and KeepDims are only meaningful for OpSum.
	Dim      int
	KeepDims bool
}

// NewOp creates an Op of the given kind over inputs.
func NewOp(kind OpKind, inputs ...*Tensor) *Op {
	return &Op{Kind: kind, Inputs: inputs}
}
