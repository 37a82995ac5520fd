package autodiff

import (
	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// Backward computes gradients of t with respect to every tensor in its graph
// that requires gradients.
//
// Algorithm:
//  1. Topologically sort the graph reachable from t (operands before the
//     tensors computed from them, t last)
//  2. Clear stale gradients of non-leaf nodes and seed t's gradient with ones
//     (added to the existing gradient when t is itself a leaf)
//  3. Walk the order in reverse, applying each node's backward rule
//
// Leaf gradients accumulate across calls; use Tensor.ResetGrad between
// steps. The pass runs with recording disabled. Backward is a no-op when t
// does not require gradients.
func (b *AutodiffBackend[B]) Backward(t *tensor.Tensor) error {
	if !t.RequiresGrad() {
		return nil
	}
	defer b.NoGrad()()

	order := topoSort(t)
	for _, node := range order {
		if !node.IsLeaf() {
			node.SetGrad(nil)
		}
	}
	if t.IsLeaf() {
		if err := b.accumulate(t, tensor.OnesLike(t), false); err != nil {
			return errors.Wrap(err, "seed leaf gradient")
		}
		return nil
	}
	t.SetGrad(tensor.OnesLike(t))

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.IsLeaf() || !node.HasGrad() {
			continue
		}
		if err := b.backwardStep(node); err != nil {
			return errors.Wrapf(err, "backward through %s", node.Op().Kind)
		}
	}
	return nil
}

// topoSort returns the tensors reachable from root through recorded
// operands in post-order: every tensor appears after all of its operands.
// Each tensor is visited once.
func topoSort(root *tensor.Tensor) []*tensor.Tensor {
	visited := make(map[*tensor.Tensor]bool)
	var order []*tensor.Tensor

	var visit func(*tensor.Tensor)
	visit = func(node *tensor.Tensor) {
		if visited[node] {
			return
		}
		visited[node] = true
		if op := node.Op(); op != nil {
			for _, in := range op.Inputs {
				visit(in)
			}
		}
		order = append(order, node)
	}
	visit(root)
	return order
}

// backwardStep propagates out's gradient into the operands of its op.
func (b *AutodiffBackend[B]) backwardStep(out *tensor.Tensor) error {
	op := out.Op()
	grad, err := out.Grad()
	if err != nil {
		return err
	}

	switch op.Kind {
	case tensor.OpAdd:
		return b.addBackward(op, grad)
	case tensor.OpSub:
		return b.subBackward(op, grad)
	case tensor.OpMul:
		return b.mulBackward(op, grad)
	case tensor.OpDiv:
		return b.divBackward(op, grad)
	case tensor.OpMatMul:
		return b.matmulBackward(op, grad)
	case tensor.OpSum:
		return b.sumBackward(op, grad)
	default:
		return errUnknownOp(op.Kind)
	}
}

// addBackward: d(a+c)/da = d(a+c)/dc = 1.
func (b *AutodiffBackend[B]) addBackward(op *tensor.Op, grad *tensor.Tensor) error {
	a, c := op.Inputs[0], op.Inputs[1]
	if err := b.accumulate(a, grad, false); err != nil {
		return err
	}
	return b.accumulate(c, grad, false)
}

// subBackward: d(a-c)/da = 1, d(a-c)/dc = -1.
func (b *AutodiffBackend[B]) subBackward(op *tensor.Op, grad *tensor.Tensor) error {
	a, c := op.Inputs[0], op.Inputs[1]
	if err := b.accumulate(a, grad, false); err != nil {
		return err
	}
	return b.accumulate(c, grad, true)
}

// mulBackward: grad_a = grad * c, grad_c = grad * a (operand values, not gradients).
func (b *AutodiffBackend[B]) mulBackward(op *tensor.Op, grad *tensor.Tensor) error {
	a, c := op.Inputs[0], op.Inputs[1]

	if needsGrad(a) {
		gradA, err := b.Mul(grad, c)
		if err != nil {
			return err
		}
		if err := b.accumulate(a, gradA, false); err != nil {
			return err
		}
	}

	if needsGrad(c) {
		gradC, err := b.Mul(grad, a)
		if err != nil {
			return err
		}
		return b.accumulate(c, gradC, false)
	}
	return nil
}

// divBackward: grad_a = grad / c, grad_c = -grad * a / c².
func (b *AutodiffBackend[B]) divBackward(op *tensor.Op, grad *tensor.Tensor) error {
	a, c := op.Inputs[0], op.Inputs[1]

	if needsGrad(a) {
		gradA, err := b.Div(grad, c)
		if err != nil {
			return err
		}
		if err := b.accumulate(a, gradA, false); err != nil {
			return err
		}
	}

	if needsGrad(c) {
		numerator, err := b.Mul(grad, a)
		if err != nil {
			return err
		}
		cSquared, err := b.Mul(c, c)
		if err != nil {
			return err
		}
		gradC, err := b.Div(numerator, cSquared)
		if err != nil {
			return err
		}
		return b.accumulate(c, gradC, true)
	}
	return nil
}

// matmulBackward: grad_a = grad @ cᵀ, grad_c = aᵀ @ grad.
// For vectors the output is a single dot product, so grad_a = grad * c and
// grad_c = grad * a.
func (b *AutodiffBackend[B]) matmulBackward(op *tensor.Op, grad *tensor.Tensor) error {
	a, c := op.Inputs[0], op.Inputs[1]

	if a.Rank() == 1 {
		return b.mulBackward(op, grad)
	}

	if needsGrad(a) {
		cT, err := c.T()
		if err != nil {
			return err
		}
		gradA, err := b.MatMul(grad, cT)
		cT.Release()
		if err != nil {
			return err
		}
		if err := b.accumulate(a, gradA, false); err != nil {
			return err
		}
	}

	if needsGrad(c) {
		aT, err := a.T()
		if err != nil {
			return err
		}
		gradC, err := b.MatMul(aT, grad)
		aT.Release()
		if err != nil {
			return err
		}
		return b.accumulate(c, gradC, false)
	}
	return nil
}

// sumBackward broadcasts grad back across the reduced dimension. A squeezed
// dimension is reinstated first so the broadcast lines up.
func (b *AutodiffBackend[B]) sumBackward(op *tensor.Op, grad *tensor.Tensor) error {
	x := op.Inputs[0]
	if !needsGrad(x) {
		return nil
	}

	if !op.KeepDims && x.Rank() > 1 {
		unsqueezed, err := grad.Unsqueeze(op.Dim)
		if err != nil {
			return err
		}
		defer unsqueezed.Release()
		grad = unsqueezed
	}
	return b.accumulate(x, grad, false)
}

// needsGrad reports whether gradient should flow into operand.
func needsGrad(operand *tensor.Tensor) bool {
	return operand.RequiresGrad()
}

// accumulate adds (or subtracts) grad into target's gradient, creating a
// zero-filled gradient on first use. grad is first summed over the
// dimensions broadcasting added, then broadcast into target's shape.
func (b *AutodiffBackend[B]) accumulate(target, grad *tensor.Tensor, negate bool) error {
	if !needsGrad(target) {
		return nil
	}

	reduced, err := b.reduceBroadcast(grad, target.Shape())
	if err != nil {
		return err
	}

	if !target.HasGrad() {
		target.SetGrad(tensor.ZerosLike(target))
	}
	targetGrad, err := target.Grad()
	if err != nil {
		return err
	}

	if negate {
		return b.inner.SubAssign(targetGrad, reduced)
	}
	return b.inner.AddAssign(targetGrad, reduced)
}
