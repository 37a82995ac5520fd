package main

import (
	"fmt"
	"io"

	"github.com/m7moudredafouad/micro-torch/autodiff"
	"github.com/m7moudredafouad/micro-torch/backend/cpu"
	"github.com/m7moudredafouad/micro-torch/tensor"
)

// runChain computes t3 = t1*t1 + t1 for t1 = 2 and prints every gradient.
func runChain(w io.Writer) error {
	backend := autodiff.New(cpu.New())

	t1, err := tensor.Full(tensor.Shape{2, 2}, 2, tensor.Float32)
	if err != nil {
		return err
	}
	if err := t1.SetRequiresGrad(true); err != nil {
		return err
	}

	t2, err := backend.Mul(t1, t1)
	if err != nil {
		return err
	}
	t3, err := backend.Add(t2, t1)
	if err != nil {
		return err
	}
	if err := backend.Backward(t3); err != nil {
		return err
	}

	for _, node := range []struct {
		name string
		t    *tensor.Tensor
	}{{"t1", t1}, {"t2", t2}, {"t3", t3}} {
		grad, err := node.t.Grad()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s = %v\n%s.grad = %v\n", node.name, node.t, node.name, grad)
	}
	return nil
}
