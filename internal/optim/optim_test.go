package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m7moudredafouad/micro-torch/internal/autodiff"
	"github.com/m7moudredafouad/micro-torch/internal/backend/cpu"
	"github.com/m7moudredafouad/micro-torch/internal/nn"
	"github.com/m7moudredafouad/micro-torch/internal/optim"
	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

func newParam(t *testing.T, name string, values ...float64) *nn.Parameter {
	t.Helper()
	x, err := tensor.FromSlice(values, tensor.Shape{len(values)}, tensor.Float32)
	require.NoError(t, err)
	p, err := nn.NewParameter(name, x)
	require.NoError(t, err)
	return p
}

// setGrad runs a backward pass of sum(k * x) so that x.grad = k.
func setGrad(t *testing.T, backend *autodiff.AutodiffBackend[*cpu.CPUBackend], p *nn.Parameter, k float64) {
	t.Helper()
	y, err := backend.MulScalar(p.Tensor(), k)
	require.NoError(t, err)
	require.NoError(t, backend.Backward(y))
}

func values(t *testing.T, x *tensor.Tensor) []float64 {
	t.Helper()
	v, err := x.Values()
	require.NoError(t, err)
	return v
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	backend := autodiff.New(cpu.New())

	param := newParam(t, "x", 2.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1}, backend)

	setGrad(t, backend, param, 1)
	require.NoError(t, optimizer.Step())

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, values(t, param.Tensor())[0], 1e-6)

	// The parameter is still a trainable leaf.
	assert.True(t, param.Tensor().IsLeaf())
	assert.True(t, param.Tensor().RequiresGrad())
	assert.True(t, backend.IsRecording())
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	backend := autodiff.New(cpu.New())

	param := newParam(t, "x", 1.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9}, backend)

	// Step 1: v = 1, x = 1 - 0.1 = 0.9
	setGrad(t, backend, param, 1)
	require.NoError(t, optimizer.Step())
	require.NoError(t, optimizer.ZeroGrad())
	assert.InDelta(t, 0.9, values(t, param.Tensor())[0], 1e-6)

	// Step 2: v = 0.9 + 1 = 1.9, x = 0.9 - 0.19 = 0.71
	setGrad(t, backend, param, 1)
	require.NoError(t, optimizer.Step())
	assert.InDelta(t, 0.71, values(t, param.Tensor())[0], 1e-6)
}

func TestSGD_SkipsParametersWithoutGrad(t *testing.T) {
	backend := autodiff.New(cpu.New())

	used := newParam(t, "used", 1.0)
	unused := newParam(t, "unused", 5.0)
	optimizer := optim.NewSGD([]*nn.Parameter{used, unused}, optim.SGDConfig{LR: 0.5}, backend)

	setGrad(t, backend, used, 2)
	require.NoError(t, optimizer.Step())

	assert.InDelta(t, 0.0, values(t, used.Tensor())[0], 1e-6)
	assert.Equal(t, []float64{5}, values(t, unused.Tensor()))

	// ZeroGrad tolerates parameters that never received a gradient.
	require.NoError(t, optimizer.ZeroGrad())
	grad, err := used.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, values(t, grad))
}

func TestSGD_LearningRate(t *testing.T) {
	backend := autodiff.New(cpu.New())

	optimizer := optim.NewSGD(nil, optim.SGDConfig{}, backend)
	assert.InDelta(t, 0.01, optimizer.GetLR(), 1e-9)

	optimizer.SetLR(0.5)
	assert.InDelta(t, 0.5, optimizer.GetLR(), 1e-9)
}

// TestSGD_TrainsLinear fits OR with a Linear layer and SGD with momentum.
func TestSGD_TrainsLinear(t *testing.T) {
	backend := autodiff.New(cpu.New())

	layer, err := nn.NewLinear(nn.LinearConfig{InFeatures: 2, OutFeatures: 1}, backend)
	require.NoError(t, err)
	require.NoError(t, layer.Weight().Tensor().Fill(0.5))
	require.NoError(t, layer.Bias().Tensor().Fill(0.5))

	var optimizer optim.Optimizer = optim.NewSGD(layer.Parameters(),
		optim.SGDConfig{LR: 0.1, Momentum: 0.9}, backend)
	loss := nn.NewSquaredErrorLoss(backend)

	input, err := tensor.FromSlice([]float64{0, 0, 0, 1, 1, 0, 1, 1}, tensor.Shape{4, 2}, tensor.Float32)
	require.NoError(t, err)
	targets, err := tensor.FromSlice([]float64{0, 1, 1, 1}, tensor.Shape{4, 1}, tensor.Float32)
	require.NoError(t, err)

	for step := 0; step < 50; step++ {
		output, err := layer.Forward(input)
		require.NoError(t, err)
		l, err := loss.Forward(output, targets)
		require.NoError(t, err)
		require.NoError(t, backend.Backward(l))
		require.NoError(t, optimizer.Step())
		require.NoError(t, optimizer.ZeroGrad())
	}

	output, err := layer.Forward(input)
	require.NoError(t, err)
	got := values(t, output)
	assert.Less(t, got[0], 0.5)
	for _, v := range got[1:] {
		assert.GreaterOrEqual(t, v, 0.5)
	}
}
