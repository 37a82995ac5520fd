package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

func fromSlice(t *testing.T, values []float64, shape tensor.Shape, dtype tensor.DataType) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromSlice(values, shape, dtype)
	require.NoError(t, err)
	return x
}

func full(t *testing.T, shape tensor.Shape, v float64, dtype tensor.DataType) *tensor.Tensor {
	t.Helper()
	x, err := tensor.Full(shape, v, dtype)
	require.NoError(t, err)
	return x
}

func values(t *testing.T, x *tensor.Tensor) []float64 {
	t.Helper()
	v, err := x.Values()
	require.NoError(t, err)
	return v
}

// TestCPUBackend_New tests backend creation.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	require.NotNil(t, backend)
	assert.Equal(t, "CPU", backend.Name())
}

// TestElementwise_Constants checks (a op b)[i] == a op b for constant tensors.
func TestElementwise_Constants(t *testing.T) {
	backend := newTestBackend()

	tests := []struct {
		name string
		op   func(a, b *tensor.Tensor) (*tensor.Tensor, error)
		want float64
	}{
		{"add", backend.Add, 8},
		{"sub", backend.Sub, 4},
		{"mul", backend.Mul, 12},
		{"div", backend.Div, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := full(t, tensor.Shape{2, 3}, 6, tensor.Float32)
			b := full(t, tensor.Shape{2, 3}, 2, tensor.Float32)

			out, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
			for _, v := range values(t, out) {
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

// TestDiv_Uint32 divides a uint32 tensor of 16s by a scalar 4.
func TestDiv_Uint32(t *testing.T) {
	backend := newTestBackend()

	a := full(t, tensor.Shape{3}, 16, tensor.Uint32)
	out, err := backend.Div(a, tensor.Scalar(4, tensor.Uint32))
	require.NoError(t, err)

	assert.Equal(t, tensor.Uint32, out.DType())
	for i := 0; i < 3; i++ {
		v, err := out.At(i)
		require.NoError(t, err)
		assert.Equal(t, uint32(4), v.Uint32())
	}
}

func TestDiv_IntegerByZero(t *testing.T) {
	backend := newTestBackend()

	a := full(t, tensor.Shape{2}, 1, tensor.Int32)
	b := fromSlice(t, []float64{1, 0}, tensor.Shape{2}, tensor.Int32)

	_, err := backend.Div(a, b)
	require.ErrorIs(t, err, tensor.ErrDivideByZero)
}

func TestAdd_Broadcasting(t *testing.T) {
	backend := newTestBackend()

	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, tensor.Shape{3, 3}, tensor.Float32)
	row := fromSlice(t, []float64{10, 20, 30}, tensor.Shape{1, 3}, tensor.Float32)
	vec := fromSlice(t, []float64{100, 200, 300}, tensor.Shape{3}, tensor.Float32)
	col := fromSlice(t, []float64{1, 2, 3}, tensor.Shape{3, 1}, tensor.Float32)

	out, err := backend.Add(a, row)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 3}, out.Shape())
	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36, 17, 28, 39}, values(t, out))

	out, err = backend.Add(a, vec)
	require.NoError(t, err)
	assert.Equal(t, []float64{101, 202, 303, 104, 205, 306, 107, 208, 309}, values(t, out))

	out, err = backend.Mul(col, row)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 3}, out.Shape())
	assert.Equal(t, []float64{10, 20, 30, 20, 40, 60, 30, 60, 90}, values(t, out))

	_, err = backend.Add(
		full(t, tensor.Shape{2, 3}, 1, tensor.Float32),
		full(t, tensor.Shape{3, 2}, 1, tensor.Float32),
	)
	require.ErrorIs(t, err, tensor.ErrBroadcastIncompatible)
}

func TestElementwise_Promotion(t *testing.T) {
	backend := newTestBackend()

	u := full(t, tensor.Shape{2}, 3, tensor.Uint32)
	i := full(t, tensor.Shape{2}, -5, tensor.Int32)
	f := full(t, tensor.Shape{2}, 0.5, tensor.Float32)

	out, err := backend.Add(u, i)
	require.NoError(t, err)
	assert.Equal(t, tensor.Int32, out.DType())
	assert.Equal(t, []float64{-2, -2}, values(t, out))

	out, err = backend.Mul(i, f)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, out.DType())
	assert.Equal(t, []float64{-2.5, -2.5}, values(t, out))
}

func TestElementwise_TransposedView(t *testing.T) {
	backend := newTestBackend()

	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.Float32)
	aT, err := a.T()
	require.NoError(t, err)

	out, err := backend.Add(aT, full(t, tensor.Shape{3, 2}, 0, tensor.Float32))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, values(t, out))
}

func TestAssign(t *testing.T) {
	backend := newTestBackend()

	x := full(t, tensor.Shape{3}, 0, tensor.Uint32)
	require.NoError(t, backend.AddAssign(x, tensor.Scalar(16, tensor.Uint32)))
	assert.Equal(t, []float64{16, 16, 16}, values(t, x))

	// Result keeps dst's dtype.
	f := full(t, tensor.Shape{2, 2}, 1, tensor.Float32)
	require.NoError(t, backend.MulAssign(f, tensor.Scalar(16.1, tensor.Float32)))
	require.NoError(t, backend.DivAssign(f, tensor.Scalar(4, tensor.Float32)))
	require.NoError(t, backend.SubAssign(f, tensor.Scalar(1, tensor.Float32)))
	for _, v := range values(t, f) {
		assert.InDelta(t, 3.025, v, 1e-5)
	}

	// Aliasing src and dst is allowed.
	require.NoError(t, backend.AddAssign(x, x))
	assert.Equal(t, []float64{32, 32, 32}, values(t, x))

	// src must broadcast into dst without growing it.
	err := backend.AddAssign(tensor.Scalar(1, tensor.Float32), f)
	require.ErrorIs(t, err, tensor.ErrBroadcastIncompatible)
}

func TestIterate(t *testing.T) {
	for rank := 1; rank <= MaxRank; rank++ {
		shape := make(tensor.Shape, rank)
		for i := range shape {
			shape[i] = i + 2
		}

		var visited [][]int
		err := Iterate(shape, func(idx []int) error {
			visited = append(visited, append([]int(nil), idx...))
			return nil
		})
		require.NoError(t, err)
		assert.Len(t, visited, shape.NumElements())
		assert.Equal(t, make([]int, rank), visited[0])

		last := visited[len(visited)-1]
		for i := range last {
			assert.Equal(t, shape[i]-1, last[i])
		}
	}

	calls := 0
	require.NoError(t, Iterate(tensor.Shape{}, func([]int) error {
		calls++
		return nil
	}))
	assert.Equal(t, 0, calls)

	err := Iterate(tensor.Shape{1, 1, 1, 1, 1}, func([]int) error { return nil })
	require.ErrorIs(t, err, tensor.ErrUnsupportedRank)
}

func TestElementwise_Rank5Unsupported(t *testing.T) {
	backend := newTestBackend()

	a := full(t, tensor.Shape{1, 1, 1, 1, 2}, 1, tensor.Float32)
	_, err := backend.Add(a, a)
	require.ErrorIs(t, err, tensor.ErrUnsupportedRank)
}
