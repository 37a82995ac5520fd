package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

func TestSum(t *testing.T) {
	backend := newTestBackend()
	x := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.Float32)

	tests := []struct {
		name     string
		dim      int
		keepDims bool
		shape    tensor.Shape
		want     []float64
	}{
		{"rows keep", 0, true, tensor.Shape{1, 3}, []float64{5, 7, 9}},
		{"rows squeeze", 0, false, tensor.Shape{3}, []float64{5, 7, 9}},
		{"cols keep", 1, true, tensor.Shape{2, 1}, []float64{6, 15}},
		{"cols squeeze", 1, false, tensor.Shape{2}, []float64{6, 15}},
		{"negative dim", -1, false, tensor.Shape{2}, []float64{6, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := backend.Sum(x, tt.dim, tt.keepDims)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, out.Shape())
			assert.Equal(t, tt.want, values(t, out))
		})
	}
}

func TestSum_Rank1KeepsOneElement(t *testing.T) {
	backend := newTestBackend()
	x := fromSlice(t, []float64{1, 2, 3}, tensor.Shape{3}, tensor.Uint32)

	out, err := backend.Sum(x, 0, false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1}, out.Shape())
	assert.Equal(t, tensor.Uint32, out.DType())
	assert.Equal(t, []float64{6}, values(t, out))
}

func TestSum_InvalidDim(t *testing.T) {
	backend := newTestBackend()
	x := full(t, tensor.Shape{2, 2}, 1, tensor.Float32)

	_, err := backend.Sum(x, 2, false)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfRange)

	_, err = backend.Sum(x, -3, false)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfRange)
}

func TestReducedShape(t *testing.T) {
	assert.Equal(t, tensor.Shape{2, 1, 4}, ReducedShape(tensor.Shape{2, 3, 4}, 1, true))
	assert.Equal(t, tensor.Shape{2, 4}, ReducedShape(tensor.Shape{2, 3, 4}, 1, false))
}
