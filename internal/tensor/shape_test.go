package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want Shape
		err  error
	}{
		{"same", Shape{3, 3}, Shape{3, 3}, Shape{3, 3}, nil},
		{"row", Shape{3, 3}, Shape{1, 3}, Shape{3, 3}, nil},
		{"lower rank", Shape{3, 3}, Shape{3}, Shape{3, 3}, nil},
		{"column", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, nil},
		{"both expand", Shape{4, 1}, Shape{1, 5}, Shape{4, 5}, nil},
		{"scalar-like", Shape{1}, Shape{2, 3, 4}, Shape{2, 3, 4}, nil},
		{"leading kept", Shape{2, 1, 3}, Shape{4, 3}, Shape{2, 4, 3}, nil},
		{"mismatch", Shape{2, 3}, Shape{3, 2}, nil, ErrBroadcastIncompatible},
		{"trailing mismatch", Shape{3, 4}, Shape{3, 5}, nil, ErrBroadcastIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.a, tt.b)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Broadcasting is symmetric.
			rev, err := BroadcastShapes(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rev)
		})
	}
}

func TestMatMulShape(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want Shape
		err  error
	}{
		{"vectors", Shape{3}, Shape{3}, Shape{1}, nil},
		{"matrices", Shape{4, 2}, Shape{2, 1}, Shape{4, 1}, nil},
		{"square", Shape{3, 3}, Shape{3, 6}, Shape{3, 6}, nil},
		{"batched", Shape{1, 2, 3}, Shape{1, 3, 4}, nil, ErrMatmulShapeIncompatible},
		{"vector length", Shape{3}, Shape{4}, nil, ErrMatmulShapeIncompatible},
		{"inner", Shape{2, 3}, Shape{2, 3}, nil, ErrMatmulShapeIncompatible},
		{"rank", Shape{2, 3}, Shape{3}, nil, ErrMatmulShapeIncompatible},
		{"scalar-like", Shape{}, Shape{}, nil, ErrMatmulShapeIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatMulShape(tt.a, tt.b)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShapeHelpers(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, 0, Shape{2, 0}.NumElements())

	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 2, s[0])
	assert.True(t, s.Equal(Shape{2, 3, 4}))
	assert.False(t, s.Equal(Shape{2, 3}))
}
