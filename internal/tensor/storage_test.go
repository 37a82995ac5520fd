package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_RefCounting(t *testing.T) {
	s := NewStorage(16)
	assert.Equal(t, 1, s.Refs())
	assert.Equal(t, 16, s.Len())

	s.Retain()
	assert.Equal(t, 2, s.Refs())

	s.Release()
	assert.Equal(t, 1, s.Refs())
	assert.Equal(t, 16, s.Len(), "buffer must survive while owned")

	s.Release()
	assert.Equal(t, 0, s.Len())

	_, err := s.Load32(0)
	require.ErrorIs(t, err, ErrStorageReleased)
	require.ErrorIs(t, s.Store32(0, 1), ErrStorageReleased)
}

func TestStorage_LoadStore(t *testing.T) {
	s := NewStorage(8)

	v, err := s.Load32(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v, "buffer starts zeroed")

	require.NoError(t, s.Store32(4, 0xdeadbeef))
	v, err = s.Load32(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v)

	v, err = s.Load32(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)
}
