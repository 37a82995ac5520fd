package tensor

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Storage is a reference-counted, fixed-size byte buffer shared by a tensor
// and every view derived from it. It is the only place tensor memory is
// allocated. A write through any holder is visible to all of them.
//
// Storage performs no bounds checking of its own; Tensor validates the
// logical index before computing a byte offset.
type Storage struct {
	data     []byte
	refCount atomic.Int32
}

// NewStorage allocates a zeroed buffer of size bytes with one owner.
func NewStorage(size int) *Storage {
	s := &Storage{data: make([]byte, size)}
	s.refCount.Store(1)
	return s
}

// Retain registers another owner and returns s.
func (s *Storage) Retain() *Storage {
	s.refCount.Add(1)
	return s
}

// Release drops one owner. The buffer is freed when the last owner releases it.
func (s *Storage) Release() {
	if s.refCount.Add(-1) == 0 {
		s.data = nil
	}
}

// Refs returns the current number of owners.
func (s *Storage) Refs() int {
	return int(s.refCount.Load())
}

// Len returns the buffer size in bytes (zero once released).
func (s *Storage) Len() int {
	return len(s.data)
}

// Load32 reads the 32-bit word at byte offset off.
func (s *Storage) Load32(off int) (uint32, error) {
	if s.data == nil {
		return 0, errors.Wrapf(ErrStorageReleased, "load at byte %d", off)
	}
	return binary.LittleEndian.Uint32(s.data[off : off+4]), nil
}

// Store32 writes the 32-bit word v at byte offset off.
func (s *Storage) Store32(off int, v uint32) error {
	if s.data == nil {
		return errors.Wrapf(ErrStorageReleased, "store at byte %d", off)
	}
	binary.LittleEndian.PutUint32(s.data[off:off+4], v)
	return nil
}
