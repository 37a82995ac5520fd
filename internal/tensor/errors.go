package tensor

import "github.com/pkg/errors"

// Error kinds reported by tensor construction, indexing, kernels and autograd.
// Call sites wrap them with context; match with errors.Is.
var (
	ErrRankMismatch            = errors.New("rank mismatch")
	ErrIndexOutOfRange         = errors.New("index out of range")
	ErrBroadcastIncompatible   = errors.New("shapes not compatible for broadcasting")
	ErrMatmulShapeIncompatible = errors.New("shapes not compatible for matmul")
	ErrUnsupportedRank         = errors.New("unsupported rank")
	ErrUngradientedRead        = errors.New("gradient has not been computed")
	ErrInvalidGradFlag         = errors.New("requires_grad can only be set on leaf tensors")
	ErrUnimplementedBackward   = errors.New("backward not implemented")
	ErrInvalidShape            = errors.New("invalid shape")
	ErrDivideByZero            = errors.New("integer division by zero")
	ErrStorageReleased         = errors.New("storage already released")
)
