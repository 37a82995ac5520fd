package nn

import (
	"math"
	"math/rand"

	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// rng makes the draw reproducible; pass rand.New(rand.NewSource(seed)).
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) (*tensor.Tensor, error) {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return Uniform(shape, -bound, bound, rng)
}

// Uniform creates a float32 tensor with values drawn from U(low, high).
func Uniform(shape tensor.Shape, low, high float64, rng *rand.Rand) (*tensor.Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	values := make([]float64, shape.NumElements())
	for i := range values {
		values[i] = low + rng.Float64()*(high-low)
	}
	return tensor.FromSlice(values, shape, tensor.Float32)
}

// Zeros creates a float32 tensor filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros(shape tensor.Shape) (*tensor.Tensor, error) {
	return tensor.Zeros(shape, tensor.Float32)
}
