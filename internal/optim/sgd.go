package optim

import (
	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/internal/nn"
	"github.com/m7moudredafouad/micro-torch/internal/tensor"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Updates are applied in place with recording disabled, so parameters stay
// leaf tensors that require gradients.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	}, backend)
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter]*tensor.Tensor
	backend    B
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD[B tensor.Backend](params []*nn.Parameter, config SGDConfig, backend B) *SGD[B] {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*tensor.Tensor),
		backend:    backend,
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient (not in computational graph) are skipped.
func (s *SGD[B]) Step() error {
	return withoutRecording(s.backend, func() error {
		for _, param := range s.params {
			grad := getGradient(param)
			if grad == nil {
				continue
			}

			update := grad
			if s.momentum != 0 {
				velocity, err := s.updateVelocity(param, grad)
				if err != nil {
					return errors.Wrapf(err, "sgd: %s", param.Name())
				}
				update = velocity
			}

			// param -= lr * update
			lr := tensor.Scalar(float64(s.lr), update.DType())
			scaled, err := s.backend.Mul(update, lr)
			if err != nil {
				return errors.Wrapf(err, "sgd: %s", param.Name())
			}
			if err := s.backend.SubAssign(param.Tensor(), scaled); err != nil {
				return errors.Wrapf(err, "sgd: %s", param.Name())
			}
		}
		return nil
	})
}

// updateVelocity computes velocity = momentum * velocity + grad in place.
func (s *SGD[B]) updateVelocity(param *nn.Parameter, grad *tensor.Tensor) (*tensor.Tensor, error) {
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = tensor.ZerosLike(param.Tensor())
		s.velocities[param] = velocity
	}

	momentum := tensor.Scalar(float64(s.momentum), velocity.DType())
	if err := s.backend.MulAssign(velocity, momentum); err != nil {
		return nil, err
	}
	if err := s.backend.AddAssign(velocity, grad); err != nil {
		return nil, err
	}
	return velocity, nil
}

// ZeroGrad resets gradients for all parameters.
func (s *SGD[B]) ZeroGrad() error {
	for _, param := range s.params {
		if err := param.ZeroGrad(); err != nil {
			return errors.Wrapf(err, "zero grad: %s", param.Name())
		}
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD[B]) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}

var _ Optimizer = (*SGD[tensor.Backend])(nil)
