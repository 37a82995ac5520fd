package main

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/m7moudredafouad/micro-torch/autodiff"
	"github.com/m7moudredafouad/micro-torch/backend/cpu"
	"github.com/m7moudredafouad/micro-torch/nn"
	"github.com/m7moudredafouad/micro-torch/optim"
	"github.com/m7moudredafouad/micro-torch/tensor"
)

// errUnknownGate is returned for a gate name outside gates.
var errUnknownGate = errors.New("unknown gate")

// gate is a truth table with its default learning rate.
type gate struct {
	inputs  [][]float64
	targets []float64
	lr      float64
}

var gates = map[string]gate{
	"not": {
		inputs:  [][]float64{{0}, {1}},
		targets: []float64{1, 0},
		lr:      0.01,
	},
	"and": {
		inputs:  [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		targets: []float64{0, 0, 0, 1},
		lr:      0.1,
	},
	"or": {
		inputs:  [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		targets: []float64{0, 1, 1, 1},
		lr:      0.1,
	},
}

// trainConfig holds configuration for a training run.
type trainConfig struct {
	Gate     string  // Gate name (default: "not")
	Steps    int     // Gradient steps (default: 100)
	LR       float64 // Learning rate (default: per gate)
	Momentum float64 // SGD momentum (default: 0)
	Seed     int64   // Init seed; negative for constant 0.5 weights (default: -1)
}

func defaultTrainConfig() trainConfig {
	return trainConfig{
		Gate:  "not",
		Steps: 100,
		Seed:  -1,
	}
}

// trainResult holds the fitted model's predictions on the truth table.
type trainResult struct {
	Inputs      [][]float64
	Targets     []float64
	Predictions []float64
	Loss        float64
}

// Correct reports whether every prediction lands on the target's side of 0.5.
func (r trainResult) Correct() bool {
	for i, p := range r.Predictions {
		if (r.Targets[i] >= 0.5) != (p >= 0.5) {
			return false
		}
	}
	return true
}

// train fits a single linear neuron to the gate's truth table with SGD on
// the summed squared error.
func train(cfg trainConfig, logger *slog.Logger) (trainResult, error) {
	g, ok := gates[cfg.Gate]
	if !ok {
		return trainResult{}, errors.Wrapf(errUnknownGate, "%q", cfg.Gate)
	}
	if cfg.LR == 0 {
		cfg.LR = g.lr
	}

	backend := autodiff.New(cpu.New())
	features := len(g.inputs[0])

	layer, err := nn.NewLinear(nn.LinearConfig{
		InFeatures:  features,
		OutFeatures: 1,
		Seed:        cfg.Seed,
	}, backend)
	if err != nil {
		return trainResult{}, err
	}
	if cfg.Seed < 0 {
		for _, p := range layer.Parameters() {
			if err := p.Tensor().Fill(0.5); err != nil {
				return trainResult{}, err
			}
		}
	}

	flat := make([]float64, 0, len(g.inputs)*features)
	for _, row := range g.inputs {
		flat = append(flat, row...)
	}
	input, err := tensor.FromSlice(flat, tensor.Shape{len(g.inputs), features}, tensor.Float32)
	if err != nil {
		return trainResult{}, err
	}
	targets, err := tensor.FromSlice(g.targets, tensor.Shape{len(g.targets), 1}, tensor.Float32)
	if err != nil {
		return trainResult{}, err
	}

	loss := nn.NewSquaredErrorLoss(backend)
	optimizer := optim.NewSGD(layer.Parameters(), optim.SGDConfig{
		LR:       float32(cfg.LR),
		Momentum: float32(cfg.Momentum),
	}, backend)

	logger.Info("training", "gate", cfg.Gate, "steps", cfg.Steps, "lr", cfg.LR, "momentum", cfg.Momentum)

	var last float64
	for step := 0; step < cfg.Steps; step++ {
		output, err := layer.Forward(input)
		if err != nil {
			return trainResult{}, errors.Wrapf(err, "step %d", step)
		}
		l, err := loss.Forward(output, targets)
		if err != nil {
			return trainResult{}, errors.Wrapf(err, "step %d", step)
		}
		if err := backend.Backward(l); err != nil {
			return trainResult{}, errors.Wrapf(err, "step %d", step)
		}
		if err := optimizer.Step(); err != nil {
			return trainResult{}, errors.Wrapf(err, "step %d", step)
		}
		if err := optimizer.ZeroGrad(); err != nil {
			return trainResult{}, errors.Wrapf(err, "step %d", step)
		}

		values, err := l.Values()
		if err != nil {
			return trainResult{}, err
		}
		last = values[0]
		logger.Debug("step", "step", step, "loss", last)
	}

	restore := backend.NoGrad()
	defer restore()

	output, err := layer.Forward(input)
	if err != nil {
		return trainResult{}, err
	}
	predictions, err := output.Values()
	if err != nil {
		return trainResult{}, err
	}

	logger.Info("done", "loss", last)
	return trainResult{
		Inputs:      g.inputs,
		Targets:     g.targets,
		Predictions: predictions,
		Loss:        last,
	}, nil
}
