package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrain_Gates(t *testing.T) {
	tests := []struct {
		gate  string
		steps int
	}{
		{"not", 100},
		{"and", 50},
		{"or", 50},
	}

	for _, tt := range tests {
		t.Run(tt.gate, func(t *testing.T) {
			cfg := defaultTrainConfig()
			cfg.Gate = tt.gate
			cfg.Steps = tt.steps

			result, err := train(cfg, discardLogger())
			require.NoError(t, err)
			assert.Len(t, result.Predictions, len(result.Targets))
			assert.True(t, result.Correct(), "predictions %v", result.Predictions)
		})
	}
}

func TestTrain_NotGatePredictions(t *testing.T) {
	result, err := train(defaultTrainConfig(), discardLogger())
	require.NoError(t, err)
	assert.InDelta(t, 0.6257, result.Predictions[0], 1e-3)
	assert.InDelta(t, 0.2345, result.Predictions[1], 1e-3)
}

func TestTrain_UnknownGate(t *testing.T) {
	cfg := defaultTrainConfig()
	cfg.Gate = "xor"

	_, err := train(cfg, discardLogger())
	require.ErrorIs(t, err, errUnknownGate)
}

func TestRunChain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runChain(&buf))

	out := buf.String()
	assert.Contains(t, out, "t1.grad = Tensor(dtype=f32, ndims=2, offset=0, shape=[2, 2], stride=[2, 1], values=[5, 5, 5, 5])")
	assert.Contains(t, out, "t3.grad = Tensor(dtype=f32, ndims=2, offset=0, shape=[2, 2], stride=[2, 1], values=[1, 1, 1, 1])")
}
