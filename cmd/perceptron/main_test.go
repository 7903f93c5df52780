package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/perceptron/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
inputs: 2
hidden_layers: 3
hidden_nodes: 4
outputs: 1
activation: relu
seed: 5
input_values: [0.5, -0.5]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Inputs)
	assert.Equal(t, 3, cfg.HiddenLayers)
	assert.Equal(t, 4, cfg.HiddenNodes)
	assert.Equal(t, 1, cfg.Outputs)
	assert.Equal(t, "relu", cfg.Activation)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(5), *cfg.Seed)
	assert.Equal(t, []float32{0.5, -0.5}, cfg.InputValues)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "outputs: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Inputs)
	assert.Equal(t, 3, cfg.Outputs)
	assert.Equal(t, "sigmoid", cfg.Activation)
	assert.Nil(t, cfg.Seed)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "widht: 3\n"))
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	seed := int64(1)
	cfg := DefaultConfig()
	cfg.Seed = &seed
	cfg.InputValues = []float32{1, 0, 0, 1, 0, 1, 1, 0}

	net, err := build(cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, net.InputCount())
	assert.Equal(t, 2, net.HiddenLayerCount())
	assert.Equal(t, 2, net.OutputCount())
	assert.Len(t, net.OutputActivations(), 2)
}

func TestBuildErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inputs = 0
	_, err := build(cfg)
	require.ErrorIs(t, err, nn.ErrInvalidConfiguration)

	cfg = DefaultConfig()
	cfg.Activation = "tanh"
	_, err = build(cfg)
	require.ErrorIs(t, err, nn.ErrInvalidConfiguration)

	cfg = DefaultConfig()
	cfg.InputValues = []float32{1}
	_, err = build(cfg)
	require.ErrorIs(t, err, nn.ErrInvalidInputSize)
}
