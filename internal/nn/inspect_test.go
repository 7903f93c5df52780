package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLayerWeightsShape(t *testing.T) {
	net, err := New(3, 2, 4, 2, WithSeed(6))
	require.NoError(t, err)

	tests := []struct {
		layer, rows, cols int
	}{
		{1, 4, 3},
		{2, 4, 4},
		{3, 2, 4},
	}
	for _, tt := range tests {
		w, err := net.LayerWeights(tt.layer)
		require.NoError(t, err)
		r, c := w.Dims()
		assert.Equal(t, tt.rows, r, "layer %d", tt.layer)
		assert.Equal(t, tt.cols, c, "layer %d", tt.layer)
	}

	_, err = net.LayerWeights(0)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = net.LayerWeights(4)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = net.LayerBiases(-1)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = net.LayerActivations(4)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestLayerWeightsMatchConnections(t *testing.T) {
	net, err := New(2, 1, 3, 1, WithSeed(12))
	require.NoError(t, err)

	w, err := net.LayerWeights(1)
	require.NoError(t, err)

	for i, id := range net.Hidden(0) {
		for j, c := range mustNode(t, net, id).Connections() {
			assert.Equal(t, float64(c.Weight), w.At(i, j))
		}
	}
}

// TestForwardMatchesMatVec tests each layer's weighted sums against W·a + b.
func TestForwardMatchesMatVec(t *testing.T) {
	net, err := New(4, 3, 5, 3, WithSeed(30), WithActivation(ReLU{}))
	require.NoError(t, err)
	_, err = net.Evaluate([]float32{0.9, -0.1, 0.4, -1})
	require.NoError(t, err)

	for k := 1; k < net.LayerCount(); k++ {
		w, err := net.LayerWeights(k)
		require.NoError(t, err)
		b, err := net.LayerBiases(k)
		require.NoError(t, err)
		a, err := net.LayerActivations(k - 1)
		require.NoError(t, err)

		var z mat.VecDense
		z.MulVec(w, a)
		z.AddVec(&z, b)

		for i, id := range net.Layer(k) {
			assert.InDelta(t, z.AtVec(i), float64(mustNode(t, net, id).WeightedSum()), 1e-5, "layer %d row %d", k, i)
		}
	}
}
