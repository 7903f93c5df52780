package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constRand always returns the same value; Uniform maps 1.0 to 1.0 and 0.5 to 0.
type constRand float32

func (c constRand) Float32() float32 { return float32(c) }

// seqRand returns vals in order, cycling.
type seqRand struct {
	vals []float32
	i    int
}

func (s *seqRand) Float32() float32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestUniform(t *testing.T) {
	assert.Equal(t, float32(-1), Uniform(constRand(0)))
	assert.Equal(t, float32(0), Uniform(constRand(0.5)))
	assert.Equal(t, float32(0.5), Uniform(constRand(0.75)))

	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := Uniform(r)
		require.GreaterOrEqual(t, v, float32(-1))
		require.Less(t, v, float32(1))
	}
}

func TestNewNode(t *testing.T) {
	n := newNode(constRand(0.75))

	assert.Equal(t, float32(0.5), n.Bias())
	assert.Equal(t, float32(0), n.WeightedSum())
	assert.Equal(t, float32(0), n.Activation())
	assert.Equal(t, 0, n.NumConnections())
	assert.Empty(t, n.Connections())
}

func TestAddConnection(t *testing.T) {
	r := &seqRand{vals: []float32{0.75, 0.25, 1.0}}
	n := newNode(r) // bias 0.5

	n.addConnection(3, r)
	n.addConnection(1, r)

	assert.Equal(t, []Connection{
		{Source: 3, Weight: -0.5},
		{Source: 1, Weight: 1},
	}, n.Connections())
}

func TestConnectionsIsCopy(t *testing.T) {
	n := newNode(constRand(1))
	n.addConnection(0, constRand(1))

	conns := n.Connections()
	conns[0].Weight = 42

	assert.Equal(t, float32(1), n.Connections()[0].Weight)
}

// TestCalculateWeightedSum tests bias + Σ w·a using stored source activations.
func TestCalculateWeightedSum(t *testing.T) {
	arena := []Node{
		{activation: 2},
		{activation: -1},
		{bias: 0.5},
	}
	target := &arena[2]
	target.connections = []Connection{
		{Source: 0, Weight: 0.25},
		{Source: 1, Weight: 3},
	}

	target.calculateWeightedSum(arena)

	// 0.25*2 + 3*(-1) + 0.5
	assert.Equal(t, float32(-2), target.WeightedSum())
	assert.Equal(t, float32(0), target.Activation(), "activation is left to the caller")
}

func TestCalculateWeightedSum_NoConnections(t *testing.T) {
	arena := []Node{{bias: -0.3, weightedSum: 9}}
	arena[0].calculateWeightedSum(arena)
	assert.Equal(t, float32(-0.3), arena[0].WeightedSum())
}
