package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LayerWeights returns the weights feeding layer k (1 <= k < LayerCount) as a
// matrix with one row per node of layer k and one column per node of layer k-1.
//
// Element (i, j) is the weight of the connection from the j-th node of layer
// k-1 into the i-th node of layer k. The matrix is a copy.
func (n *Network) LayerWeights(k int) (*mat.Dense, error) {
	if k < 1 || k >= len(n.layers) {
		return nil, fmt.Errorf("layer %d has no incoming weights (layers 1..%d): %w",
			k, len(n.layers)-1, ErrInvalidConfiguration)
	}
	target, source := n.layers[k], n.layers[k-1]
	w := mat.NewDense(len(target), len(source), nil)
	for i, id := range target {
		for j, c := range n.nodes[id].connections {
			w.Set(i, j, float64(c.Weight))
		}
	}
	return w, nil
}

// LayerBiases returns the biases of layer k as a vector.
func (n *Network) LayerBiases(k int) (*mat.VecDense, error) {
	if k < 0 || k >= len(n.layers) {
		return nil, fmt.Errorf("layer %d of %d: %w", k, len(n.layers), ErrInvalidConfiguration)
	}
	layer := n.layers[k]
	v := mat.NewVecDense(len(layer), nil)
	for i, id := range layer {
		v.SetVec(i, float64(n.nodes[id].bias))
	}
	return v, nil
}

// LayerActivations returns the current activations of layer k as a vector.
func (n *Network) LayerActivations(k int) (*mat.VecDense, error) {
	if k < 0 || k >= len(n.layers) {
		return nil, fmt.Errorf("layer %d of %d: %w", k, len(n.layers), ErrInvalidConfiguration)
	}
	layer := n.layers[k]
	v := mat.NewVecDense(len(layer), nil)
	for i, id := range layer {
		v.SetVec(i, float64(n.nodes[id].activation))
	}
	return v, nil
}
