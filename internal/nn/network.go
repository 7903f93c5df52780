package nn

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/born-ml/perceptron/internal/parallel"
)

// Network is a fully connected feed-forward network:
// input layer -> N hidden layers -> output layer.
//
// All nodes live in a single arena owned by the network. Layers and
// connections refer to nodes by NodeID, so a node is owned exactly once and
// referenced by every connection fanning out of it.
//
// Layer k (k >= 1) is wired to layer k-1 with full bipartite fan-in: every
// node of layer k has exactly one connection per node of layer k-1, in the
// order of layer k-1. Input nodes have no connections.
//
// Example:
//
//	net, err := nn.New(2, 1, 2, 1, nn.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	if err := net.SetInputActivations([]float32{0.5, -0.5}); err != nil {
//	    return err
//	}
//	net.Forward()
//	out := net.OutputActivations()
//
// A Network is not safe for concurrent mutation.
type Network struct {
	nodes      []Node
	layers     [][]NodeID // [0] input, [1..n] hidden, [len-1] output
	activation Activation
	parallel   parallel.Config
}

// New builds a network and runs one forward pass over it.
//
// Biases and weights are drawn uniformly from [-1, 1). Input activations
// start at zero. Every count must be positive; otherwise New returns an error
// wrapping ErrInvalidConfiguration and no network.
func New(inputCount, hiddenLayerCount, hiddenNodesPerLayer, outputCount int, opts ...Option) (*Network, error) {
	if inputCount <= 0 || hiddenLayerCount <= 0 || hiddenNodesPerLayer <= 0 || outputCount <= 0 {
		return nil, fmt.Errorf(
			"network %d-%dx%d-%d: every dimension must be positive: %w",
			inputCount, hiddenLayerCount, hiddenNodesPerLayer, outputCount, ErrInvalidConfiguration,
		)
	}

	total, ok := networkSize(inputCount, hiddenLayerCount, hiddenNodesPerLayer, outputCount)
	if !ok {
		return nil, fmt.Errorf(
			"network %d-%dx%d-%d: exceeds %d nodes or %d connections: %w",
			inputCount, hiddenLayerCount, hiddenNodesPerLayer, outputCount,
			MaxNodes, MaxConnections, ErrInvalidConfiguration,
		)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	rng := o.source()

	sizes := make([]int, 0, hiddenLayerCount+2)
	sizes = append(sizes, inputCount)
	for i := 0; i < hiddenLayerCount; i++ {
		sizes = append(sizes, hiddenNodesPerLayer)
	}
	sizes = append(sizes, outputCount)

	n := &Network{
		nodes:      make([]Node, 0, total),
		layers:     make([][]NodeID, len(sizes)),
		activation: o.activation,
		parallel:   o.parallel,
	}

	// Every node is allocated (and its bias drawn) before any weight.
	for k, size := range sizes {
		layer := make([]NodeID, size)
		for i := range layer {
			layer[i] = NodeID(len(n.nodes))
			n.nodes = append(n.nodes, newNode(rng))
		}
		n.layers[k] = layer
	}

	for k := 1; k < len(n.layers); k++ {
		n.connectLayers(n.layers[k], n.layers[k-1], rng)
	}

	n.Forward()
	return n, nil
}

// Size limits accepted by New.
const (
	MaxNodes              = 1 << 28
	MaxConnections uint64 = 1 << 32
)

// networkSize returns the node count of a network with the given positive
// dimensions, and false if the node or connection count overflows or exceeds
// MaxNodes / MaxConnections.
func networkSize(in, hiddenLayers, hiddenNodes, out int) (int, bool) {
	u := func(v int) uint64 { return uint64(v) }

	hi, hidden := bits.Mul64(u(hiddenLayers), u(hiddenNodes))
	if hi != 0 || hidden > MaxNodes {
		return 0, false
	}
	nodes := u(in) + hidden + u(out)
	if u(in) > MaxNodes || u(out) > MaxNodes || nodes > MaxNodes {
		return 0, false
	}

	// in*h + (layers-1)*h*h + h*out, every factor already <= MaxNodes.
	var conns uint64
	for _, term := range [][3]uint64{
		{u(in), u(hiddenNodes), 1},
		{u(hiddenLayers - 1), u(hiddenNodes), u(hiddenNodes)},
		{u(hiddenNodes), u(out), 1},
	} {
		hi, p := bits.Mul64(term[0], term[1])
		if hi != 0 {
			return 0, false
		}
		hi, p = bits.Mul64(p, term[2])
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		conns, carry = bits.Add64(conns, p, 0)
		if carry != 0 || conns > MaxConnections {
			return 0, false
		}
	}
	return int(nodes), true
}

// connectLayers gives every node in target one connection per node in source.
func (n *Network) connectLayers(target, source []NodeID, r Rand) {
	for _, t := range target {
		node := &n.nodes[t]
		node.connections = make([]Connection, 0, len(source))
		for _, s := range source {
			node.addConnection(s, r)
		}
	}
}

// Forward recomputes weighted sums and activations of every hidden and output
// node, layer by layer from the first hidden layer to the output layer.
//
// Nodes of one layer only read the previous layer, so they may be evaluated
// concurrently according to the network's parallel config. Input activations
// are never modified.
func (n *Network) Forward() {
	for k := 1; k < len(n.layers); k++ {
		layer := n.layers[k]
		parallel.For(len(layer), func(i int) {
			node := &n.nodes[layer[i]]
			node.calculateWeightedSum(n.nodes)
			node.activation = n.activation.Activate(node.weightedSum)
		}, n.parallel)
	}
}

// SetInputActivations sets the activation of each input node, in order.
//
// len(values) must equal InputCount; otherwise an error wrapping
// ErrInvalidInputSize is returned and no input is changed.
func (n *Network) SetInputActivations(values []float32) error {
	input := n.layers[0]
	if len(values) != len(input) {
		return fmt.Errorf("got %d input values, network has %d inputs: %w",
			len(values), len(input), ErrInvalidInputSize)
	}
	for i, id := range input {
		n.nodes[id].activation = values[i]
	}
	return nil
}

// Evaluate sets the inputs, runs Forward and returns the output activations.
func (n *Network) Evaluate(values []float32) ([]float32, error) {
	if err := n.SetInputActivations(values); err != nil {
		return nil, err
	}
	n.Forward()
	return n.OutputActivations(), nil
}

// SetBias overwrites the bias of node id.
// Takes effect on the next Forward.
func (n *Network) SetBias(id NodeID, bias float32) error {
	if !n.valid(id) {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	n.nodes[id].bias = bias
	return nil
}

// SetWeight overwrites the weight of the i-th incoming connection of node id.
// Takes effect on the next Forward.
func (n *Network) SetWeight(id NodeID, i int, weight float32) error {
	if !n.valid(id) {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	conns := n.nodes[id].connections
	if i < 0 || i >= len(conns) {
		return fmt.Errorf("node %d connection %d of %d: %w", id, i, len(conns), ErrConnectionNotFound)
	}
	conns[i].Weight = weight
	return nil
}

func (n *Network) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(n.nodes)
}

// Node returns a read-only view of node id.
func (n *Network) Node(id NodeID) (*Node, error) {
	if !n.valid(id) {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return &n.nodes[id], nil
}

// Activation returns the activation applied by Forward.
func (n *Network) Activation() Activation { return n.activation }

// InputCount returns the number of input nodes.
func (n *Network) InputCount() int { return len(n.layers[0]) }

// HiddenLayerCount returns the number of hidden layers.
func (n *Network) HiddenLayerCount() int { return len(n.layers) - 2 }

// OutputCount returns the number of output nodes.
func (n *Network) OutputCount() int { return len(n.layers[len(n.layers)-1]) }

// LayerCount returns the number of layers including input and output.
func (n *Network) LayerCount() int { return len(n.layers) }

// NodeCount returns the total number of nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// ConnectionCount returns the total number of connections.
func (n *Network) ConnectionCount() int {
	total := 0
	for i := range n.nodes {
		total += len(n.nodes[i].connections)
	}
	return total
}

// Layer returns the node IDs of layer k, where 0 is the input layer and
// LayerCount()-1 the output layer. Returns nil if k is out of range.
func (n *Network) Layer(k int) []NodeID {
	if k < 0 || k >= len(n.layers) {
		return nil
	}
	out := make([]NodeID, len(n.layers[k]))
	copy(out, n.layers[k])
	return out
}

// Input returns the input layer node IDs.
func (n *Network) Input() []NodeID { return n.Layer(0) }

// Hidden returns the node IDs of hidden layer i (0-based).
// Returns nil if i is out of range.
func (n *Network) Hidden(i int) []NodeID {
	if i < 0 || i >= n.HiddenLayerCount() {
		return nil
	}
	return n.Layer(i + 1)
}

// Output returns the output layer node IDs.
func (n *Network) Output() []NodeID { return n.Layer(len(n.layers) - 1) }

// OutputActivations returns the output activations from the last Forward.
func (n *Network) OutputActivations() []float32 {
	out := n.layers[len(n.layers)-1]
	values := make([]float32, len(out))
	for i, id := range out {
		values[i] = n.nodes[id].activation
	}
	return values
}

// OutputWeightedSums returns the output weighted sums from the last Forward.
func (n *Network) OutputWeightedSums() []float32 {
	out := n.layers[len(n.layers)-1]
	values := make([]float32, len(out))
	for i, id := range out {
		values[i] = n.nodes[id].weightedSum
	}
	return values
}

// String renders the structure of the network: every layer, every node's
// bias, weighted sum and activation, and the weights of its connections.
func (n *Network) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network(%d-%dx%d-%d, activation=%s, nodes=%d, connections=%d)\n",
		n.InputCount(), n.HiddenLayerCount(), len(n.layers[1]), n.OutputCount(),
		n.activation.Name(), n.NodeCount(), n.ConnectionCount())

	for k, layer := range n.layers {
		fmt.Fprintf(&b, "  %s:\n", n.layerName(k))
		for _, id := range layer {
			node := &n.nodes[id]
			fmt.Fprintf(&b, "    node %d: bias=%.4f weighted_sum=%.4f activation=%.4f",
				id, node.bias, node.weightedSum, node.activation)
			if len(node.connections) > 0 {
				b.WriteString(" weights=[")
				for i, c := range node.connections {
					if i > 0 {
						b.WriteString(" ")
					}
					fmt.Fprintf(&b, "%d:%.4f", c.Source, c.Weight)
				}
				b.WriteString("]")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (n *Network) layerName(k int) string {
	switch k {
	case 0:
		return "input"
	case len(n.layers) - 1:
		return "output"
	default:
		return fmt.Sprintf("hidden[%d]", k-1)
	}
}
