package nn

// NodeID is the stable index of a node in its network's node arena.
type NodeID int

// Connection is a weighted edge from a source node into the node that owns it.
//
// Source is an index into the owning network's arena, so a connection never
// owns the source node; the node stays reachable from its layer.
type Connection struct {
	Source NodeID
	Weight float32
}

// Node is a single computational unit.
//
// Input nodes carry no connections; their activation is set from outside the
// network. Every other node recomputes its weighted sum and activation on each
// forward pass.
type Node struct {
	bias        float32
	weightedSum float32
	activation  float32
	connections []Connection
}

// newNode returns a node with a bias drawn uniformly from [-1, 1).
func newNode(r Rand) Node {
	return Node{bias: Uniform(r)}
}

// addConnection appends an edge from source with a weight drawn from [-1, 1).
//
// No cycle check is done; callers wire strictly in layer order.
func (n *Node) addConnection(source NodeID, r Rand) {
	n.connections = append(n.connections, Connection{Source: source, Weight: Uniform(r)})
}

// calculateWeightedSum sets weightedSum = bias + Σ weight·activation over the
// currently stored activations of the sources in arena. It does not touch
// activation.
func (n *Node) calculateWeightedSum(arena []Node) {
	var sum float32
	for _, c := range n.connections {
		sum += c.Weight * arena[c.Source].activation
	}
	n.weightedSum = sum + n.bias
}

// Bias returns the node bias.
func (n *Node) Bias() float32 { return n.bias }

// WeightedSum returns the weighted sum from the last forward pass.
func (n *Node) WeightedSum() float32 { return n.weightedSum }

// Activation returns the current activation value.
func (n *Node) Activation() float32 { return n.activation }

// NumConnections returns the number of incoming connections.
func (n *Node) NumConnections() int { return len(n.connections) }

// Connections returns a copy of the incoming connections in wiring order.
func (n *Node) Connections() []Connection {
	out := make([]Connection, len(n.connections))
	copy(out, n.connections)
	return out
}
