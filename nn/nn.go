// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/perceptron/internal/nn"
	"github.com/born-ml/perceptron/internal/parallel"
)

// Network is a fully connected feed-forward network.
type Network = nn.Network

// Node is a read-only view of a network node.
type Node = nn.Node

// NodeID identifies a node within its network.
type NodeID = nn.NodeID

// Connection is a weighted edge from a source node.
type Connection = nn.Connection

// New builds a network with the given dimensions and runs one forward pass.
//
// Example:
//
//	net, err := nn.New(2, 1, 2, 1, nn.WithSeed(42))
func New(inputCount, hiddenLayerCount, hiddenNodesPerLayer, outputCount int, opts ...Option) (*Network, error) {
	return nn.New(inputCount, hiddenLayerCount, hiddenNodesPerLayer, outputCount, opts...)
}

// Options

// Option configures a Network.
type Option = nn.Option

// Rand is the random source used for biases and weights.
type Rand = nn.Rand

// ParallelConfig controls intra-layer parallel evaluation.
type ParallelConfig = parallel.Config

// WithActivation sets the activation of every non-input node.
func WithActivation(a Activation) Option { return nn.WithActivation(a) }

// WithRand sets the random source.
func WithRand(r Rand) Option { return nn.WithRand(r) }

// WithSeed gives each New call a fresh math/rand source seeded with seed.
func WithSeed(seed int64) Option { return nn.WithSeed(seed) }

// WithParallel sets how nodes within a layer are evaluated.
//
// Example:
//
//	net, _ := nn.New(64, 4, 1024, 10, nn.WithParallel(nn.DefaultParallelConfig()))
func WithParallel(cfg ParallelConfig) Option { return nn.WithParallel(cfg) }

// DefaultParallelConfig returns the CPU-count based default.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// SequentialConfig disables intra-layer parallelism.
func SequentialConfig() ParallelConfig { return parallel.Sequential() }

// NewRand returns a seeded math/rand source.
func NewRand(seed int64) Rand { return nn.NewRand(seed) }

// Activations

// Activation is a pluggable transform applied to weighted sums.
type Activation = nn.Activation

// Sigmoid is the logistic activation 1 / (1 + exp(-x)).
type Sigmoid = nn.Sigmoid

// ReLU is max(0, x).
type ReLU = nn.ReLU

// Identity passes weighted sums through.
type Identity = nn.Identity

// ActivationByName resolves "sigmoid", "relu" or "identity".
func ActivationByName(name string) (Activation, error) { return nn.ActivationByName(name) }

// Errors

// Errors returned by the package; test with errors.Is.
var (
	ErrInvalidConfiguration = nn.ErrInvalidConfiguration
	ErrInvalidInputSize     = nn.ErrInvalidInputSize
	ErrNodeNotFound         = nn.ErrNodeNotFound
	ErrConnectionNotFound   = nn.ErrConnectionNotFound
)
