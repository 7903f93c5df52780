// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn builds fully connected feed-forward networks and evaluates them.
//
// # Overview
//
// A Network is an input layer, one or more hidden layers of equal width, and
// an output layer. Every node of a layer has one weighted connection from
// every node of the previous layer. Biases and weights start uniform in
// [-1, 1).
//
// # Basic Usage
//
//	import "github.com/born-ml/perceptron/nn"
//
//	func main() {
//	    net, err := nn.New(8, 2, 2, 2, nn.WithSeed(1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.Evaluate([]float32{1, 0, 0, 1, 0, 1, 1, 0})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(out)
//	}
//
// # Activations
//
// Sigmoid (default), ReLU and Identity are provided; any type implementing
// Activation can be passed with WithActivation:
//
//	net, _ := nn.New(2, 1, 4, 1, nn.WithActivation(nn.ReLU{}))
//
// # Determinism
//
// Randomness comes only from the source given with WithRand or WithSeed.
// Equal seeds and dimensions give identical parameters.
//
// # Inspection
//
// LayerWeights, LayerBiases and LayerActivations expose a layer as gonum
// matrices and vectors.
package nn
