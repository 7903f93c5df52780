package nn

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Activation is a pluggable nonlinear transform applied to a node's weighted sum.
//
// Activate and Derivative are pure and total over all finite float32 inputs.
// Derivative is evaluated at the weighted sum (pre-activation), not at the
// activation value.
type Activation interface {
	// Activate maps a weighted sum to an activation value.
	Activate(x float32) float32

	// Derivative returns d(Activate)/dx at x.
	Derivative(x float32) float32

	// Name returns the lowercase identifier used by ActivationByName.
	Name() string
}

// Sigmoid is the logistic activation.
//
// Applies σ(x) = 1 / (1 + exp(-x)).
//
// The negative branch is evaluated as exp(x) / (1 + exp(x)) so that exp never
// overflows float32 for large |x|; results saturate to 0 and 1 instead of
// producing NaN.
type Sigmoid struct{}

// Activate applies σ(x).
func (Sigmoid) Activate(x float32) float32 {
	if x >= 0 {
		return 1 / (1 + math32.Exp(-x))
	}
	e := math32.Exp(x)
	return e / (1 + e)
}

// Derivative returns σ(x)·(1-σ(x)).
func (s Sigmoid) Derivative(x float32) float32 {
	a := s.Activate(x)
	return a * (1 - a)
}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// ReLU is the rectified linear activation: f(x) = max(0, x).
type ReLU struct{}

// Activate applies max(0, x).
func (ReLU) Activate(x float32) float32 {
	return math32.Max(0, x)
}

// Derivative returns 1 for x > 0 and 0 otherwise (including x == 0).
func (ReLU) Derivative(x float32) float32 {
	if x > 0 {
		return 1
	}
	return 0
}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Identity passes the weighted sum through unchanged.
type Identity struct{}

// Activate returns x.
func (Identity) Activate(x float32) float32 { return x }

// Derivative returns 1.
func (Identity) Derivative(float32) float32 { return 1 }

// Name returns "identity".
func (Identity) Name() string { return "identity" }

// ActivationByName resolves an activation from its Name (case-insensitive).
func ActivationByName(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sigmoid":
		return Sigmoid{}, nil
	case "relu":
		return ReLU{}, nil
	case "identity", "linear":
		return Identity{}, nil
	default:
		return nil, fmt.Errorf("unknown activation %q: %w", name, ErrInvalidConfiguration)
	}
}
