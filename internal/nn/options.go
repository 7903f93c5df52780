package nn

import "github.com/born-ml/perceptron/internal/parallel"

// Option configures a Network at construction.
type Option func(*options)

type options struct {
	activation Activation
	rng        Rand
	seed       *int64
	parallel   parallel.Config
}

func defaultOptions() *options {
	return &options{
		activation: Sigmoid{},
		parallel:   parallel.DefaultConfig(),
	}
}

// WithActivation sets the activation applied to every non-input node.
// Defaults to Sigmoid.
func WithActivation(a Activation) Option {
	return func(o *options) {
		if a != nil {
			o.activation = a
		}
	}
}

// WithRand sets the random source for biases and weights.
// Defaults to a time-seeded math/rand source private to the network.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rng = r
		o.seed = nil
	}
}

// WithSeed gives every New call it is passed to a fresh math/rand source
// seeded with seed, so one option value always yields the same parameters.
// The later of WithSeed and WithRand wins.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = nil
		o.seed = &seed
	}
}

// source returns the random source for one construction.
func (o *options) source() Rand {
	switch {
	case o.seed != nil:
		return NewRand(*o.seed)
	case o.rng != nil:
		return o.rng
	default:
		return defaultRand()
	}
}

// WithParallel sets how nodes within one layer are evaluated.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}
