package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the network built by the program.
type Config struct {
	Inputs       int       `yaml:"inputs"`
	HiddenLayers int       `yaml:"hidden_layers"`
	HiddenNodes  int       `yaml:"hidden_nodes"`
	Outputs      int       `yaml:"outputs"`
	Activation   string    `yaml:"activation"`
	Seed         *int64    `yaml:"seed"` // nil: time-seeded
	InputValues  []float32 `yaml:"input_values"`
}

// DefaultConfig returns an 8-2x2-2 sigmoid network with zero inputs.
func DefaultConfig() Config {
	return Config{
		Inputs:       8,
		HiddenLayers: 2,
		HiddenNodes:  2,
		Outputs:      2,
		Activation:   "sigmoid",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
