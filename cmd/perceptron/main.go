// Package main builds one feed-forward network, runs a forward pass and
// prints its structure.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/perceptron/nn"
)

const version = "v0.1.0"

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file")
		seed        = flag.Int64("seed", 0, "random seed (overrides config)")
		activation  = flag.String("activation", "", "sigmoid, relu or identity (overrides config)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("perceptron %s\n", version)
		return
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "activation":
			cfg.Activation = *activation
		}
	})

	net, err := build(cfg)
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}

	fmt.Fprint(os.Stdout, net)
	fmt.Printf("outputs: %v\n", net.OutputActivations())
}

func build(cfg Config) (*nn.Network, error) {
	act, err := nn.ActivationByName(cfg.Activation)
	if err != nil {
		return nil, err
	}

	opts := []nn.Option{nn.WithActivation(act)}
	if cfg.Seed != nil {
		opts = append(opts, nn.WithSeed(*cfg.Seed))
	}

	net, err := nn.New(cfg.Inputs, cfg.HiddenLayers, cfg.HiddenNodes, cfg.Outputs, opts...)
	if err != nil {
		return nil, err
	}

	if len(cfg.InputValues) > 0 {
		if _, err := net.Evaluate(cfg.InputValues); err != nil {
			return nil, err
		}
	}
	return net, nil
}
