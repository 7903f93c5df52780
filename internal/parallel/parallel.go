// Package parallel splits the nodes of one layer across goroutines.
//
// Only nodes of the same layer may be evaluated together: each reads the
// previous layer and writes itself, so callers run one For per layer and
// never overlap layers.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a layer's nodes are spread over goroutines.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Upper bound on goroutines per call.
	MinChunkSize int  // Fewest nodes handed to one goroutine.
}

// DefaultConfig uses one worker per CPU and a floor of 256 nodes per worker.
//
// A node costs one multiply-add per incoming connection, so for the narrow
// layers typical here a goroutine spawn plus WaitGroup handoff costs more than
// the node work it carries. 256 keeps layers up to that width on the caller's
// goroutine and only fans out once each worker gets a few hundred nodes.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256,
	}
}

// Sequential returns a config that never spawns goroutines.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// Chunk is the half-open index range [Start, End).
type Chunk struct {
	Start, End int
}

// Chunks partitions [0, n) into contiguous ranges, one per goroutine.
//
// It returns a single range when cfg is disabled, has fewer than two
// workers, or n cannot give two workers MinChunkSize items each. Otherwise
// it uses as many workers as the floor allows, capped at NumWorkers, and
// spreads the remainder so range sizes differ by at most one.
func Chunks(n int, cfg Config) []Chunk {
	if n <= 0 {
		return nil
	}
	floor := max(cfg.MinChunkSize, 1)
	workers := min(cfg.NumWorkers, n/floor)
	if !cfg.Enabled || workers < 2 {
		return []Chunk{{0, n}}
	}

	chunks := make([]Chunk, workers)
	size, extra := n/workers, n%workers
	start := 0
	for w := range chunks {
		end := start + size
		if w < extra {
			end++
		}
		chunks[w] = Chunk{start, end}
		start = end
	}
	return chunks
}

// For executes f(i) for i in [0, n).
//
// f must only write state owned by index i. A single chunk runs in order on
// the calling goroutine.
func For(n int, f func(i int), cfg Config) {
	chunks := Chunks(n, cfg)
	if len(chunks) == 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		c := c
		go func() {
			defer wg.Done()
			for i := c.Start; i < c.End; i++ {
				f(i)
			}
		}()
	}
	wg.Wait()
}
