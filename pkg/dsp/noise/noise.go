// Package noise provides the uniform white-noise source behind the
// generator's output stage.
package noise

import (
	"math/rand"
)

// Generator produces white noise uniformly distributed in [-1, 1].
//
// It owns its random source, so generating a block takes no lock and no
// allocation; it is safe to call from the real-time thread. Channels are
// filled independently, with no stereo correlation.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator creates a noise generator with a random seed.
func NewGenerator() *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(rand.Int63())),
	}
}

// NewGeneratorWithSeed creates a reproducible generator for tests.
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Next generates the next sample in [-1, 1].
func (g *Generator) Next() float32 {
	return float32(g.rand.Float64()*2.0 - 1.0)
}

// Generate fills a single channel buffer with scaled noise.
func (g *Generator) Generate(buffer []float32, gain float32) {
	for i := range buffer {
		buffer[i] = g.Next() * gain
	}
}

// Fill writes independent scaled noise to every channel of an output block.
func (g *Generator) Fill(output [][]float32, gain float32) {
	for ch := range output {
		g.Generate(output[ch], gain)
	}
}
