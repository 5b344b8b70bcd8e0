// Package noise provides the seeded procedural noise source consumed by
// the material shaders.
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// DefaultSeed is the seed used by Default. A fixed seed keeps every
// frame reproducible.
const DefaultSeed int64 = 1337

// defaultFrequency scales input coordinates before sampling. Keeping it
// well below 1 leaves features coarse at world scale, so the large zoom
// factors used by the material shaders stay meaningful.
const defaultFrequency = 0.01

// Source is a deterministic noise generator: identical coordinates and
// seed always produce the identical sample. One Source is meant to live
// for the whole process and be shared by reference through Uniforms.
type Source struct {
	gen  opensimplex.Noise
	freq float64
}

// New creates a Source with the given seed.
func New(seed int64) *Source {
	return &Source{
		gen:  opensimplex.New(seed),
		freq: defaultFrequency,
	}
}

// Default creates a Source seeded with DefaultSeed.
func Default() *Source {
	return New(DefaultSeed)
}

// Eval2 samples 2D noise at (x, y). The result is in [-1, 1].
func (s *Source) Eval2(x, y float64) float64 {
	return s.gen.Eval2(x*s.freq, y*s.freq)
}

// Eval3 samples 3D noise at (x, y, z). The result is in [-1, 1].
func (s *Source) Eval3(x, y, z float64) float64 {
	return s.gen.Eval3(x*s.freq, y*s.freq, z*s.freq)
}
