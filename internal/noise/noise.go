// Package noise is the boundary to the procedural noise generator the
// surface shaders sample. A Source must be deterministic for a fixed
// input pair so shading stays reproducible.
package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Source samples 2D noise at (x, z), returning a value in roughly [-1, 1].
type Source interface {
	Sample(x, z float32) float32
}

type simplex struct {
	n opensimplex.Noise
}

// NewSimplex returns an OpenSimplex-backed source for the given seed.
func NewSimplex(seed int64) Source {
	return simplex{n: opensimplex.New(seed)}
}

func (s simplex) Sample(x, z float32) float32 {
	return float32(s.n.Eval2(float64(x), float64(z)))
}

// Flat is a constant source used by tests to make shading deterministic
// without a noise field.
type Flat float32

func (f Flat) Sample(x, z float32) float32 { return float32(f) }
