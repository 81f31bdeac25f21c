package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Simplex is an OpenSimplex noise source with fractal Brownian motion
// summed over octaves.
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex creates a Simplex source. Equal seeds produce equal output.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

// Sample implements Source.
func (s *Simplex) Sample(x, z float64, octaves int, persistence, lacunarity float64) (float64, error) {
	if err := validate(octaves, persistence, lacunarity); err != nil {
		return 0, err
	}

	var total float64
	frequency := 1.0
	amplitude := 1.0
	for range octaves {
		total += s.noise.Eval2(x*frequency, z*frequency) * amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / amplitudeSum(octaves, persistence), nil
}
