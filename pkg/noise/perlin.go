package noise

import (
	"github.com/aquilax/go-perlin"
)

// Perlin is a gradient noise source backed by go-perlin.
//
// go-perlin fixes the octave parameters at construction time, so one
// generator is built per distinct Config and reused for later samples.
// Perlin is not safe for concurrent use.
type Perlin struct {
	seed       int64
	generators map[Config]*perlin.Perlin
}

// NewPerlin creates a Perlin source. Equal seeds produce equal output.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		seed:       seed,
		generators: make(map[Config]*perlin.Perlin),
	}
}

// Sample implements Source.
func (p *Perlin) Sample(x, z float64, octaves int, persistence, lacunarity float64) (float64, error) {
	if err := validate(octaves, persistence, lacunarity); err != nil {
		return 0, err
	}

	key := Config{Octaves: octaves, Persistence: persistence, Lacunarity: lacunarity}
	gen, ok := p.generators[key]
	if !ok {
		// alpha divides each successive octave, so it is the inverse of persistence.
		gen = perlin.NewPerlin(1/persistence, lacunarity, int32(octaves), p.seed)
		p.generators[key] = gen
	}

	return gen.Noise2D(x, z) / amplitudeSum(octaves, persistence), nil
}
