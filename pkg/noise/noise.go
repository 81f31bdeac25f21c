// Package noise provides deterministic 2D coherent noise sources for terrain generation.
package noise

import (
	"errors"
	"fmt"
	"math"
)

// Algorithm names accepted by New.
const (
	AlgorithmPerlin  = "perlin"
	AlgorithmSimplex = "simplex"
)

// MaxOctaves bounds the number of layers summed per sample.
const MaxOctaves = 32

var (
	ErrInvalidOctaves     = errors.New("noise: octaves must be between 1 and 32")
	ErrInvalidPersistence = errors.New("noise: persistence must be finite and greater than 0")
	ErrInvalidLacunarity  = errors.New("noise: lacunarity must be finite and greater than 0")
	ErrUnknownAlgorithm   = errors.New("noise: unknown algorithm")
)

// Source samples fractal noise at a point on the XZ plane.
// Implementations must be deterministic and defined for every finite input.
type Source interface {
	Sample(x, z float64, octaves int, persistence, lacunarity float64) (float64, error)
}

// Config describes how noise layers are summed.
type Config struct {
	Octaves     int     // Number of layers summed
	Persistence float64 // Amplitude multiplier between layers
	Lacunarity  float64 // Frequency multiplier between layers
}

// DefaultConfig returns 4 octaves, persistence 0.5 and lacunarity 2.0.
func DefaultConfig() Config {
	return Config{
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Validate reports whether the configuration can be sampled.
func (c Config) Validate() error {
	return validate(c.Octaves, c.Persistence, c.Lacunarity)
}

func validate(octaves int, persistence, lacunarity float64) error {
	if octaves < 1 || octaves > MaxOctaves {
		return fmt.Errorf("%w (got %d)", ErrInvalidOctaves, octaves)
	}
	if !isPositiveFinite(persistence) {
		return fmt.Errorf("%w (got %v)", ErrInvalidPersistence, persistence)
	}
	if !isPositiveFinite(lacunarity) {
		return fmt.Errorf("%w (got %v)", ErrInvalidLacunarity, lacunarity)
	}
	return nil
}

// New returns the named noise source seeded with seed.
func New(algorithm string, seed int64) (Source, error) {
	switch algorithm {
	case AlgorithmPerlin, "":
		return NewPerlin(seed), nil
	case AlgorithmSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// amplitudeSum returns the sum of persistence^i for i in [0, octaves).
// Fractal sums are divided by it to keep results roughly within [-1, 1].
func amplitudeSum(octaves int, persistence float64) float64 {
	sum := 0.0
	amp := 1.0
	for range octaves {
		sum += amp
		amp *= persistence
	}
	return sum
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
