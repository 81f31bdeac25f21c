package terrain

import (
	"fmt"

	"github.com/Faultbox/terrainview/pkg/noise"
)

// HeightField is an N×N grid of terrain heights indexed by (row z, column x).
type HeightField struct {
	size    int
	heights []float64
}

// SampleHeightField samples src at every grid cell (x·scale, z·scale) and
// multiplies the result by amplitude. Rows are filled z-major, matching the
// vertex order of the mesh.
func SampleHeightField(size int, scale, amplitude float64, src noise.Source, cfg noise.Config) (*HeightField, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidGridSize, size)
	}

	h := &HeightField{
		size:    size,
		heights: make([]float64, size*size),
	}

	for z := range size {
		for x := range size {
			v, err := src.Sample(float64(x)*scale, float64(z)*scale, cfg.Octaves, cfg.Persistence, cfg.Lacunarity)
			if err != nil {
				return nil, fmt.Errorf("sampling noise at cell (%d, %d): %w", z, x, err)
			}
			h.heights[z*size+x] = v * amplitude
		}
	}

	return h, nil
}

// Size returns the grid dimension N.
func (h *HeightField) Size() int {
	return h.size
}

// At returns the height at row z, column x. Both must be in [0, N).
func (h *HeightField) At(z, x int) float64 {
	return h.heights[z*h.size+x]
}

// clampedAt returns the height with z and x clamped to the grid.
func (h *HeightField) clampedAt(z, x int) float64 {
	return h.At(clampIndex(z, h.size), clampIndex(x, h.size))
}

func clampIndex(i, size int) int {
	if i < 0 {
		return 0
	}
	if i > size-1 {
		return size - 1
	}
	return i
}
