package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/terrainview/pkg/noise"
)

// NormalSpacing is the y component of every raw normal before normalization.
// It assumes unit spacing between grid samples in the central difference and
// does not follow the world-space scale.
const NormalSpacing = 2.0

// MaxGridSize is the largest size whose vertex indices all fit in a uint32.
const MaxGridSize = 65535

var (
	ErrInvalidGridSize  = errors.New("terrain: grid size must be between 2 and 65535")
	ErrInvalidScale     = errors.New("terrain: scale must be finite and greater than 0")
	ErrInvalidAmplitude = errors.New("terrain: amplitude must be finite")
)

// Generate builds a size×size grid mesh displaced by noise from src.
//
// Vertex (z, x) has index z·size + x and position (x·scale, h, z·scale) where
// h is the sampled noise times amplitude. Each interior cell contributes the
// triangles (i, i+size, i+1) and (i+1, i+size, i+size+1), so all triangles
// share the same winding.
func Generate(size int, scale, amplitude float64, src noise.Source, cfg noise.Config) (*Mesh, error) {
	if size < 2 || size > MaxGridSize {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidGridSize, size)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w (got %v)", ErrInvalidScale, scale)
	}
	if math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return nil, fmt.Errorf("%w (got %v)", ErrInvalidAmplitude, amplitude)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("noise config: %w", err)
	}

	heights, err := SampleHeightField(size, scale, amplitude, src, cfg)
	if err != nil {
		return nil, err
	}

	vertices, bounds := buildVertices(heights, scale)
	return &Mesh{
		Size:     size,
		Vertices: vertices,
		Normals:  buildNormals(heights),
		Indices:  buildIndices(size),
		Bounds:   bounds,
	}, nil
}

// buildVertices emits one position per grid cell in row-major order.
func buildVertices(h *HeightField, scale float64) ([]float32, Bounds) {
	size := h.Size()
	vertices := make([]float32, 0, size*size*3)

	bounds := Bounds{
		Min: [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}

	for z := range size {
		for x := range size {
			p := [3]float32{
				float32(float64(x) * scale),
				float32(h.At(z, x)),
				float32(float64(z) * scale),
			}
			updateBounds(&bounds, p)
			vertices = append(vertices, p[0], p[1], p[2])
		}
	}

	return vertices, bounds
}

// buildNormals estimates one normal per cell by central differences.
func buildNormals(h *HeightField) []float32 {
	size := h.Size()
	normals := make([]float32, 0, size*size*3)

	for z := range size {
		for x := range size {
			n := NormalAt(h, z, x)
			normals = append(normals, float32(n[0]), float32(n[1]), float32(n[2]))
		}
	}

	return normals
}

// NormalAt returns the unit normal at row z, column x. Neighbours outside the
// grid are clamped to the edge, giving a one-sided difference there.
func NormalAt(h *HeightField, z, x int) [3]float64 {
	sx := h.clampedAt(z, x+1) - h.clampedAt(z, x-1)
	sz := h.clampedAt(z+1, x) - h.clampedAt(z-1, x)
	return normalize([3]float64{-sx, NormalSpacing, -sz})
}

// buildIndices splits every interior cell into two triangles.
func buildIndices(size int) []uint32 {
	cells := (size - 1) * (size - 1)
	indices := make([]uint32, 0, cells*6)

	n := uint32(size)
	for z := range size - 1 {
		for x := range size - 1 {
			i := uint32(z*size + x)
			indices = append(indices,
				i, i+n, i+1,
				i+1, i+n, i+n+1,
			)
		}
	}

	return indices
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func normalize(v [3]float64) [3]float64 {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return [3]float64{0, 1, 0}
	}
	return [3]float64{v[0] / l, v[1] / l, v[2] / l}
}
