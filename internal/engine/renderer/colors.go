package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrainview/internal/engine/terrain"
)

// Height ramp stops: lowland green, mid brown, peak white.
var (
	colorLow  = mgl32.Vec3{0.1, 0.5, 0.1}
	colorMid  = mgl32.Vec3{0.6, 0.3, 0.1}
	colorHigh = mgl32.Vec3{1.0, 1.0, 1.0}
)

// rampColor maps a normalized height t in [0, 1] to a colour.
func rampColor(t float32) mgl32.Vec3 {
	t = mgl32.Clamp(t, 0, 1)
	if t < 0.5 {
		return lerp(colorLow, colorMid, t*2)
	}
	return lerp(colorMid, colorHigh, (t-0.5)*2)
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// HeightColors returns one RGB triple per vertex, ramped between the
// lowest and highest vertex of the mesh. A flat mesh is coloured as lowland.
func HeightColors(m *terrain.Mesh) []float32 {
	minY := m.Bounds.Min[1]
	span := m.Bounds.Height()

	colors := make([]float32, len(m.Vertices))
	for i := range m.VertexCount() {
		var t float32
		if span > 0 {
			t = (m.Vertices[i*3+1] - minY) / span
		}
		c := rampColor(t)
		copy(colors[i*3:i*3+3], c[:])
	}
	return colors
}
