// Package camera provides the turntable camera used to view the terrain.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in degrees.
const (
	MinPitch = -90
	MaxPitch = 90
)

// Settings configures a Turntable.
type Settings struct {
	FOVDeg            float32
	Near              float32
	Far               float32
	Offset            mgl32.Vec3
	PitchDeg          float32
	YawStepDeg        float32
	PanSensitivity    float32
	RotateSensitivity float32
	ZoomStep          float32
}

// Turntable looks at the scene from a fixed offset and pitch while the
// model spins around the Y axis by YawStep degrees every frame.
//
// The model-view matrix is translate(Offset) · rotateX(Pitch) · rotateY(Yaw) · scale(Scale).
type Turntable struct {
	Offset mgl32.Vec3
	Pitch  float32 // Degrees
	Yaw    float32 // Degrees, wrapped to [0, 360)
	Scale  mgl32.Vec3

	settings Settings
}

// NewTurntable creates a camera in its initial pose.
func NewTurntable(s Settings) *Turntable {
	c := &Turntable{settings: s}
	c.Reset()
	return c
}

// Reset restores the initial offset, pitch, yaw and scale.
func (c *Turntable) Reset() {
	c.Offset = c.settings.Offset
	c.Pitch = c.settings.PitchDeg
	c.Yaw = 0
	c.Scale = mgl32.Vec3{1, 1, 1}
}

// Advance adds one frame's yaw step.
func (c *Turntable) Advance() {
	c.Yaw = wrapDegrees(c.Yaw + c.settings.YawStepDeg)
}

// Pan moves the scene by a mouse drag delta in pixels.
// Screen Y grows downwards, so dragging down lowers the scene.
func (c *Turntable) Pan(dx, dy float32) {
	c.Offset[0] += dx * c.settings.PanSensitivity
	c.Offset[1] -= dy * c.settings.PanSensitivity
}

// Rotate changes yaw and pitch by a mouse drag delta in pixels.
func (c *Turntable) Rotate(dx, dy float32) {
	c.Yaw = wrapDegrees(c.Yaw - dx*c.settings.RotateSensitivity)
	c.Pitch = mgl32.Clamp(c.Pitch-dy*c.settings.RotateSensitivity, MinPitch, MaxPitch)
}

// ZoomIn scales the scene up by ZoomStep on every axis.
func (c *Turntable) ZoomIn() {
	c.Scale = c.Scale.Mul(c.settings.ZoomStep)
}

// ZoomOut scales the scene down by ZoomStep on every axis.
func (c *Turntable) ZoomOut() {
	c.Scale = c.Scale.Mul(1 / c.settings.ZoomStep)
}

// ScaleAxis stretches (grow) or shrinks a single axis (0=X, 1=Y, 2=Z).
func (c *Turntable) ScaleAxis(axis int, grow bool) {
	if axis < 0 || axis > 2 {
		return
	}
	if grow {
		c.Scale[axis] *= c.settings.ZoomStep
	} else {
		c.Scale[axis] /= c.settings.ZoomStep
	}
}

// View returns the model-view matrix.
func (c *Turntable) View() mgl32.Mat4 {
	return mgl32.Translate3D(c.Offset[0], c.Offset[1], c.Offset[2]).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.Pitch))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Yaw))).
		Mul4(mgl32.Scale3D(c.Scale[0], c.Scale[1], c.Scale[2]))
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *Turntable) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.settings.FOVDeg), aspect, c.settings.Near, c.settings.Far)
}

// MVP returns projection · view.
func (c *Turntable) MVP(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

func wrapDegrees(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	return w
}
