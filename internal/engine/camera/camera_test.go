package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testSettings() Settings {
	return Settings{
		FOVDeg:            45,
		Near:              0.1,
		Far:               100,
		Offset:            mgl32.Vec3{-5, -5, -30},
		PitchDeg:          30,
		YawStepDeg:        0.2,
		PanSensitivity:    0.5,
		RotateSensitivity: 0.25,
		ZoomStep:          2,
	}
}

func approx(a, b float32) bool {
	return mgl32.Abs(a-b) < 1e-4
}

func TestNewTurntable(t *testing.T) {
	c := NewTurntable(testSettings())
	if c.Offset != (mgl32.Vec3{-5, -5, -30}) {
		t.Errorf("expected offset (-5, -5, -30), got %v", c.Offset)
	}
	if c.Pitch != 30 {
		t.Errorf("expected pitch 30, got %f", c.Pitch)
	}
	if c.Yaw != 0 {
		t.Errorf("expected yaw 0, got %f", c.Yaw)
	}
	if c.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("expected unit scale, got %v", c.Scale)
	}
}

func TestAdvanceAccumulatesYaw(t *testing.T) {
	c := NewTurntable(testSettings())
	for range 5 {
		c.Advance()
	}
	if !approx(c.Yaw, 1.0) {
		t.Errorf("expected yaw 1.0 after 5 frames, got %f", c.Yaw)
	}

	c.Yaw = 359.9
	c.Advance()
	if !approx(c.Yaw, 0.1) {
		t.Errorf("expected yaw to wrap to 0.1, got %f", c.Yaw)
	}
}

func TestViewAtRestIsTranslation(t *testing.T) {
	s := testSettings()
	s.PitchDeg = 0
	c := NewTurntable(s)

	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !approx(p[0], -5) || !approx(p[1], -5) || !approx(p[2], -30) {
		t.Errorf("origin maps to %v, want (-5, -5, -30)", p)
	}
}

func TestViewCompositionOrder(t *testing.T) {
	// translate · rotateX · rotateY: yaw is applied to the model first.
	s := testSettings()
	s.Offset = mgl32.Vec3{0, 0, -30}
	s.PitchDeg = 90
	c := NewTurntable(s)
	c.Yaw = 90

	p := c.View().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !approx(p[0], 0) || !approx(p[1], 1) || !approx(p[2], -30) {
		t.Errorf("(1, 0, 0) maps to %v, want (0, 1, -30)", p)
	}
}

func TestPanAndRotate(t *testing.T) {
	c := NewTurntable(testSettings())

	c.Pan(4, 2)
	if !approx(c.Offset[0], -3) || !approx(c.Offset[1], -6) {
		t.Errorf("after pan offset = %v, want (-3, -6, -30)", c.Offset)
	}

	c.Rotate(40, 20)
	if !approx(c.Yaw, 350) {
		t.Errorf("after rotate yaw = %f, want 350", c.Yaw)
	}
	if !approx(c.Pitch, 25) {
		t.Errorf("after rotate pitch = %f, want 25", c.Pitch)
	}

	c.Rotate(0, -1000)
	if c.Pitch != MaxPitch {
		t.Errorf("pitch should clamp to %d, got %f", MaxPitch, c.Pitch)
	}
}

func TestZoomAndScaleAxis(t *testing.T) {
	c := NewTurntable(testSettings())

	c.ZoomIn()
	if c.Scale != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("after zoom in scale = %v", c.Scale)
	}
	c.ZoomOut()
	c.ZoomOut()
	if c.Scale != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("after zoom out scale = %v", c.Scale)
	}

	c.ScaleAxis(1, true)
	c.ScaleAxis(2, false)
	c.ScaleAxis(7, true)
	if c.Scale != (mgl32.Vec3{0.5, 1, 0.25}) {
		t.Errorf("after per-axis scale = %v", c.Scale)
	}

	c.Reset()
	if c.Scale != (mgl32.Vec3{1, 1, 1}) || c.Offset != testSettings().Offset {
		t.Errorf("reset did not restore the initial pose: %+v", c)
	}
}

func TestMVP(t *testing.T) {
	c := NewTurntable(testSettings())
	c.Advance()

	aspect := float32(800) / 600
	want := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100).Mul4(c.View())
	if !c.MVP(aspect).ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("MVP = %v, want %v", c.MVP(aspect), want)
	}
	if c.Projection(aspect)[11] != -1 {
		t.Errorf("perspective [11] should be -1, got %f", c.Projection(aspect)[11])
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := map[float32]float32{
		0:    0,
		360:  0,
		370:  10,
		-10:  350,
		-370: 350,
	}
	for in, want := range tests {
		if got := wrapDegrees(in); !approx(got, want) {
			t.Errorf("wrapDegrees(%f) = %f, want %f", in, got, want)
		}
	}
}
