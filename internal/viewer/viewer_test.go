package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrainview/internal/config"
	"github.com/Faultbox/terrainview/internal/engine/camera"
	"github.com/Faultbox/terrainview/internal/engine/input"
)

func approx(a, b float32) bool {
	return mgl32.Abs(a-b) < 1e-5
}

func newTestControls() (*controls, *camera.Turntable) {
	cam := camera.NewTurntable(CameraSettings(config.Default().Camera))
	return newControls(cam), cam
}

func TestControlsActions(t *testing.T) {
	tests := []struct {
		name  string
		event input.Event
		want  action
	}{
		{"escape", input.Event{Type: input.EventKeyDown, Key: input.KeyEscape}, actionQuit},
		{"space", input.Event{Type: input.EventKeyDown, Key: input.KeySpace}, actionQuit},
		{"quit event", input.Event{Type: input.EventQuit}, actionQuit},
		{"escape released", input.Event{Type: input.EventKeyUp, Key: input.KeyEscape}, actionNone},
		{"zoom key", input.Event{Type: input.EventKeyDown, Key: input.KeyPlus}, actionNone},
		{"screenshot", input.Event{Type: input.EventKeyDown, Key: input.KeyP}, actionScreenshot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestControls()
			if got := c.handle(tt.event); got != tt.want {
				t.Errorf("handle(%+v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestControlsScaleKeys(t *testing.T) {
	c, cam := newTestControls()
	step := config.Default().Camera.ZoomStep

	c.handle(input.Event{Type: input.EventKeyDown, Key: input.KeyPlus})
	if !approx(cam.Scale[0], step) {
		t.Errorf("after + scale = %v, want %v", cam.Scale, step)
	}
	c.handle(input.Event{Type: input.EventKeyDown, Key: input.KeyMinus})
	if !cam.Scale.ApproxEqualThreshold(mgl32.Vec3{1, 1, 1}, 1e-5) {
		t.Errorf("after + then - scale = %v, want unit", cam.Scale)
	}

	c.handle(input.Event{Type: input.EventKeyDown, Key: input.KeyY})
	c.handle(input.Event{Type: input.EventKeyDown, Key: input.KeyZ, Shift: true})
	if !approx(cam.Scale[1], step) || !approx(cam.Scale[2], 1/step) {
		t.Errorf("after y and Z scale = %v", cam.Scale)
	}

	c.handle(input.Event{Type: input.EventKeyDown, Key: input.KeyR})
	if cam.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("R should reset scale, got %v", cam.Scale)
	}
}

func TestControlsDrag(t *testing.T) {
	c, cam := newTestControls()
	settings := CameraSettings(config.Default().Camera)

	// Moving without a button held does nothing
	c.handle(input.Event{Type: input.EventMouseMove, MouseX: 10, MouseY: 10})
	if cam.Offset != settings.Offset {
		t.Fatalf("hover moved the camera: %v", cam.Offset)
	}

	// Left drag pans
	c.handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft, MouseX: 10, MouseY: 10})
	c.handle(input.Event{Type: input.EventMouseMove, MouseX: 30, MouseY: 0})
	wantX := settings.Offset[0] + 20*settings.PanSensitivity
	wantY := settings.Offset[1] + 10*settings.PanSensitivity
	if !approx(cam.Offset[0], wantX) || !approx(cam.Offset[1], wantY) {
		t.Errorf("after left drag offset = %v, want (%v, %v)", cam.Offset, wantX, wantY)
	}

	// A second button does not steal the drag
	c.handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonRight, MouseX: 30, MouseY: 0})
	c.handle(input.Event{Type: input.EventMouseUp, Button: input.ButtonRight})
	if c.drag != input.ButtonLeft {
		t.Errorf("drag = %v, want left", c.drag)
	}
	c.handle(input.Event{Type: input.EventMouseUp, Button: input.ButtonLeft})

	// Right drag rotates
	pitch := cam.Pitch
	c.handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonRight, MouseX: 0, MouseY: 0})
	c.handle(input.Event{Type: input.EventMouseMove, MouseX: 0, MouseY: 10})
	wantPitch := pitch - 10*settings.RotateSensitivity
	if !approx(cam.Pitch, wantPitch) {
		t.Errorf("after right drag pitch = %v, want %v", cam.Pitch, wantPitch)
	}
	c.handle(input.Event{Type: input.EventMouseUp, Button: input.ButtonRight})
	if c.drag != input.ButtonNone {
		t.Errorf("drag should end on release, got %v", c.drag)
	}
}

func TestControlsScroll(t *testing.T) {
	c, cam := newTestControls()
	c.handle(input.Event{Type: input.EventScroll, Scroll: 1})
	c.handle(input.Event{Type: input.EventScroll, Scroll: 1})
	c.handle(input.Event{Type: input.EventScroll, Scroll: -1})
	c.handle(input.Event{Type: input.EventScroll, Scroll: 0})

	step := config.Default().Camera.ZoomStep
	if !approx(cam.Scale[0], step) {
		t.Errorf("scale after scrolling = %v, want %v", cam.Scale[0], step)
	}
}

func TestWindowConfig(t *testing.T) {
	g := config.Default().Graphics
	g.Backend = config.BackendGLFW
	g.Fullscreen = true

	w := WindowConfig(g)
	if w.Title != g.Title || w.Width != 800 || w.Height != 600 {
		t.Errorf("unexpected window config %+v", w)
	}
	if !w.Fullscreen || !w.VSync || w.Backend != "glfw" {
		t.Errorf("flags not carried over: %+v", w)
	}
}

func TestCameraSettingsReproduceReferenceView(t *testing.T) {
	s := CameraSettings(config.Default().Camera)
	if s.Offset != (mgl32.Vec3{-5, -5, -30}) {
		t.Errorf("offset = %v, want (-5, -5, -30)", s.Offset)
	}
	if s.PitchDeg != 30 || s.YawStepDeg != 0.2 || s.FOVDeg != 45 {
		t.Errorf("unexpected camera settings %+v", s)
	}
	if s.Near != 0.1 || s.Far != 100 {
		t.Errorf("clip planes = %v..%v, want 0.1..100", s.Near, s.Far)
	}
}
