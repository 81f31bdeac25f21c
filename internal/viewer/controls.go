package viewer

import (
	"github.com/Faultbox/terrainview/internal/engine/camera"
	"github.com/Faultbox/terrainview/internal/engine/input"
)

// action is what the render loop should do after an event.
type action int

const (
	actionNone action = iota
	actionQuit
	actionScreenshot
)

// controls maps input events to camera changes.
// Left drag pans, right drag rotates, +/- and the wheel zoom,
// x/y/z stretch one axis (shrink with Shift), R resets the view
// and P requests a screenshot.
type controls struct {
	cam          *camera.Turntable
	drag         input.Button
	lastX, lastY float32
}

func newControls(cam *camera.Turntable) *controls {
	return &controls{cam: cam}
}

// handle applies one event to the camera.
func (c *controls) handle(e input.Event) action {
	switch e.Type {
	case input.EventQuit:
		return actionQuit

	case input.EventKeyDown:
		switch e.Key {
		case input.KeyEscape, input.KeySpace:
			return actionQuit
		case input.KeyP:
			return actionScreenshot
		case input.KeyPlus:
			c.cam.ZoomIn()
		case input.KeyMinus:
			c.cam.ZoomOut()
		case input.KeyX:
			c.cam.ScaleAxis(0, !e.Shift)
		case input.KeyY:
			c.cam.ScaleAxis(1, !e.Shift)
		case input.KeyZ:
			c.cam.ScaleAxis(2, !e.Shift)
		case input.KeyR:
			c.cam.Reset()
		}

	case input.EventMouseDown:
		if c.drag == input.ButtonNone {
			c.drag = e.Button
			c.lastX, c.lastY = e.MouseX, e.MouseY
		}

	case input.EventMouseUp:
		if e.Button == c.drag {
			c.drag = input.ButtonNone
		}

	case input.EventMouseMove:
		dx, dy := e.MouseX-c.lastX, e.MouseY-c.lastY
		c.lastX, c.lastY = e.MouseX, e.MouseY
		switch c.drag {
		case input.ButtonLeft:
			c.cam.Pan(dx, dy)
		case input.ButtonRight:
			c.cam.Rotate(dx, dy)
		}

	case input.EventScroll:
		if e.Scroll > 0 {
			c.cam.ZoomIn()
		} else if e.Scroll < 0 {
			c.cam.ZoomOut()
		}
	}
	return actionNone
}
