package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFW collects events delivered through GLFW window callbacks.
type GLFW struct {
	queue
	window *glfw.Window
}

// NewGLFW installs input callbacks on the window.
func NewGLFW(w *glfw.Window) *GLFW {
	i := &GLFW{queue: newQueue(), window: w}

	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		i.push(Event{Type: EventWindowResize, Width: width, Height: height})
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press, glfw.Repeat:
			i.key(keyFromGLFW(key), true)
		case glfw.Release:
			i.key(keyFromGLFW(key), false)
		}
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		i.push(Event{Type: EventMouseMove, MouseX: float32(x), MouseY: float32(y)})
	})
	w.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		t := EventMouseUp
		if action == glfw.Press {
			t = EventMouseDown
		}
		i.push(Event{Type: t, Button: buttonFromGLFW(button), MouseX: float32(x), MouseY: float32(y)})
	})
	w.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		i.push(Event{Type: EventScroll, Scroll: float32(yoff)})
	})

	return i
}

// Update polls GLFW events. Returns true once the window was asked to close.
func (i *GLFW) Update() bool {
	i.reset()
	glfw.PollEvents()

	if i.window.ShouldClose() {
		i.push(Event{Type: EventQuit})
		return true
	}
	return false
}

func keyFromGLFW(k glfw.Key) Key {
	switch k {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeySpace:
		return KeySpace
	case glfw.KeyEqual, glfw.KeyKPAdd:
		return KeyPlus
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		return KeyMinus
	case glfw.KeyX:
		return KeyX
	case glfw.KeyY:
		return KeyY
	case glfw.KeyZ:
		return KeyZ
	case glfw.KeyR:
		return KeyR
	case glfw.KeyP:
		return KeyP
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return KeyShift
	default:
		return KeyUnknown
	}
}

func buttonFromGLFW(b glfw.MouseButton) Button {
	switch b {
	case glfw.MouseButtonLeft:
		return ButtonLeft
	case glfw.MouseButtonMiddle:
		return ButtonMiddle
	case glfw.MouseButtonRight:
		return ButtonRight
	default:
		return ButtonNone
	}
}
