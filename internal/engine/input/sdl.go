package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SDL polls the SDL2 event queue.
type SDL struct {
	queue
}

// NewSDL creates an SDL2 input handler. SDL must already be initialized.
func NewSDL() *SDL {
	return &SDL{queue: newQueue()}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *SDL) Update() bool {
	i.reset()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.push(Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.push(Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				i.key(keyFromScancode(e.Keysym.Scancode), true)
			case sdl.KEYUP:
				i.key(keyFromScancode(e.Keysym.Scancode), false)
			}

		case *sdl.MouseMotionEvent:
			i.push(Event{
				Type:   EventMouseMove,
				MouseX: float32(e.X),
				MouseY: float32(e.Y),
			})

		case *sdl.MouseButtonEvent:
			t := EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				t = EventMouseDown
			}
			i.push(Event{
				Type:   t,
				MouseX: float32(e.X),
				MouseY: float32(e.Y),
				Button: buttonFromSDL(e.Button),
			})

		case *sdl.MouseWheelEvent:
			i.push(Event{Type: EventScroll, Scroll: float32(e.Y)})
		}
	}

	return false
}

func keyFromScancode(sc sdl.Scancode) Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return KeyEscape
	case sdl.SCANCODE_SPACE:
		return KeySpace
	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		return KeyPlus
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		return KeyMinus
	case sdl.SCANCODE_X:
		return KeyX
	case sdl.SCANCODE_Y:
		return KeyY
	case sdl.SCANCODE_Z:
		return KeyZ
	case sdl.SCANCODE_R:
		return KeyR
	case sdl.SCANCODE_P:
		return KeyP
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		return KeyShift
	default:
		return KeyUnknown
	}
}

func buttonFromSDL(b uint8) Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return ButtonRight
	default:
		return ButtonNone
	}
}
