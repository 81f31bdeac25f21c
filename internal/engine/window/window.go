// Package window handles window and OpenGL context creation over SDL2 or GLFW.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Faultbox/terrainview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backends accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown window backend")

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string // BackendSDL when empty
}

// Window is an OS window owning a current OpenGL 4.1 core context.
type Window interface {
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// Size returns the drawable size in pixels.
	Size() (int, int)
	SetTitle(title string)
	// Input returns the event poller bound to this window.
	Input() input.Poller
	Close()
}

// New creates a window with the backend named in cfg.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		return NewSDL(cfg)
	case BackendGLFW:
		return NewGLFW(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
