// Package window creates the OpenGL window and translates native input.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/heightview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend    string
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Samples    int // MSAA samples, 0 disables multisampling
}

// Window is an OpenGL 4.1 core window that also serves as the input source.
type Window interface {
	input.Source

	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// Size returns the window size in screen coordinates.
	Size() (int, int)
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	// CenterCursor warps the pointer to the window centre.
	CenterCursor()
	SetTitle(title string)
	Close()
}

// New opens a window using the configured backend.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}

// Center returns the centre of a w × h window.
func Center(w, h int) (int, int) {
	return w / 2, h / 2
}
