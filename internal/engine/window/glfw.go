package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/heightview/internal/engine/input"
	"github.com/Faultbox/heightview/internal/logger"
)

// glfwWindow queues callback events until the next Poll.
type glfwWindow struct {
	config  Config
	window  *glfw.Window
	pending []input.Event
}

func newGLFW(cfg Config) (Window, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)

	w := &glfwWindow{
		config:  cfg,
		window:  win,
		pending: make([]input.Event, 0, 16),
	}
	w.installCallbacks()

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
		zap.Int("samples", cfg.Samples),
	)

	return w, nil
}

func (w *glfwWindow) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := glfwKey(key)
		if k == input.KeyUnknown {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			w.pending = append(w.pending, input.Event{
				Type:   input.EventKeyDown,
				Key:    k,
				Repeat: action == glfw.Repeat,
			})
		case glfw.Release:
			w.pending = append(w.pending, input.Event{
				Type: input.EventKeyUp,
				Key:  k,
			})
		}
	})

	w.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.pending = append(w.pending, input.Event{
			Type: input.EventPointerMove,
			X:    int(xpos),
			Y:    int(ypos),
		})
	})

	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending = append(w.pending, input.Event{
			Type:   input.EventWindowResize,
			Width:  width,
			Height: height,
		})
	})

	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.pending = append(w.pending, input.Event{Type: input.EventQuit})
	})
}

// Poll runs the GLFW event loop once and drains the queued events.
func (w *glfwWindow) Poll(dst []input.Event) []input.Event {
	glfw.PollEvents()
	dst = append(dst, w.pending...)
	w.pending = w.pending[:0]
	return dst
}

func glfwKey(key glfw.Key) input.Key {
	switch key {
	case glfw.KeyUp:
		return input.KeyForward
	case glfw.KeyDown:
		return input.KeyBackward
	case glfw.KeySpace:
		return input.KeyRaise
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return input.KeyLower
	case glfw.KeyEscape:
		return input.KeyExit
	case glfw.KeyF12:
		return input.KeyScreenshot
	case glfw.KeyF1:
		return input.KeyWireframe
	default:
		return input.KeyUnknown
	}
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) Size() (int, int) {
	return w.window.GetSize()
}

func (w *glfwWindow) DrawableSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) CenterCursor() {
	cx, cy := Center(w.Size())
	w.window.SetCursorPos(float64(cx), float64(cy))
}

func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendGLFW))

	if w.window != nil {
		w.window.Destroy()
	}
	glfw.Terminate()
}
