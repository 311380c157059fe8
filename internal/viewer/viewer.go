// Package viewer wires the heightmap, mesh, camera and window into the frame loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heightview/internal/config"
	"github.com/Faultbox/heightview/internal/engine/camera"
	"github.com/Faultbox/heightview/internal/engine/debug"
	"github.com/Faultbox/heightview/internal/engine/input"
	"github.com/Faultbox/heightview/internal/engine/renderer"
	"github.com/Faultbox/heightview/internal/engine/terrain"
	"github.com/Faultbox/heightview/internal/engine/window"
	"github.com/Faultbox/heightview/internal/logger"
)

const title = "heightview"

// Viewer owns every resource of a viewing session.
type Viewer struct {
	cfg     *config.Config
	running bool

	heightmap *terrain.Heightmap
	mesh      *terrain.Mesh
	camera    *camera.Camera

	window      window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	screenshots *debug.ScreenshotCapture
}

// New loads the heightmap, builds the mesh and opens the window.
// Any failure is returned before the first frame.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:         cfg,
		camera:      newCamera(cfg.Camera),
		screenshots: debug.NewScreenshotCapture(cfg.Screenshots.Dir, cfg.Screenshots.Prefix),
	}

	var err error
	v.heightmap, err = terrain.LoadHeightmap(cfg.Terrain.Heightmap, cfg.Terrain.ElevationScale)
	if err != nil {
		return nil, err
	}
	logger.Info("heightmap loaded",
		zap.String("path", cfg.Terrain.Heightmap),
		zap.Int("width", v.heightmap.Width()),
		zap.Int("height", v.heightmap.Height()),
	)

	start := time.Now()
	v.mesh = terrain.BuildGrid(cfg.Terrain.GridX, cfg.Terrain.GridY, v.heightmap)
	bounds := v.mesh.Bounds()
	logger.Info("terrain mesh built",
		zap.Int("grid_x", cfg.Terrain.GridX),
		zap.Int("grid_y", cfg.Terrain.GridY),
		zap.Int("vertices", len(v.mesh.Vertices)),
		zap.Int("drawn", v.mesh.DrawCount()),
		zap.Float32("min_z", bounds.MinZ),
		zap.Float32("max_z", bounds.MaxZ),
		zap.Duration("took", time.Since(start)),
	)

	v.window, err = window.New(window.Config{
		Backend:    cfg.Window.Backend,
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: [4]float32{0.53, 0.71, 0.88, 1},
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := v.renderer.Upload(v.mesh); err != nil {
		v.renderer.Close()
		v.window.Close()
		return nil, fmt.Errorf("failed to upload terrain: %w", err)
	}

	v.renderer.SetOverlay(debug.TerrainBox(v.mesh, debug.DefaultBoxPadding))

	v.input = input.New(v.window)
	v.window.CenterCursor()

	logger.Info("viewer initialized")
	return v, nil
}

func newCamera(cfg config.CameraConfig) *camera.Camera {
	c := camera.New()
	c.FOV = cfg.FOV
	c.Near = cfg.Near
	c.Far = cfg.Far
	c.Sensitivity = cfg.Sensitivity
	c.DriftSpeed = cfg.DriftSpeed
	c.LiftStep = cfg.LiftStep
	c.RotationScale = cfg.RotationScale
	c.EyeHeight = cfg.EyeHeight
	return c
}

// Run drives the frame loop until the window closes or the exit key is pressed.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		cx, cy := window.Center(v.window.Size())
		wantShot := false
		for _, ev := range latestPointer(v.input.Events()) {
			switch dispatch(v.camera, ev, cx, cy) {
			case actionQuit:
				v.running = false
			case actionResize:
				v.renderer.Resize(ev.Width, ev.Height)
			case actionScreenshot:
				wantShot = true
			case actionWireframe:
				v.renderer.SetWireframe(!v.renderer.Wireframe())
				logger.Debug("wireframe toggled", zap.Bool("on", v.renderer.Wireframe()))
			}
		}
		if !v.running {
			break
		}

		matrix := v.camera.Frame(v.renderer.Aspect(), v.heightmap)
		v.renderer.Draw(matrix)

		if wantShot {
			v.captureScreenshot()
		}

		v.window.SwapBuffers()
		v.window.CenterCursor()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			v.window.SetTitle(fmt.Sprintf("%s | %.0f fps", title, fps))
			logger.Debug("fps",
				zap.Float64("fps", fps),
				zap.Float32("pan_x", v.camera.Pan[0]),
				zap.Float32("pan_y", v.camera.Pan[1]),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) captureScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU and window resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
