// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Terrain     TerrainConfig    `yaml:"terrain"`
	Camera      CameraConfig     `yaml:"camera"`
	Logging     LoggingConfig    `yaml:"logging"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Backend    string `yaml:"backend"` // sdl or glfw
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"`
}

// TerrainConfig holds heightmap and mesh settings.
type TerrainConfig struct {
	Heightmap      string  `yaml:"heightmap"`
	GridX          int     `yaml:"grid_x"`
	GridY          int     `yaml:"grid_y"`
	ElevationScale float32 `yaml:"elevation_scale"`
}

// CameraConfig holds projection and control tuning.
type CameraConfig struct {
	FOV           float32 `yaml:"fov"`
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
	Sensitivity   float32 `yaml:"sensitivity"`
	DriftSpeed    float32 `yaml:"drift_speed"`
	LiftStep      float32 `yaml:"lift_step"`
	RotationScale float32 `yaml:"rotation_scale"`
	EyeHeight     float32 `yaml:"eye_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds capture output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend:    "sdl",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Samples:    16,
		},
		Terrain: TerrainConfig{
			Heightmap:      "heightmap.png",
			GridX:          240,
			GridY:          240,
			ElevationScale: 0.0008,
		},
		Camera: CameraConfig{
			FOV:           60,
			Near:          0.01,
			Far:           10,
			Sensitivity:   0.001,
			DriftSpeed:    0.001,
			LiftStep:      0.01,
			RotationScale: 100,
			EyeHeight:     0.02,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Screenshots: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "heightview",
		},
	}
}

// Validate reports every setting the viewer cannot start with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Window.Backend {
	case "sdl", "glfw":
	default:
		errs = append(errs, fmt.Errorf("window.backend: unknown backend %q", c.Window.Backend))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Samples < 0 {
		errs = append(errs, fmt.Errorf("window.samples: must not be negative, got %d", c.Window.Samples))
	}

	if c.Terrain.Heightmap == "" {
		errs = append(errs, errors.New("terrain.heightmap: path is required"))
	}
	if c.Terrain.GridX <= 0 || c.Terrain.GridY <= 0 {
		errs = append(errs, fmt.Errorf("terrain: invalid grid %dx%d", c.Terrain.GridX, c.Terrain.GridY))
	}
	if c.Terrain.ElevationScale <= 0 {
		errs = append(errs, fmt.Errorf("terrain.elevation_scale: must be positive, got %g", c.Terrain.ElevationScale))
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov: must be in (0, 180), got %g", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: invalid clip range near=%g far=%g", c.Camera.Near, c.Camera.Far))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	return errors.Join(errs...)
}
