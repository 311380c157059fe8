// Package terrain turns grayscale heightmap images into triangle-strip meshes.
package terrain

import "github.com/go-gl/mathgl/mgl32"

// DefaultElevationScale converts an 8-bit gray value into world elevation.
const DefaultElevationScale float32 = 0.0008

// Sampler returns the terrain elevation at a grid position in [-0.5, 0.5]².
type Sampler interface {
	Elevation(x, y float32) float32
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(x, y float32) float32

// Elevation calls f(x, y).
func (f SamplerFunc) Elevation(x, y float32) float32 {
	return f(x, y)
}

// Mesh is a serpentine triangle strip covering the unit square.
// Vertices are immutable once BuildGrid returns.
type Mesh struct {
	Vertices []mgl32.Vec3
	CountX   int
	CountY   int
}

// Bounds holds the elevation range of a mesh.
type Bounds struct {
	MinZ float32
	MaxZ float32
}
