// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/heightview/internal/engine/terrain"
)

// BoxLineVertexCount is the number of vertices in a box outline (12 edges × 2).
const BoxLineVertexCount = 24

// DefaultBoxPadding keeps the outline off the terrain surface.
const DefaultBoxPadding = 0.005

// BoxLines creates GL_LINES vertices for the axis-aligned box spanning lo and hi.
// Format: [x, y, z] per vertex. Inverted corners are swapped per axis.
func BoxLines(lo, hi mgl32.Vec3) []float32 {
	for i := 0; i < 3; i++ {
		if lo[i] > hi[i] {
			lo[i], hi[i] = hi[i], lo[i]
		}
	}
	minX, minY, minZ := lo[0], lo[1], lo[2]
	maxX, maxY, maxZ := hi[0], hi[1], hi[2]

	return []float32{
		// Floor
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, minX, maxY, minZ,
		minX, maxY, minZ, minX, minY, minZ,
		// Ceiling
		minX, minY, maxZ, maxX, minY, maxZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, minY, maxZ,
		// Pillars
		minX, minY, minZ, minX, minY, maxZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		minX, maxY, minZ, minX, maxY, maxZ,
	}
}

// TerrainBox outlines the unit square the grid covers, from the lowest to the
// highest drawn elevation, grown by padding on every side.
func TerrainBox(m *terrain.Mesh, padding float32) []float32 {
	b := m.Bounds()
	lo := mgl32.Vec3{-0.5 - padding, -0.5 - padding, b.MinZ - padding}
	hi := mgl32.Vec3{0.5 + padding, 0.5 + padding, b.MaxZ + padding}
	return BoxLines(lo, hi)
}
