package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// paddingVertices trail the terminal vertex and are never drawn.
const paddingVertices = 2

// VertexCount returns the buffer length BuildGrid produces for a grid.
func VertexCount(countX, countY int) int {
	return countX*countY*2 + countX + 3
}

// DrawCount returns how many vertices the strip draw call consumes.
func DrawCount(countX, countY int) int {
	return countX*countY*2 + countX + 1
}

// BuildGrid lays out a countX × countY grid over [-0.5, 0.5]² as one
// triangle strip. Columns are walked left to right; rows alternate upward and
// downward so consecutive columns share an edge without separators.
// Each column ends with a closing vertex and the strip ends with a terminal
// vertex, followed by two padding copies of it.
//
// Non-positive counts are a programming error and panic.
func BuildGrid(countX, countY int, s Sampler) *Mesh {
	if countX <= 0 || countY <= 0 {
		panic(fmt.Sprintf("terrain: invalid grid %dx%d", countX, countY))
	}

	vertices := make([]mgl32.Vec3, 0, VertexCount(countX, countY))
	stepX := 1 / float32(countX)
	stepY := 1 / float32(countY)

	posX := float32(-0.5)
	posY := float32(-0.5)
	flop := float32(1)

	emit := func(x, y float32) {
		vertices = append(vertices, mgl32.Vec3{x, y, s.Elevation(x, y)})
	}

	for range countX {
		for range countY {
			emit(posX, posY)
			emit(posX+stepX, posY)
			posY += stepY * flop
		}
		emit(posX, posY)

		flop = -flop
		posX += stepX
	}
	emit(posX, posY)

	last := vertices[len(vertices)-1]
	for range paddingVertices {
		vertices = append(vertices, last)
	}

	return &Mesh{
		Vertices: vertices,
		CountX:   countX,
		CountY:   countY,
	}
}

// DrawCount returns the number of vertices to pass to the strip draw call.
func (m *Mesh) DrawCount() int {
	return DrawCount(m.CountX, m.CountY)
}

// Floats returns the vertex buffer flattened to x, y, z triples.
func (m *Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Bounds returns the elevation range over all drawn vertices.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{MinZ: m.Vertices[0][2], MaxZ: m.Vertices[0][2]}
	for _, v := range m.Vertices[:m.DrawCount()] {
		if v[2] < b.MinZ {
			b.MinZ = v[2]
		}
		if v[2] > b.MaxZ {
			b.MaxZ = v[2]
		}
	}
	return b
}
