package shader

import _ "embed"

// Names bound by the terrain program.
const (
	PositionAttrib = "posAttr"
	MatrixUniform  = "matrix"
)

// TerrainVertexShader colours vertices by elevation band.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader passes the vertex colour through.
//
//go:embed terrain.frag
var TerrainFragmentShader string
