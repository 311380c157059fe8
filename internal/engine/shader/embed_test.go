package shader

import (
	"strings"
	"testing"
)

func TestTerrainShadersBindings(t *testing.T) {
	if !strings.Contains(TerrainVertexShader, "in vec3 "+PositionAttrib) {
		t.Errorf("vertex shader does not declare %s", PositionAttrib)
	}
	if !strings.Contains(TerrainVertexShader, "uniform mat4 "+MatrixUniform) {
		t.Errorf("vertex shader does not declare %s", MatrixUniform)
	}
	if !strings.Contains(TerrainFragmentShader, "in vec4 col") {
		t.Error("fragment shader does not consume the vertex colour")
	}
}

func TestTerrainShaderBands(t *testing.T) {
	for _, s := range []string{"12.9898", "78.233", "43758.5453", "0.08", "0.03", "0.15"} {
		if !strings.Contains(TerrainVertexShader, s) {
			t.Errorf("vertex shader missing constant %s", s)
		}
	}
}
