package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/heightview/internal/engine/terrain"
)

func TestBoxLinesVertexCount(t *testing.T) {
	v := BoxLines(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	if len(v) != BoxLineVertexCount*3 {
		t.Errorf("len = %d, want %d", len(v), BoxLineVertexCount*3)
	}
}

func TestBoxLinesInvertedCorners(t *testing.T) {
	a := BoxLines(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 3})
	b := BoxLines(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 0})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vertex component %d = %v, want %v", i, b[i], a[i])
		}
	}
}

func TestTerrainBoxEnclosesMesh(t *testing.T) {
	s := terrain.SamplerFunc(func(x, y float32) float32 { return x * 0.1 })
	m := terrain.BuildGrid(4, 4, s)
	box := TerrainBox(m, 0.01)

	lo := mgl32.Vec3{box[0], box[1], box[2]}
	hi := lo
	for i := 0; i < len(box); i += 3 {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], box[i+k])
			hi[k] = max(hi[k], box[i+k])
		}
	}

	for i, v := range m.Vertices[:m.DrawCount()] {
		for k := 0; k < 3; k++ {
			if v[k] < lo[k] || v[k] > hi[k] {
				t.Fatalf("vertex %d %v outside box %v..%v", i, v, lo, hi)
			}
		}
	}
	if !mgl32.FloatEqualThreshold(hi[0], 0.51, 1e-6) || !mgl32.FloatEqualThreshold(lo[0], -0.51, 1e-6) {
		t.Errorf("x extent = %v..%v, want -0.51..0.51", lo[0], hi[0])
	}
}
