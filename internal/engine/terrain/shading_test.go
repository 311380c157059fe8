package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestShadeSnowAboveSnowLine(t *testing.T) {
	for _, xz := range [][2]float32{{0, 0}, {-0.5, 0.3}, {0.25, -0.1}, {0.49, 0.49}} {
		band, _ := Shade(mgl32.Vec3{xz[0], 0.1, 0.20})
		if band != BandSnow {
			t.Errorf("z=0.20 at %v: band %v, want snow", xz, band)
		}
	}
}

func TestShadeLowlandAtSeaLevel(t *testing.T) {
	for _, x := range []float32{-0.5, -0.2, 0, 0.3, 0.5} {
		band, col := Shade(mgl32.Vec3{x, x, 0})
		if band != BandLowland {
			t.Errorf("z=0 at x=%v: band %v, want lowland", x, band)
		}
		// (1+0)^3 - 0.8 = 0.2, times 2 scales green 0.4 to 0.16.
		if g := col[1]; g < 0.159 || g > 0.161 {
			t.Errorf("lowland green = %v, want ~0.16", g)
		}
	}
}

func TestShadeRockBetweenBands(t *testing.T) {
	band, _ := Shade(mgl32.Vec3{0.1, 0.1, 0.12})
	if band != BandRock {
		t.Errorf("z=0.12: band %v, want rock", band)
	}
}

func TestShadeJitterMovesLowlandEdge(t *testing.T) {
	// Elevations under 0.05 are lowland for any jitter; above 0.08 never.
	for _, x := range []float32{-0.4, -0.1, 0.2, 0.45} {
		if band, _ := Shade(mgl32.Vec3{x, 0, 0.049}); band != BandLowland {
			t.Errorf("z=0.049 x=%v: band %v, want lowland", x, band)
		}
		if band, _ := Shade(mgl32.Vec3{x, 0, 0.081}); band != BandRock {
			t.Errorf("z=0.081 x=%v: band %v, want rock", x, band)
		}
	}
}

func TestJitterRange(t *testing.T) {
	for x := float32(-0.5); x <= 0.5; x += 0.05 {
		for z := float32(0); z <= 0.2; z += 0.02 {
			j := Jitter(x, z)
			if j < 0 || j >= 1 {
				t.Fatalf("Jitter(%v, %v) = %v, out of [0, 1)", x, z, j)
			}
			if j != Jitter(x, z) {
				t.Fatalf("Jitter(%v, %v) not deterministic", x, z)
			}
		}
	}
}

func TestBandString(t *testing.T) {
	if BandSnow.String() != "snow" || BandLowland.String() != "lowland" || BandRock.String() != "rock" {
		t.Error("unexpected band names")
	}
}
