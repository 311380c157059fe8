package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Band is the colour band an elevation falls into.
type Band int

const (
	BandLowland Band = iota
	BandRock
	BandSnow
)

// Band thresholds shared with the terrain vertex shader.
const (
	LowlandLimit  float32 = 0.08
	LowlandJitter float32 = 0.03
	SnowLine      float32 = 0.15
)

func (b Band) String() string {
	switch b {
	case BandLowland:
		return "lowland"
	case BandRock:
		return "rock"
	case BandSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// Jitter is the shader's hash: fract(sin(dot(xz, (12.9898, 78.233))) * 43758.5453).
// It is deterministic and lies in [0, 1).
func Jitter(x, z float32) float32 {
	d := x*12.9898 + z*78.233
	v := float32(math.Sin(float64(d))) * 43758.5453
	return v - float32(math.Floor(float64(v)))
}

// Shade returns the band and vertex colour the terrain shader assigns to p.
func Shade(p mgl32.Vec3) (Band, mgl32.Vec4) {
	z := p[2]
	lift := float32(math.Pow(float64(1+z), 3))

	switch {
	case z < LowlandLimit-Jitter(p[0], p[2])*LowlandJitter:
		return BandLowland, mgl32.Vec4{z, 0.4, 0, 1}.Mul((lift - 0.8) * 2)
	case z < SnowLine:
		return BandRock, mgl32.Vec4{0.54, 0.27 + z, 0.07, 1}.Mul(lift - 1)
	default:
		return BandSnow, mgl32.Vec4{0.9, 0.9, 0.8, 1}.Mul(lift - 1)
	}
}
