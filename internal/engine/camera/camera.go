// Package camera implements the terrain-following fly camera.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/heightview/internal/engine/input"
	"github.com/Faultbox/heightview/internal/engine/terrain"
)

// Drift directions.
const (
	Backward = -1
	Still    = 0
	Forward  = 1
)

// Camera accumulates pointer rotation, drift and lift between frames.
// The pointer acts as a centred joystick: each move reports the cursor offset
// from the window centre and the cursor is warped back every frame.
type Camera struct {
	// Accumulated state
	Pitch     float32    // Rotation about X, in rotation units
	Yaw       float32    // Rotation about Z, in rotation units
	Pan       mgl32.Vec2 // Translation across the terrain plane
	Lift      float32    // Extra height above the terrain
	Direction int        // Backward, Still or Forward

	// Projection
	FOV  float32 // Vertical field of view, degrees
	Near float32
	Far  float32

	// Tuning
	Sensitivity   float32 // Rotation units per pixel of pointer offset
	DriftSpeed    float32 // Pan per frame while drifting
	LiftStep      float32 // Lift change per raise/lower key press
	RotationScale float32 // Degrees per rotation unit
	EyeHeight     float32 // Height kept above the sampled terrain
}

// New creates a camera with the viewer's default tuning.
func New() *Camera {
	return &Camera{
		FOV:           60,
		Near:          0.01,
		Far:           10,
		Sensitivity:   0.001,
		DriftSpeed:    0.001,
		LiftStep:      0.01,
		RotationScale: 100,
		EyeHeight:     0.02,
	}
}

// HandlePointerMove accumulates rotation from a cursor offset relative to the
// window centre.
func (c *Camera) HandlePointerMove(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
}

// HandleKeyDown starts drifting or steps the lift.
func (c *Camera) HandleKeyDown(k input.Key) {
	switch k {
	case input.KeyForward:
		c.Direction = Forward
	case input.KeyBackward:
		c.Direction = Backward
	case input.KeyRaise:
		c.Lift += c.LiftStep
	case input.KeyLower:
		c.Lift -= c.LiftStep
	}
}

// HandleKeyUp stops drifting when a drift key is released.
func (c *Camera) HandleKeyUp(k input.Key) {
	if k == input.KeyForward || k == input.KeyBackward {
		c.Direction = Still
	}
}

// Drifting reports whether a drift key is held.
func (c *Camera) Drifting() bool {
	return c.Direction != Still
}

// Offset returns the accumulated pan.
func (c *Camera) Offset() mgl32.Vec2 {
	return c.Pan
}

// Frame advances the drift by one frame and returns the combined
// projection-view transform. The camera height follows the terrain under it.
func (c *Camera) Frame(aspect float32, s terrain.Sampler) mgl32.Mat4 {
	m := mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.RotationScale * c.Pitch)))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(c.RotationScale * c.Yaw)))

	// Drift along the first row of the rotated projection.
	if c.Direction != Still {
		d := float32(c.Direction)
		c.Pan[1] -= m[0] * c.DriftSpeed * d
		c.Pan[0] += m[4] * c.DriftSpeed * d
	}

	ground := s.Elevation(-c.Pan[0], -c.Pan[1])
	return m.Mul4(mgl32.Translate3D(c.Pan[0], c.Pan[1], -ground-c.EyeHeight-c.Lift))
}
