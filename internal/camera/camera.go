package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera represents a first-person viewpoint: a world position plus a
// pitch/yaw rotation. The view matrix it produces is the inverse of
// those transforms applied to the world, which is what creates the
// illusion of moving through the scene.
type Camera struct {
	// World position of the eye
	Position mgl32.Vec3

	// Rotation around the X axis (pitch) and Y axis (yaw), radians
	Pitch float32
	Yaw   float32

	// Projection parameters
	Fov  float32 // vertical field of view, radians
	Near float32
	Far  float32
}

// New creates a camera at the given position with default rotation
// and the given vertical field of view in radians.
func New(pos mgl32.Vec3, fov float32) *Camera {
	return &Camera{
		Position: pos,
		Fov:      fov,
		Near:     0.1,
		Far:      1000.0,
	}
}

// Slide moves the camera by the given world-space delta, ignoring its
// rotation.
func (c *Camera) Slide(delta mgl32.Vec3) {
	c.Position = c.Position.Add(delta)
}

// MoveX moves the camera along its own X axis (strafe). Positive
// delta moves right relative to the view direction.
func (c *Camera) MoveX(delta float32) {
	rot := float64(-c.Yaw)
	c.Position[0] += delta * float32(math.Cos(rot))
	c.Position[2] += delta * float32(math.Sin(rot))
}

// MoveZ moves the camera along its own Z axis. Negative delta moves
// forward relative to the view direction.
func (c *Camera) MoveZ(delta float32) {
	rot := math.Pi/2 - float64(c.Yaw)
	c.Position[0] += delta * float32(math.Cos(rot))
	c.Position[2] += delta * float32(math.Sin(rot))
}

// Spin rotates the camera by the given pitch and yaw deltas. Pitch is
// clamped to straight up/down; yaw wraps into [0, 2pi).
func (c *Camera) Spin(dPitch, dYaw float32) {
	c.Pitch += dPitch
	c.Yaw += dYaw

	limit := float32(math.Pi / 2)
	if c.Pitch < -limit {
		c.Pitch = -limit
	} else if c.Pitch > limit {
		c.Pitch = limit
	}

	twoPi := float32(2 * math.Pi)
	if c.Yaw < 0 {
		c.Yaw += twoPi
	} else if c.Yaw >= twoPi {
		c.Yaw -= twoPi
	}
}

// ViewMatrix returns the world-to-camera transform: the inverse
// rotation composed with the inverse translation.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(-c.Pitch).Mul4(mgl32.HomogRotate3DY(-c.Yaw))
	trans := mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
	return rot.Mul4(trans)
}

// ProjectionMatrix returns the camera-to-clip transform for the given
// viewport aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.Fov, aspect, c.Near, c.Far)
}
