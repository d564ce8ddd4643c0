package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func vecNear(a, b mgl32.Vec3) bool {
	return math.Abs(float64(a.X()-b.X())) < epsilon &&
		math.Abs(float64(a.Y()-b.Y())) < epsilon &&
		math.Abs(float64(a.Z()-b.Z())) < epsilon
}

func TestViewMatrixAtOrigin(t *testing.T) {
	cam := New(mgl32.Vec3{}, mgl32.DegToRad(40))
	view := cam.ViewMatrix()
	ident := mgl32.Ident4()

	for i := 0; i < 16; i++ {
		if math.Abs(float64(view[i]-ident[i])) > epsilon {
			t.Fatalf("view matrix at origin is not identity: %v", view)
		}
	}
}

func TestViewMatrixInvertsTranslation(t *testing.T) {
	cam := New(mgl32.Vec3{1, 2, 3}, mgl32.DegToRad(40))

	// The camera's own position must map to the view-space origin
	out := cam.ViewMatrix().Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	if !vecNear(out.Vec3(), mgl32.Vec3{}) {
		t.Errorf("camera position maps to %v in view space, want origin", out)
	}
}

func TestMoveZForward(t *testing.T) {
	cam := New(mgl32.Vec3{}, mgl32.DegToRad(40))

	// With no yaw, forward is -Z
	cam.MoveZ(-1)
	if !vecNear(cam.Position, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("MoveZ(-1) at yaw 0 moved to %v, want (0, 0, -1)", cam.Position)
	}
}

func TestMoveXStrafe(t *testing.T) {
	cam := New(mgl32.Vec3{}, mgl32.DegToRad(40))

	cam.MoveX(1)
	if !vecNear(cam.Position, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("MoveX(1) at yaw 0 moved to %v, want (1, 0, 0)", cam.Position)
	}
}

func TestMoveFollowsYaw(t *testing.T) {
	cam := New(mgl32.Vec3{}, mgl32.DegToRad(40))
	cam.Spin(0, float32(math.Pi/2))

	// After a quarter turn, strafing right moves along -Z
	cam.MoveX(1)
	if !vecNear(cam.Position, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("MoveX(1) at yaw pi/2 moved to %v, want (0, 0, -1)", cam.Position)
	}
}

func TestSlideIgnoresRotation(t *testing.T) {
	cam := New(mgl32.Vec3{}, mgl32.DegToRad(40))
	cam.Spin(0.5, 2)

	cam.Slide(mgl32.Vec3{0, 3, 0})
	if !vecNear(cam.Position, mgl32.Vec3{0, 3, 0}) {
		t.Errorf("Slide moved to %v, want (0, 3, 0)", cam.Position)
	}
}

func TestSpinClampsPitch(t *testing.T) {
	cam := New(mgl32.Vec3{}, mgl32.DegToRad(40))
	limit := float32(math.Pi / 2)

	cam.Spin(10, 0)
	if cam.Pitch != limit {
		t.Errorf("pitch = %f after large positive spin, want %f", cam.Pitch, limit)
	}

	cam.Spin(-20, 0)
	if cam.Pitch != -limit {
		t.Errorf("pitch = %f after large negative spin, want %f", cam.Pitch, -limit)
	}
}

func TestSpinWrapsYaw(t *testing.T) {
	cam := New(mgl32.Vec3{}, mgl32.DegToRad(40))

	cam.Spin(0, -0.5)
	want := float32(2*math.Pi) - 0.5
	if math.Abs(float64(cam.Yaw-want)) > epsilon {
		t.Errorf("yaw = %f after Spin(0, -0.5), want %f", cam.Yaw, want)
	}

	cam = New(mgl32.Vec3{}, mgl32.DegToRad(40))
	cam.Spin(0, float32(2*math.Pi)+0.25)
	if math.Abs(float64(cam.Yaw-0.25)) > epsilon {
		t.Errorf("yaw = %f after full-turn spin, want 0.25", cam.Yaw)
	}
}

func TestProjectionMapsForwardPointInside(t *testing.T) {
	cam := New(mgl32.Vec3{}, mgl32.DegToRad(40))

	clip := cam.ProjectionMatrix(16.0 / 9.0).Mul4x1(mgl32.Vec4{0, 0, -10, 1})
	if clip.W() <= 0 {
		t.Errorf("point ahead of camera has clip w = %f, want > 0", clip.W())
	}
	if clip.Z() < -clip.W() || clip.Z() > clip.W() {
		t.Errorf("point at z=-10 fell outside the depth range: %v", clip)
	}
}
