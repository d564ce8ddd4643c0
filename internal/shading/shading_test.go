package shading

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

func TestAttenuationBounds(t *testing.T) {
	for time := float32(-10); time <= 10; time += 0.05 {
		a := Attenuation(time)
		if a < AttenuationFloor || a > 1.0 {
			t.Errorf("Attenuation(%f) = %f, want within [%f, 1.0]", time, a, float32(AttenuationFloor))
		}
	}
}

func TestAttenuationAtZero(t *testing.T) {
	// sin(0) = 0, floored to 0.2
	if a := Attenuation(0); a != AttenuationFloor {
		t.Errorf("Attenuation(0) = %f, want %f", a, float32(AttenuationFloor))
	}
}

func TestAttenuationAtPeak(t *testing.T) {
	// sin(pi/2) = 1, no floor applied
	a := Attenuation(float32(math.Pi / 2))
	if math.Abs(float64(a)-1.0) > epsilon {
		t.Errorf("Attenuation(pi/2) = %f, want 1.0", a)
	}
}

func TestMeshFragmentDimmedWhite(t *testing.T) {
	out := MeshFragment(mgl32.Vec3{1, 1, 1}, 0)
	want := mgl32.Vec4{0.2, 0.2, 0.2, 1.0}

	for i := 0; i < 4; i++ {
		if math.Abs(float64(out[i]-want[i])) > epsilon {
			t.Errorf("MeshFragment(white, 0) = %v, want %v", out, want)
			break
		}
	}
}

func TestMeshFragmentFullBrightness(t *testing.T) {
	out := MeshFragment(mgl32.Vec3{0.5, 0.4, 0.3}, float32(math.Pi/2))
	want := mgl32.Vec4{0.5, 0.4, 0.3, 1.0}

	for i := 0; i < 4; i++ {
		if math.Abs(float64(out[i]-want[i])) > epsilon {
			t.Errorf("MeshFragment at peak = %v, want %v", out, want)
			break
		}
	}
}

func TestMeshFragmentOutputRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		color := mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
		time := (rng.Float32() - 0.5) * 100

		out := MeshFragment(color, time)
		for c := 0; c < 3; c++ {
			if out[c] < 0 || out[c] > 1 {
				t.Fatalf("MeshFragment(%v, %f)[%d] = %f outside [0, 1]", color, time, c, out[c])
			}
		}
		if out[3] != 1.0 {
			t.Fatalf("MeshFragment(%v, %f) alpha = %f, want exactly 1.0", color, time, out[3])
		}
	}
}

func TestTerrainFragmentOverridesAlpha(t *testing.T) {
	out := TerrainFragment(mgl32.Vec4{0.1, 0.2, 0.3, 0.9})
	want := mgl32.Vec4{0.1, 0.2, 0.3, 1.0}

	if out != want {
		t.Errorf("TerrainFragment = %v, want %v", out, want)
	}

	// Alpha is forced regardless of the sample's own alpha
	if out := TerrainFragment(mgl32.Vec4{0, 0, 0, 0}); out[3] != 1.0 {
		t.Errorf("TerrainFragment alpha = %f, want exactly 1.0", out[3])
	}
}

func TestTransformPointIdentity(t *testing.T) {
	ident := mgl32.Ident4()
	out := TransformPoint(ident, ident, ident, mgl32.Vec3{1, 2, 3})
	want := mgl32.Vec4{1, 2, 3, 1}

	if out != want {
		t.Errorf("TransformPoint with identity matrices = %v, want %v", out, want)
	}
}

func TestTransformPointOrdering(t *testing.T) {
	model := mgl32.Translate3D(3, 0, 0)
	view := mgl32.Translate3D(0, 0, -10)
	projection := mgl32.Perspective(mgl32.DegToRad(40), 16.0/9.0, 0.1, 1000)

	pos := mgl32.Vec3{1, 2, 3}

	// Apply the chain one matrix at a time: model, then view, then projection
	step := model.Mul4x1(pos.Vec4(1))
	step = view.Mul4x1(step)
	want := projection.Mul4x1(step)

	got := TransformPoint(model, view, projection, pos)
	for i := 0; i < 4; i++ {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Errorf("TransformPoint = %v, want %v", got, want)
			break
		}
	}
}

func TestBoxVisibleInFront(t *testing.T) {
	ident := mgl32.Ident4()
	projection := mgl32.Perspective(mgl32.DegToRad(40), 1.0, 0.1, 1000)

	// Camera looks down -Z; a box ahead of it must not be culled
	if !BoxVisible(ident, ident, projection, mgl32.Vec3{-1, -1, -6}, mgl32.Vec3{1, 1, -5}) {
		t.Error("box in front of the camera was culled")
	}
}

func TestBoxVisibleBehind(t *testing.T) {
	ident := mgl32.Ident4()
	projection := mgl32.Perspective(mgl32.DegToRad(40), 1.0, 0.1, 1000)

	if BoxVisible(ident, ident, projection, mgl32.Vec3{-1, -1, 5}, mgl32.Vec3{1, 1, 6}) {
		t.Error("box behind the camera was not culled")
	}
}

func TestBoxVisibleStraddling(t *testing.T) {
	ident := mgl32.Ident4()
	projection := mgl32.Perspective(mgl32.DegToRad(40), 1.0, 0.1, 1000)

	// A box with corners on both sides of a clip plane stays visible
	if !BoxVisible(ident, ident, projection, mgl32.Vec3{-100, -1, -10}, mgl32.Vec3{100, 1, -9}) {
		t.Error("box straddling the frustum was culled")
	}
}
