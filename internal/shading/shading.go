// Package shading holds the per-vertex and per-fragment arithmetic of
// the two render pipelines as plain functions. The WGSL in
// internal/renderer is the GPU form of the same contracts; this
// package is the form the CPU can evaluate, used for sector
// visibility culling and by the tests.
package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AttenuationFloor is the minimum brightness factor applied by the
// mesh fragment stage, so geometry never goes fully black.
const AttenuationFloor = 0.2

// TransformPoint applies the shared vertex-stage transform: an
// object-space position through model, view, and projection into
// clip space. Both pipelines use exactly this chain.
func TransformPoint(model, view, projection mgl32.Mat4, position mgl32.Vec3) mgl32.Vec4 {
	return projection.Mul4(view).Mul4(model).Mul4x1(position.Vec4(1))
}

// Attenuation returns the time-driven brightness factor of the mesh
// fragment stage: max(0.2, sin(time)), always within [0.2, 1.0].
func Attenuation(time float32) float32 {
	s := float32(math.Sin(float64(time)))
	if s < AttenuationFloor {
		return AttenuationFloor
	}
	return s
}

// MeshFragment computes the mesh pipeline's output color from the
// interpolated vertex color and the time uniform. Alpha is always 1.
func MeshFragment(color mgl32.Vec3, time float32) mgl32.Vec4 {
	a := Attenuation(time)
	return mgl32.Vec4{color.X() * a, color.Y() * a, color.Z() * a, 1}
}

// TerrainFragment computes the terrain pipeline's output color from a
// texture sample. The sample's alpha channel is discarded; output
// alpha is always 1.
func TerrainFragment(sample mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{sample.X(), sample.Y(), sample.Z(), 1}
}

// BoxVisible conservatively tests an object-space axis-aligned box
// against the clip volume. It returns false only when all eight
// corners fall outside the same clip plane, so it never culls
// geometry that could be visible.
func BoxVisible(model, view, projection mgl32.Mat4, min, max mgl32.Vec3) bool {
	mvp := projection.Mul4(view).Mul4(model)

	// outside[p] counts corners beyond plane p: -x +x -y +y -z +z
	var outside [6]int
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{min.X(), min.Y(), min.Z()}
		if i&1 != 0 {
			corner[0] = max.X()
		}
		if i&2 != 0 {
			corner[1] = max.Y()
		}
		if i&4 != 0 {
			corner[2] = max.Z()
		}

		c := mvp.Mul4x1(corner.Vec4(1))
		if c.X() < -c.W() {
			outside[0]++
		}
		if c.X() > c.W() {
			outside[1]++
		}
		if c.Y() < -c.W() {
			outside[2]++
		}
		if c.Y() > c.W() {
			outside[3]++
		}
		if c.Z() < -c.W() {
			outside[4]++
		}
		if c.Z() > c.W() {
			outside[5]++
		}
	}

	for _, n := range outside {
		if n == 8 {
			return false
		}
	}
	return true
}
