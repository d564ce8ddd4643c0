package sectors

import (
	"fmt"
	"math"
)

// Dim is the number of blocks along one edge of a sector.
const Dim = 16

// Index identifies a sector in the world grid. Each unit step
// corresponds to Dim blocks in world space.
type Index struct {
	X int
	Y int
	Z int
}

func (s Index) String() string {
	return fmt.Sprintf("%d/%d/%d", s.X, s.Y, s.Z)
}

// Origin returns the world-space position of the sector's
// minimum corner (back lower left).
func (s Index) Origin() (x, y, z float64) {
	return float64(s.X * Dim), float64(s.Y * Dim), float64(s.Z * Dim)
}

// FromWorld returns the sector containing the given world position.
func FromWorld(x, y, z float64) Index {
	return Index{
		X: int(math.Floor(x / Dim)),
		Y: int(math.Floor(y / Dim)),
		Z: int(math.Floor(z / Dim)),
	}
}

// Neighbors returns the six face-adjacent sectors in priority order
// for prefetching: +X, -X, +Z, -Z, +Y, -Y.
func Neighbors(s Index) []Index {
	return []Index{
		{X: s.X + 1, Y: s.Y, Z: s.Z},
		{X: s.X - 1, Y: s.Y, Z: s.Z},
		{X: s.X, Y: s.Y, Z: s.Z + 1},
		{X: s.X, Y: s.Y, Z: s.Z - 1},
		{X: s.X, Y: s.Y + 1, Z: s.Z},
		{X: s.X, Y: s.Y - 1, Z: s.Z},
	}
}

// Visible returns all sectors within renderDistance sectors of the
// camera position, vertically limited to one sector above and below
// so the set stays proportional to the horizon rather than cubic.
func Visible(camX, camY, camZ float64, renderDistance int) []Index {
	center := FromWorld(camX, camY, camZ)

	out := make([]Index, 0, (2*renderDistance+1)*(2*renderDistance+1)*3)
	for dz := -renderDistance; dz <= renderDistance; dz++ {
		for dx := -renderDistance; dx <= renderDistance; dx++ {
			for dy := -1; dy <= 1; dy++ {
				out = append(out, Index{
					X: center.X + dx,
					Y: center.Y + dy,
					Z: center.Z + dz,
				})
			}
		}
	}

	return out
}
