package world

import (
	"math"

	"sandbox/pkg/sectors"
)

// Generate produces the terrain for one sector. The world is a
// superflat slab occupying the sectors at Y == -1, with solid stone
// below and open air above. Within the slab, the surface height
// undulates deterministically from the seed so there is geometry to
// walk around, capped with grass over a few layers of soil.
func Generate(idx sectors.Index, seed int64) *SectorData {
	data := NewSectorData()

	if idx.Y > -1 {
		return data
	}

	if idx.Y < -1 {
		for z := 0; z < sectors.Dim; z++ {
			for y := 0; y < sectors.Dim; y++ {
				for x := 0; x < sectors.Dim; x++ {
					data.Set(x, y, z, Stone)
				}
			}
		}
		return data
	}

	for z := 0; z < sectors.Dim; z++ {
		for x := 0; x < sectors.Dim; x++ {
			wx := idx.X*sectors.Dim + x
			wz := idx.Z*sectors.Dim + z
			surface := surfaceHeight(wx, wz, seed)

			for y := 0; y <= surface; y++ {
				switch {
				case y == surface:
					data.Set(x, y, z, Grass)
				case y >= surface-2:
					data.Set(x, y, z, Soil)
				default:
					data.Set(x, y, z, Stone)
				}
			}
		}
	}

	return data
}

// surfaceHeight returns the local Y of the top block for a column in
// a surface sector, always within [Dim-4, Dim-1].
func surfaceHeight(wx, wz int, seed int64) int {
	s := float64(seed)
	v := math.Sin(float64(wx)*0.13+s) + math.Cos(float64(wz)*0.17+s*0.7)

	h := sectors.Dim - 2 + int(math.Round(v))
	if h < sectors.Dim-4 {
		h = sectors.Dim - 4
	}
	if h > sectors.Dim-1 {
		h = sectors.Dim - 1
	}
	return h
}
