package world

import "sandbox/pkg/sectors"

// TerrainVertex is the vertex format of the terrain pipeline:
// an object-space position and a normalized atlas coordinate.
type TerrainVertex struct {
	Position [3]float32
	UV       [2]float32
}

// Mesh is the geometry generated for one sector, indexed as triangles.
type Mesh struct {
	Vertices []TerrainVertex
	Indices  []uint32
}

// atlasTiles is the number of tiles along one edge of the terrain atlas.
const atlasTiles = 4

// faceCorners gives the four corners of each face as offsets from the
// block's minimum corner, wound counter-clockwise seen from outside:
// bottom-left, bottom-right, top-right, top-left.
var faceCorners = [6][4][3]float32{
	Front:  {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	Back:   {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	Right:  {{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	Left:   {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	Top:    {{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
	Bottom: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
}

// GenMesh builds the render geometry for a sector, emitting only the
// block faces that touch a non-opaque neighbor. Blocks beyond the
// sector boundary count as open, the same rule the world generator's
// sectors were meshed with originally.
func GenMesh(data *SectorData) *Mesh {
	mask := data.OpacityMask()
	mesh := &Mesh{}

	for z := 0; z < sectors.Dim; z++ {
		for y := 0; y < sectors.Dim; y++ {
			for x := 0; x < sectors.Dim; x++ {
				b := data.At(x, y, z)
				if !b.Opaque() {
					continue
				}

				for _, side := range Sides {
					dx, dy, dz := side.Normal()
					nx, ny, nz := x+dx, y+dy, z+dz
					if inSector(nx, ny, nz) && mask.Bit(blockIndex(nx, ny, nz)) {
						continue
					}
					mesh.addFace(b, side, x, y, z)
				}
			}
		}
	}

	return mesh
}

func (m *Mesh) addFace(b Block, side Side, x, y, z int) {
	col, row := b.AtlasTile(side)
	u0 := float32(col) / atlasTiles
	v0 := float32(row) / atlasTiles
	u1 := float32(col+1) / atlasTiles
	v1 := float32(row+1) / atlasTiles

	uvs := [4][2]float32{{u0, v1}, {u1, v1}, {u1, v0}, {u0, v0}}

	base := uint32(len(m.Vertices))
	for i, c := range faceCorners[side] {
		m.Vertices = append(m.Vertices, TerrainVertex{
			Position: [3]float32{
				float32(x) + c[0],
				float32(y) + c[1],
				float32(z) + c[2],
			},
			UV: uvs[i],
		})
	}

	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
