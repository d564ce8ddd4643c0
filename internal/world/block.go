package world

// Block identifies the material filling one voxel.
type Block uint8

const (
	Air Block = iota
	Stone
	Soil
	Grass
)

// Opaque reports whether the block hides faces of adjacent blocks.
func (b Block) Opaque() bool {
	return b != Air
}

// AtlasTile returns the column and row of the block's texture in the
// terrain atlas for the given face. The atlas is a 4x4 grid of tiles.
func (b Block) AtlasTile(side Side) (col, row int) {
	switch b {
	case Stone:
		return 3, 0
	case Soil:
		return 2, 0
	case Grass:
		switch side {
		case Top:
			return 0, 0
		case Bottom:
			return 2, 0
		default:
			return 1, 0
		}
	default:
		return 0, 0
	}
}
