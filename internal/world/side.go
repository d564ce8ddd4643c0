package world

// Side identifies one of the six faces of a cubic block.
type Side int

const (
	Front  Side = iota // +Z
	Back               // -Z
	Right              // +X
	Left               // -X
	Top                // +Y
	Bottom             // -Y
)

// Sides lists every face once, in emission order.
var Sides = [6]Side{Front, Back, Right, Left, Top, Bottom}

// Normal returns the outward unit direction of the face as integer
// block offsets.
func (s Side) Normal() (dx, dy, dz int) {
	switch s {
	case Front:
		return 0, 0, 1
	case Back:
		return 0, 0, -1
	case Right:
		return 1, 0, 0
	case Left:
		return -1, 0, 0
	case Top:
		return 0, 1, 0
	default:
		return 0, -1, 0
	}
}
