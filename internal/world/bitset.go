package world

// BitSet is a compact sequence of boolean bits, eight times smaller
// than a slice of bools. Bit indices are least significant bit lowest.
type BitSet []uint8

// NewBitSet returns a zeroed BitSet with capacity for n bits.
func NewBitSet(n int) BitSet {
	return make(BitSet, (n+7)/8)
}

// Bit returns the boolean value of the bit at the given index.
func (s BitSet) Bit(index int) bool {
	bkt, rem := index/8, index%8
	return s[bkt]&(1<<rem) != 0
}

// SetBit assigns the truth value to the bit at the given index.
func (s BitSet) SetBit(index int, value bool) {
	bkt, rem := index/8, index%8
	if value {
		s[bkt] |= 1 << rem
	} else {
		s[bkt] &^= 1 << rem
	}
}
