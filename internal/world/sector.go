package world

import (
	"fmt"

	"sandbox/pkg/sectors"
)

// SectorLen is the total number of blocks in one cubic sector.
const SectorLen = sectors.Dim * sectors.Dim * sectors.Dim

// SectorData holds the voxel contents of a single sector. Coordinates
// are relative to the sector's back lower left corner.
type SectorData struct {
	blocks [SectorLen]Block
}

// NewSectorData returns a sector filled with Air.
func NewSectorData() *SectorData {
	return &SectorData{}
}

// At returns the block at the given local coordinates.
func (d *SectorData) At(x, y, z int) Block {
	return d.blocks[blockIndex(x, y, z)]
}

// Set assigns the block at the given local coordinates.
func (d *SectorData) Set(x, y, z int, b Block) {
	d.blocks[blockIndex(x, y, z)] = b
}

// OpacityMask returns a bit per block, set where the block is opaque.
// Mesh generation queries neighbors through this mask instead of
// re-reading block values.
func (d *SectorData) OpacityMask() BitSet {
	mask := NewBitSet(SectorLen)
	for i, b := range d.blocks {
		if b.Opaque() {
			mask.SetBit(i, true)
		}
	}
	return mask
}

// Encode serializes the sector as one byte per block.
func (d *SectorData) Encode() []byte {
	out := make([]byte, SectorLen)
	for i, b := range d.blocks {
		out[i] = byte(b)
	}
	return out
}

// DecodeSectorData parses the format produced by Encode.
func DecodeSectorData(data []byte) (*SectorData, error) {
	if len(data) != SectorLen {
		return nil, fmt.Errorf("sector data is %d bytes, want %d", len(data), SectorLen)
	}

	d := NewSectorData()
	for i, b := range data {
		d.blocks[i] = Block(b)
	}
	return d, nil
}

func blockIndex(x, y, z int) int {
	return x + y*sectors.Dim + z*sectors.Dim*sectors.Dim
}

// inSector reports whether local coordinates fall inside the sector.
func inSector(x, y, z int) bool {
	return x >= 0 && x < sectors.Dim &&
		y >= 0 && y < sectors.Dim &&
		z >= 0 && z < sectors.Dim
}
