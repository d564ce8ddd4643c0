package world

import (
	"bytes"
	"testing"

	"sandbox/pkg/sectors"
)

func TestSectorDataRoundtrip(t *testing.T) {
	d := NewSectorData()

	d.Set(0, 0, 0, Stone)
	d.Set(15, 15, 15, Grass)
	d.Set(3, 7, 11, Soil)

	if got := d.At(0, 0, 0); got != Stone {
		t.Errorf("At(0,0,0) = %v, want Stone", got)
	}
	if got := d.At(15, 15, 15); got != Grass {
		t.Errorf("At(15,15,15) = %v, want Grass", got)
	}
	if got := d.At(3, 7, 11); got != Soil {
		t.Errorf("At(3,7,11) = %v, want Soil", got)
	}
	if got := d.At(1, 0, 0); got != Air {
		t.Errorf("At(1,0,0) = %v, want Air", got)
	}
}

func TestSectorDataDistinctCells(t *testing.T) {
	// Coordinates that collide under a wrong index formula must not alias
	d := NewSectorData()
	d.Set(1, 0, 0, Stone)

	if d.At(0, 1, 0) != Air || d.At(0, 0, 1) != Air {
		t.Error("setting (1,0,0) aliased another cell")
	}
}

func TestEncodeDecode(t *testing.T) {
	d := Generate(sectors.Index{Y: -1}, 7)

	raw := d.Encode()
	if len(raw) != SectorLen {
		t.Fatalf("Encode returned %d bytes, want %d", len(raw), SectorLen)
	}

	decoded, err := DecodeSectorData(raw)
	if err != nil {
		t.Fatalf("DecodeSectorData failed: %v", err)
	}
	if !bytes.Equal(decoded.Encode(), raw) {
		t.Error("decoded sector does not match original")
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	if _, err := DecodeSectorData(make([]byte, 100)); err == nil {
		t.Error("DecodeSectorData accepted truncated data")
	}
}

func TestOpacityMask(t *testing.T) {
	d := NewSectorData()
	d.Set(5, 5, 5, Stone)

	mask := d.OpacityMask()
	if !mask.Bit(blockIndex(5, 5, 5)) {
		t.Error("opaque block not set in mask")
	}
	if mask.Bit(blockIndex(5, 5, 6)) {
		t.Error("air block set in mask")
	}
}

func TestBitSet(t *testing.T) {
	s := NewBitSet(100)

	s.SetBit(0, true)
	s.SetBit(63, true)
	s.SetBit(99, true)

	if !s.Bit(0) || !s.Bit(63) || !s.Bit(99) {
		t.Error("set bits read back false")
	}
	if s.Bit(1) || s.Bit(64) {
		t.Error("unset bits read back true")
	}

	s.SetBit(63, false)
	if s.Bit(63) {
		t.Error("cleared bit read back true")
	}
}
