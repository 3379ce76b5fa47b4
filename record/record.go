/*
Package record accumulates the FRM and REF streams and the palette for one
conversion run, and serializes everything either as separate files or as a
single XSB bundle.

Motorola 68000, and therefore XSP, uses big-endian data; every multi-byte
field below is written high byte first.
*/
package record

import (
	"errors"
	"image/color"
)

// Mode selects between composite (XOBJ) and single-pattern (SP) output.
type Mode uint16

const (
	// ModeXOBJ emits pattern, FRM and REF data for composite sprites.
	ModeXOBJ Mode = iota
	// ModeSP emits pattern data only.
	ModeSP
)

const (
	// MaxFrmEntries bounds the FRM stream.
	MaxFrmEntries = 32768
	// MaxRefEntries bounds the REF stream.
	MaxRefEntries = MaxFrmEntries / 8

	// NumColors is the size of the hardware palette.
	NumColors = 16

	frmEntryBytes = 8
	refEntryBytes = 8
)

var (
	// ErrFrmFull is returned by AddFrm once the FRM stream is at capacity.
	ErrFrmFull = errors.New("record: FRM stream is full")
	// ErrRefFull is returned by AddRef once the REF stream is at capacity.
	ErrRefFull = errors.New("record: REF stream is full")
)

// FrmEntry places one hardware sprite within a composite object. The
// displacement is relative to the previous entry of the same frame.
type FrmEntry struct {
	VX, VY   int16
	Pattern  uint16
	Reserved uint16
}

// RefEntry summarizes one frame: how many FRM entries belong to it and
// where they start within the FRM stream.
type RefEntry struct {
	Count    uint16
	Offset   uint32
	Reserved uint16
}

// Set holds everything accumulated while chopping a spritesheet.
type Set struct {
	frm []FrmEntry
	ref []RefEntry
	pal [NumColors]uint16
}

// NewSet returns an empty record set.
func NewSet() *Set {
	return &Set{}
}

// AddFrm appends a FRM entry.
func (s *Set) AddFrm(vx, vy int16, pattern int) error {
	if len(s.frm) >= MaxFrmEntries {
		return ErrFrmFull
	}
	s.frm = append(s.frm, FrmEntry{VX: vx, VY: vy, Pattern: uint16(pattern)})
	return nil
}

// AddRef appends a REF entry.
func (s *Set) AddRef(count uint16, offset uint32) error {
	if len(s.ref) >= MaxRefEntries {
		return ErrRefFull
	}
	s.ref = append(s.ref, RefEntry{Count: count, Offset: offset})
	return nil
}

// FrmBytes returns the current byte length of the FRM stream; a frame
// records this before its first claim as its REF offset.
func (s *Set) FrmBytes() uint32 {
	return uint32(len(s.frm) * frmEntryBytes)
}

// FrmCount returns the number of FRM entries.
func (s *Set) FrmCount() int {
	return len(s.frm)
}

// RefCount returns the number of REF entries.
func (s *Set) RefCount() int {
	return len(s.ref)
}

// Frm returns the accumulated FRM entries.
func (s *Set) Frm() []FrmEntry {
	return s.frm
}

// Ref returns the accumulated REF entries.
func (s *Set) Ref() []RefEntry {
	return s.ref
}

// Palette returns the converted hardware palette.
func (s *Set) Palette() [NumColors]uint16 {
	return s.pal
}

// SetPalette converts p to hardware color words. Entry 0 is always
// transparent and serializes as zero regardless of the source; a palette
// shorter than 16 entries zero-fills the remainder.
func (s *Set) SetPalette(p color.Palette) {
	s.pal = [NumColors]uint16{}
	for i := 1; i < NumColors && i < len(p); i++ {
		s.pal[i] = NativeColor(p[i])
	}
}

// NativeColor packs c into the X68000 native format: GGGGGRRRRRBBBBB0,
// each channel truncated to 5 bits. Note the green-first channel order;
// this is not RGB555.
func NativeColor(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16(g>>11)<<11 | uint16(r>>11)<<6 | uint16(b>>11)<<1
}
