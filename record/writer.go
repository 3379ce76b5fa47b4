package record

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/Mikejmoffitt/png2xsp/pcg"
)

// headerBytes is the fixed size of the XSB bundle header.
const headerBytes = 52

// header mirrors the XSB bundle header layout consumed by XSPman. The
// offsets are absolute file positions; FrmBytes is 16-bit by contract and
// truncates for very large FRM streams.
type header struct {
	Type     uint16
	RefCount uint16
	FrmBytes uint16
	PCGCount uint16
	Palette  [NumColors]uint16
	RefOffs  uint32
	FrmOffs  uint32
	PCGOffs  uint32
}

// segment is one named output blob. The bundle writer concatenates
// segments in order; the file writer gives each its own extension. A nil
// segment exists for offset arithmetic but produces no file.
type segment struct {
	ext  string
	data []byte
}

// Write serializes the run's output under the given base path, either as
// one XSB bundle or as separate files per stream.
func Write(base string, mode Mode, bundle bool, tbl *pcg.Table, set *Set) error {
	segs := segments(mode, tbl, set)
	if bundle {
		return writeBundle(base, mode, tbl, set, segs)
	}
	return writeFiles(base, set, segs)
}

// segments builds the ordered segment list shared by both output modes.
// In SP mode the REF and FRM segments are nil placeholders.
func segments(mode Mode, tbl *pcg.Table, set *Set) []segment {
	var ref, frm []byte
	if mode == ModeXOBJ {
		ref = set.refData()
		frm = set.frmData()
	}
	ext := ".xsp"
	if mode == ModeSP {
		ext = ".sp"
	}
	return []segment{
		{ext: ".ref", data: ref},
		{ext: ".frm", data: frm},
		{ext: ext, data: tbl.Bytes()},
	}
}

func writeFiles(base string, set *Set, segs []segment) error {
	for _, seg := range segs {
		if seg.data == nil {
			continue
		}
		if err := writeFile(base+seg.ext, seg.data); err != nil {
			return err
		}
	}
	return writeFile(base+".pal", set.palData())
}

func writeBundle(base string, mode Mode, tbl *pcg.Table, set *Set, segs []segment) error {
	h := header{
		Type:     uint16(mode),
		RefCount: uint16(set.RefCount()),
		FrmBytes: uint16(set.FrmBytes()),
		PCGCount: uint16(tbl.Len()),
		Palette:  set.pal,
	}

	// Cumulative offsets, starting immediately after the header.
	offs := [3]uint32{}
	pos := uint32(headerBytes)
	for i, seg := range segs {
		offs[i] = pos
		pos += uint32(len(seg.data))
	}
	h.RefOffs, h.FrmOffs, h.PCGOffs = offs[0], offs[1], offs[2]

	b := new(bytes.Buffer)
	if err := binary.Write(b, binary.BigEndian, &h); err != nil {
		return err
	}
	for _, seg := range segs {
		b.Write(seg.data)
	}

	return writeFile(base+".xsb", b.Bytes())
}

func writeFile(name string, data []byte) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", name, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("could not write %s: %w", name, err)
	}
	return nil
}

func (s *Set) frmData() []byte {
	b := bytes.NewBuffer(make([]byte, 0, len(s.frm)*frmEntryBytes))
	for i := range s.frm {
		binary.Write(b, binary.BigEndian, &s.frm[i])
	}
	return b.Bytes()
}

func (s *Set) refData() []byte {
	b := bytes.NewBuffer(make([]byte, 0, len(s.ref)*refEntryBytes))
	for i := range s.ref {
		binary.Write(b, binary.BigEndian, &s.ref[i])
	}
	return b.Bytes()
}

func (s *Set) palData() []byte {
	b := new(bytes.Buffer)
	binary.Write(b, binary.BigEndian, &s.pal)
	return b.Bytes()
}
