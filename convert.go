package png2xsp

import (
	"fmt"
	"image"
	"os"

	"github.com/Mikejmoffitt/png2xsp/pcg"
	"github.com/Mikejmoffitt/png2xsp/record"
	"github.com/Mikejmoffitt/png2xsp/sheet"
)

// run is the state owned by one conversion: the working pixel buffer, the
// pattern table and the record set, plus the effective origin. Everything
// is created empty, filled while walking the grid and serialized once at
// the end.
type run struct {
	c      *Converter
	mode   record.Mode
	ox, oy int
	buf    *sheet.Buffer
	tbl    *pcg.Table
	set    *record.Set
}

// ConvertFile decodes the image at path and converts it. The caller must
// have registered the relevant image formats.
func (c *Converter) ConvertFile(path string, cfg Config) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}

	return c.ConvertImage(m, cfg)
}

// ConvertImage chops m into XSP data per cfg and writes the output files.
func (c *Converter) ConvertImage(m image.Image, cfg Config) (*Summary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	buf, pal, err := sheet.FromImage(m)
	if err != nil {
		return nil, err
	}
	if cfg.FrameWidth > buf.W || cfg.FrameHeight > buf.H {
		return nil, fmt.Errorf("frame size (%d x %d) exceeds source image (%d x %d)",
			cfg.FrameWidth, cfg.FrameHeight, buf.W, buf.H)
	}

	// A frame no larger than one hardware sprite needs no composition
	// data.
	mode := record.ModeXOBJ
	if cfg.FrameWidth <= pcg.SpriteSize && cfg.FrameHeight <= pcg.SpriteSize {
		mode = record.ModeSP
	}

	ox := clampOrigin(cfg.OriginX, cfg.FrameWidth)
	oy := clampOrigin(cfg.OriginY, cfg.FrameHeight)

	r := &run{
		c:    c,
		mode: mode,
		// Hardware sprites hang right and down from their position,
		// so the placement origin shifts by half a sprite.
		ox:  ox - pcg.SpriteSize/2,
		oy:  oy - pcg.SpriteSize/2,
		buf: buf,
		tbl: pcg.NewTable(),
		set: record.NewSet(),
	}
	r.set.SetPalette(pal)

	rows := buf.H / cfg.FrameHeight
	cols := buf.W / cfg.FrameWidth
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.chopFrame(image.Rect(
				x*cfg.FrameWidth, y*cfg.FrameHeight,
				(x+1)*cfg.FrameWidth, (y+1)*cfg.FrameHeight))
		}
	}

	if err := record.Write(cfg.OutBase, mode, cfg.Bundle, r.tbl, r.set); err != nil {
		return nil, err
	}

	return &Summary{
		Mode:     mode,
		Patterns: r.tbl.Len(),
		Frm:      r.set.FrmCount(),
		Ref:      r.set.RefCount(),
	}, nil
}

func clampOrigin(o, limit int) int {
	if o < 0 {
		return limit / 2
	}
	if o > limit {
		return limit
	}
	return o
}

// chopFrame strips all sprite content from one frame cell. Each claim is
// encoded, its source pixels are consumed, and in XOBJ mode a FRM entry
// places it relative to the previous claim. A REF entry summarizes the
// frame afterwards unless it was empty.
func (r *run) chopFrame(clip image.Rectangle) {
	var count uint16
	start := r.set.FrmBytes()
	lastVX, lastVY := 0, 0

	for {
		pt, ok := sheet.Claim(r.buf, clip, r.c.logger)
		if !ok {
			break
		}

		p := pcg.Extract(r.buf, pt.X, pt.Y, clip)

		// Consume only what was read: the sprite region clipped to the
		// frame. A claim near the right or bottom edge overlaps the
		// neighboring cell, whose pixels encoded as 0.
		r.buf.Clear(image.Rect(
			pt.X, pt.Y,
			pt.X+pcg.SpriteSize, pt.Y+pcg.SpriteSize).Intersect(clip))

		// In XOBJ mode, duplicate patterns are shared.
		idx := -1
		if r.mode == record.ModeXOBJ {
			if i, ok := r.tbl.Find(p); ok {
				idx = i
			}
		}
		if idx < 0 {
			i, err := r.tbl.Insert(p)
			if err != nil {
				r.c.logger.Print("PCG area is full! cannot record any more patterns")
				break
			}
			idx = i
		}

		if r.mode != record.ModeXOBJ {
			continue
		}

		vx := pt.X - clip.Min.X - r.ox
		vy := pt.Y - clip.Min.Y - r.oy
		if err := r.set.AddFrm(int16(vx-lastVX), int16(vy-lastVY), idx); err != nil {
			r.c.logger.Print("FRM data is full! dropping remaining frame content")
			break
		}
		lastVX, lastVY = vx, vy
		count++
	}

	if r.mode != record.ModeXOBJ || count == 0 {
		return
	}
	if err := r.set.AddRef(count, start); err != nil {
		r.c.logger.Print("REF data is full! dropping frame reference")
	}
}
