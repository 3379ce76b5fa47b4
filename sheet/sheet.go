/*
Package sheet holds the working copy of the source spritesheet.

A Buffer is a row-major 8-bit indexed pixel grid where value 0 means
transparent. The claim scanner consumes sprite content destructively, so a
Buffer is only good for one conversion run.
*/
package sheet

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = 16

var errNoPixels = errors.New("sheet: image has no pixels")

// Buffer is a mutable indexed pixel grid.
type Buffer struct {
	W, H int
	Pix  []uint8
}

// At returns the palette index at (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return 0
	}
	return b.Pix[y*b.W+x]
}

// Clear zeroes every pixel within r, clipped to the buffer.
func (b *Buffer) Clear(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, b.W, b.H))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.Pix[y*b.W+r.Min.X : y*b.W+r.Max.X]
		for i := range row {
			row[i] = 0
		}
	}
}

// FromImage converts m into a Buffer and its palette. An indexed image with
// at most 16 colors is used as-is; anything else is quantized down to 16
// colors first, with index 0 of the resulting palette treated as
// transparent.
func FromImage(m image.Image) (*Buffer, color.Palette, error) {
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, nil, errNoPixels
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= maxColors {
			pm = image.NewPaletted(b, cp)
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					pm.Set(x, y, cp.Convert(m.At(x, y)))
				}
			}
		}
	}
	if pm == nil || len(pm.Palette) > maxColors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	buf := &Buffer{
		W:   b.Dx(),
		H:   b.Dy(),
		Pix: make([]uint8, b.Dx()*b.Dy()),
	}
	for y := 0; y < buf.H; y++ {
		copy(buf.Pix[y*buf.W:(y+1)*buf.W], pm.Pix[y*pm.Stride:])
	}

	return buf, pm.Palette, nil
}
