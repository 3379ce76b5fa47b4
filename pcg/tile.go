package pcg

import (
	"image"

	"github.com/Mikejmoffitt/png2xsp/sheet"
)

// Pattern is one encoded 16x16 hardware sprite.
type Pattern [PatternBytes]byte

// Extract encodes the 16x16 region of b whose top-left corner is at
// (x, y). Pixels outside clip or outside the buffer encode as 0. The
// buffer is not modified.
func Extract(b *sheet.Buffer, x, y int, clip image.Rectangle) Pattern {
	var p Pattern
	clip8x8(b, x, y, clip, p[tileBytes*0:])
	clip8x8(b, x, y+tileHeight, clip, p[tileBytes*1:])
	clip8x8(b, x+tileWidth, y, clip, p[tileBytes*2:])
	clip8x8(b, x+tileWidth, y+tileHeight, clip, p[tileBytes*3:])
	return p
}

// clip8x8 packs one 8x8 sub-tile into dst at two pixels per byte, leftmost
// pixel in the high nibble.
func clip8x8(b *sheet.Buffer, x, y int, clip image.Rectangle, dst []byte) {
	i := 0
	for dy := 0; dy < tileHeight; dy++ {
		for dx := 0; dx < tileWidth; dx += 2 {
			hi := sample(b, x+dx, y+dy, clip)
			lo := sample(b, x+dx+1, y+dy, clip)
			dst[i] = hi&0x0f<<4 | lo&0x0f
			i++
		}
	}
}

func sample(b *sheet.Buffer, x, y int, clip image.Rectangle) uint8 {
	if !(image.Point{X: x, Y: y}).In(clip) {
		return 0
	}
	return b.At(x, y)
}
