package sheet

import (
	"image"
	"log"
)

// band is the vertical reach of the column scan; one hardware sprite.
const band = 16

// Claim hunts top-down, then left-right, for the next 16x16 unit of sprite
// content within r. It returns the top-left corner of the unit and whether
// anything was found. The region is not consumed; the caller clears it once
// it has been encoded so that later claims never see the same pixels.
func Claim(b *Buffer, r image.Rectangle, logger *log.Logger) (image.Point, bool) {
	// Walk down row by row looking for non-transparent pixel data.
	row := -1
	for y := r.Min.Y; y < r.Max.Y && row < 0; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if b.At(x, y) != 0 {
				row = y
				break
			}
		}
	}
	if row < 0 {
		return image.Point{}, false
	}

	// Scan rightwards for the left edge. The test column extends one
	// sprite height below the starting row, clipped to the region.
	ylim := row + band
	if ylim > r.Max.Y {
		ylim = r.Max.Y
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := row; y < ylim; y++ {
			if b.At(x, y) != 0 {
				return image.Point{X: x, Y: row}, true
			}
		}
	}

	// Row scan found content that the column scan could not; should not
	// happen.
	logger.Printf("unexpectedly empty strip from row %d", row)
	return image.Point{}, false
}
