package sheet

import (
	"image"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = log.New(io.Discard, "", 0)

func claimBuffer(w, h int) *Buffer {
	return &Buffer{W: w, H: h, Pix: make([]uint8, w*h)}
}

func TestClaimEmpty(t *testing.T) {
	b := claimBuffer(16, 16)

	_, ok := Claim(b, image.Rect(0, 0, 16, 16), discard)
	assert.False(t, ok)
}

func TestClaimSinglePixel(t *testing.T) {
	b := claimBuffer(16, 16)
	b.Pix[3*16+5] = 1

	pt, ok := Claim(b, image.Rect(0, 0, 16, 16), discard)
	require.True(t, ok)
	assert.Equal(t, image.Point{X: 5, Y: 3}, pt)
}

func TestClaimBandPicksLeftmostColumn(t *testing.T) {
	// The row scan finds row 2 via the pixel at (10, 2), but the column
	// scan covers a 16 pixel band below that row, so the pixel at
	// (3, 12) pulls the claim to column 3.
	b := claimBuffer(16, 16)
	b.Pix[2*16+10] = 1
	b.Pix[12*16+3] = 1

	pt, ok := Claim(b, image.Rect(0, 0, 16, 16), discard)
	require.True(t, ok)
	assert.Equal(t, image.Point{X: 3, Y: 2}, pt)
}

func TestClaimIgnoresContentOutsideRegion(t *testing.T) {
	b := claimBuffer(32, 32)
	b.Pix[5*32+20] = 1 // other frame cell

	_, ok := Claim(b, image.Rect(0, 0, 16, 16), discard)
	assert.False(t, ok)

	pt, ok := Claim(b, image.Rect(16, 0, 32, 16), discard)
	require.True(t, ok)
	assert.Equal(t, image.Point{X: 20, Y: 5}, pt)
}

func TestClaimConsumption(t *testing.T) {
	// Clearing a claimed region means a rescan never returns the same
	// origin again.
	b := claimBuffer(32, 32)
	r := image.Rect(0, 0, 32, 32)
	b.Pix[1*32+1] = 1
	b.Pix[20*32+20] = 1

	first, ok := Claim(b, r, discard)
	require.True(t, ok)
	assert.Equal(t, image.Point{X: 1, Y: 1}, first)

	b.Clear(image.Rect(first.X, first.Y, first.X+16, first.Y+16).Intersect(r))

	second, ok := Claim(b, r, discard)
	require.True(t, ok)
	assert.Equal(t, image.Point{X: 20, Y: 20}, second)

	b.Clear(image.Rect(second.X, second.Y, second.X+16, second.Y+16).Intersect(r))

	_, ok = Claim(b, r, discard)
	assert.False(t, ok)
}

func TestClaimBandClippedToRegionBottom(t *testing.T) {
	// Content near the region bottom: the column scan band stops at the
	// region edge rather than reading past it.
	b := claimBuffer(16, 16)
	b.Pix[15*16+7] = 1

	pt, ok := Claim(b, image.Rect(0, 0, 16, 16), discard)
	require.True(t, ok)
	assert.Equal(t, image.Point{X: 7, Y: 15}, pt)
}
