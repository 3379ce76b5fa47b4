/*
Package pcg implements the XSP PCG tile format and pattern table.

A hardware sprite is 16 by 16 pixels, stored as four 8 by 8 sub-tiles in
the order top-left, bottom-left, top-right, bottom-right. Each sub-tile is
32 bytes; a byte holds two 4-bit palette indices with the leftmost pixel in
the high nibble, so a full pattern is 128 bytes.
*/
package pcg

const (
	tileWidth    = 8
	tileHeight   = tileWidth
	tilePixels   = tileWidth * tileHeight
	tileBytes    = tilePixels >> 1
	subTiles     = 4
	spritePixels = 16

	// SpriteSize is the edge length in pixels of one hardware sprite.
	SpriteSize = spritePixels

	// PatternBytes is the encoded size of one pattern.
	PatternBytes = tileBytes * subTiles

	// MaxPatterns is the hard capacity of the pattern table.
	MaxPatterns = 32768
)
