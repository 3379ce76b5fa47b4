/*
Package png2xsp converts an indexed spritesheet image into data for use
with the XSP sprite library for the Sharp X68000.

The sheet is treated as a grid of fixed-size frames. Each frame is chopped
into 16x16 hardware sprite patterns; patterns are deduplicated across the
whole sheet, and FRM/REF metadata records how to reassemble each frame
from its patterns relative to a user-chosen origin. See
https://yosshin4004.github.io/x68k/xsp/index.html for the theory of
operation of XSP itself.
*/
package png2xsp

import (
	"errors"
	"fmt"
	"log"

	"github.com/Mikejmoffitt/png2xsp/record"
)

// Config describes one conversion run.
type Config struct {
	// FrameWidth and FrameHeight are the fixed frame size in pixels.
	FrameWidth  int
	FrameHeight int

	// OriginX and OriginY locate the frame origin in frame-local pixel
	// coordinates. Negative means the frame center.
	OriginX int
	OriginY int

	// OutBase is the output path without extension.
	OutBase string

	// Bundle selects one .xsb file instead of separate streams.
	Bundle bool
}

// Summary reports what a conversion run produced.
type Summary struct {
	Mode     record.Mode
	Patterns int
	Frm      int
	Ref      int
}

func (s *Summary) String() string {
	if s.Mode == record.ModeSP {
		return fmt.Sprintf("%d SP.", s.Patterns)
	}
	return fmt.Sprintf("%d XSP.\n%d FRM.\n%d REF.", s.Patterns, s.Frm, s.Ref)
}

// Converter chops spritesheets. The logger receives diagnostics only;
// pass a discard logger to silence them.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter using the given logger.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}

func (cfg *Config) validate() error {
	if cfg.FrameWidth <= 0 || cfg.FrameHeight <= 0 {
		return fmt.Errorf("invalid frame size %d x %d", cfg.FrameWidth, cfg.FrameHeight)
	}
	if cfg.OutBase == "" {
		return errors.New("missing output name")
	}
	return nil
}

// ParseOrigin converts a two-character origin specifier to frame-local
// pixel coordinates. The first character picks X (l/c/r), the second Y
// (t/c/b); "cb" puts the origin at the center-bottom of the frame.
func ParseOrigin(spec string, frameW, frameH int) (int, int, error) {
	if len(spec) != 2 {
		return 0, 0, fmt.Errorf("invalid origin %q", spec)
	}
	var x, y int
	switch spec[0] {
	case 'l':
		x = 0
	case 'c':
		x = frameW / 2
	case 'r':
		x = frameW
	default:
		return 0, 0, fmt.Errorf("invalid origin %q", spec)
	}
	switch spec[1] {
	case 't':
		y = 0
	case 'c':
		y = frameH / 2
	case 'b':
		y = frameH
	default:
		return 0, 0, fmt.Errorf("invalid origin %q", spec)
	}
	return x, y, nil
}
