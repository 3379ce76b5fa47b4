package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"strconv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Mikejmoffitt/png2xsp"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "png2xsp"
	app.Usage = "Convert an indexed spritesheet into XSP sprite data"
	app.ArgsUsage = "IMAGE WIDTH HEIGHT OUTNAME [ORIGIN]"
	app.Description = `The spritesheet is chopped into WIDTH x HEIGHT frames. ORIGIN is two
characters placing (0, 0) within a frame: the first is l, c or r for X,
the second is t, c or b for Y. The default is "cc", centering both axes.

Example:

    png2xsp player.png 32 48 out/player cb

chops player.png into 32x48 XOBJ sprites with the origin at the
center-bottom of each frame.`
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "origin-x",
			Value: -1,
			Usage: "origin X in frame pixels, overriding ORIGIN",
		},
		&cli.IntFlag{
			Name:  "origin-y",
			Value: -1,
			Usage: "origin Y in frame pixels, overriding ORIGIN",
		},
		&cli.BoolFlag{
			Name:    "bundle",
			Aliases: []string{"b"},
			Usage:   "write a single .xsb bundle instead of separate files",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = convert

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func convert(c *cli.Context) error {
	if c.NArg() < 4 {
		cli.ShowAppHelpAndExit(c, 1)
	}
	args := c.Args()

	// Frame dimensions accept decimal or hex.
	frameW, err := strconv.ParseInt(args.Get(1), 0, 32)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid frame width %q", args.Get(1)), 1)
	}
	frameH, err := strconv.ParseInt(args.Get(2), 0, 32)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid frame height %q", args.Get(2)), 1)
	}

	cfg := png2xsp.Config{
		FrameWidth:  int(frameW),
		FrameHeight: int(frameH),
		OriginX:     c.Int("origin-x"),
		OriginY:     c.Int("origin-y"),
		OutBase:     args.Get(3),
		Bundle:      c.Bool("bundle"),
	}

	if c.NArg() > 4 {
		x, y, err := png2xsp.ParseOrigin(args.Get(4), cfg.FrameWidth, cfg.FrameHeight)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if cfg.OriginX < 0 {
			cfg.OriginX = x
		}
		if cfg.OriginY < 0 {
			cfg.OriginY = y
		}
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	summary, err := png2xsp.New(logger).ConvertFile(args.First(), cfg)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Println(summary)

	return nil
}
