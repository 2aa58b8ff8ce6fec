// ledshot renders an effect headlessly and writes a frame to a PNG,
// scaled the way the display driver would scale the buffer for a
// larger panel. Useful for eyeballing an effect without a terminal
// that can show it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	_ "github.com/matrixfx/matrixfx/effects" // register built-in effects
	"github.com/matrixfx/matrixfx/frame"
	"github.com/matrixfx/matrixfx/host"
	"github.com/matrixfx/matrixfx/pixel"
	"github.com/matrixfx/matrixfx/plugin"
)

var (
	effectFlag = flag.String("effect", "plasma", "effect to render")
	framesFlag = flag.Int("frames", 120, "updates to run before capturing")
	scaleFlag  = flag.Int("scale", 4, "integer upscale factor")
	outFlag    = flag.String("o", "frame.png", "output file")
	inputsFlag = flag.Uint("inputs", 0, "button bitmask held for every frame")
)

// toImage converts the packed buffer to NRGBA, expanding each channel
// to 8 bits.
func toImage(buf *frame.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	pix := buf.Pix()
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := pixel.Unpack(pix[frame.Offset(x, y)])
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}

func run() error {
	if *framesFlag < 1 || *scaleFlag < 1 {
		return fmt.Errorf("frames and scale must be positive")
	}

	rt := host.New()
	if err := rt.LoadByName(*effectFlag); err != nil {
		return err
	}
	defer rt.Unload()

	in := plugin.Inputs(*inputsFlag)
	for i := 0; i < *framesFlag; i++ {
		if err := rt.Update(in); err != nil {
			return err
		}
	}

	src := toImage(rt.Frame())
	dst := image.NewNRGBA(image.Rect(0, 0, frame.Width**scaleFlag, frame.Height**scaleFlag))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(*outFlag)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ledshot: %v\n", err)
		os.Exit(1)
	}
}
