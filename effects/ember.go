package effects

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matrixfx/matrixfx/frame"
	"github.com/matrixfx/matrixfx/pixel"
	"github.com/matrixfx/matrixfx/plugin"
)

func init() {
	plugin.Register(plugin.Descriptor{
		Magic:      plugin.Magic,
		APIVersion: plugin.APIVersion,
		Name:       "ember",
		New:        func() plugin.Effect { return &Ember{} },
	})
}

// Ember is a heat-diffusion fire. A per-cell heat field is seeded hot
// along the bottom row, cooled by host randomness, and averaged upward
// each frame; heat indexes a palette ramp from black through red and
// yellow to near-white. Start flares the base to full heat.
//
// Palette and field live in the instance, so Init is the only
// allocation point and Update stays allocation-free.
type Ember struct {
	palette [256]uint16
	heat    [frame.PixelCount]uint8
}

func (e *Ember) Init(ctx *plugin.Context) error {
	for i := range e.palette {
		t := float64(i) / 255
		hue := 60 * t
		sat := 1.0
		if i > 192 {
			// Hottest band bleaches toward white
			sat = 1 - float64(i-192)/63*0.6
		}
		val := math.Min(1, t*2.2)

		r, g, b := colorful.Hsv(hue, sat, val).RGB255()
		e.palette[i] = pixel.Pack(r, g, b)
	}
	e.heat = [frame.PixelCount]uint8{}
	return nil
}

func (e *Ember) Update(ctx *plugin.Context, in plugin.Inputs) {
	sys := ctx.Sys

	// Seed the base row with fresh heat
	base := (frame.Height - 1) * frame.Width
	for x := 0; x < frame.Width; x++ {
		if in.Start() {
			e.heat[base+x] = 255
			continue
		}
		e.heat[base+x] = uint8(160 + sys.Random()%96)
	}

	// Diffuse upward: each cell averages the three cells below it,
	// minus a random cooling term
	for y := 0; y < frame.Height-1; y++ {
		row := y * frame.Width
		below := row + frame.Width
		for x := 0; x < frame.Width; x++ {
			left := max(x-1, 0)
			right := min(x+1, frame.Width-1)
			sum := int(e.heat[below+left]) + int(e.heat[below+x]) + int(e.heat[below+right])
			h := sum / 3

			cooling := int(sys.Random() & 3)
			if h > cooling {
				h -= cooling
			} else {
				h = 0
			}
			e.heat[row+x] = uint8(h)
		}
	}

	pix := ctx.Frame.Pix()
	for i := range pix {
		pix[i] = e.palette[e.heat[i]]
	}
}

func (e *Ember) Shutdown() {}
