// Package effects holds the built-in effect modules. Each registers a
// descriptor from init so hosts can load it by name.
package effects

import (
	"github.com/matrixfx/matrixfx/frame"
	"github.com/matrixfx/matrixfx/pixel"
	"github.com/matrixfx/matrixfx/plugin"
	"github.com/matrixfx/matrixfx/wave"
)

func init() {
	plugin.Register(plugin.Descriptor{
		Magic:      plugin.Magic,
		APIVersion: plugin.APIVersion,
		Name:       "plasma",
		New:        func() plugin.Effect { return &Plasma{} },
	})
}

// Plasma fills every pixel with three phase-shifted wave lookups
// averaged together. The spatial shifts compress resolution for
// smoother gradients; the differing time multipliers decouple the
// three phases so the pattern never repeats a single traveling wave.
type Plasma struct {
	t uint8
}

func (p *Plasma) Init(ctx *plugin.Context) error {
	p.t = 0
	return nil
}

func (p *Plasma) Update(ctx *plugin.Context, _ plugin.Inputs) {
	pix := ctx.Frame.Pix()
	t := p.t

	// Direct buffer access: coordinates stay inside the fixed grid and
	// every angle wraps in uint8, so no index can leave the table or
	// the buffer.
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			v1 := wave.Sin(uint8(x>>1) + t)
			v2 := wave.Sin(uint8(y>>1) + t<<1)
			v3 := wave.Sin(uint8((x+y)>>2) + t*3)
			v := uint8((int(v1) + int(v2) + int(v3)) / 3)

			pix[frame.Offset(x, y)] = pixel.Pack(v, v>>1, 255-v)
		}
	}

	p.t++ // wraps naturally, no reset needed
}

func (p *Plasma) Shutdown() {}
