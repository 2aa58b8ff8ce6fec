package effects

import (
	"github.com/matrixfx/matrixfx/frame"
	"github.com/matrixfx/matrixfx/pixel"
	"github.com/matrixfx/matrixfx/plugin"
)

func init() {
	plugin.Register(plugin.Descriptor{
		Magic:      plugin.Magic,
		APIVersion: plugin.APIVersion,
		Name:       "quadrant",
		New:        func() plugin.Effect { return &Quadrant{} },
	})
}

// Quadrant draws four static colored panels separated by a 2-pixel
// white border. No animation state: every frame is identical, which
// makes it the display alignment test pattern.
type Quadrant struct{}

func (q *Quadrant) Init(ctx *plugin.Context) error { return nil }

func (q *Quadrant) Update(ctx *plugin.Context, _ plugin.Inputs) {
	f := ctx.Frame
	const half = frame.Width / 2

	f.Clear(pixel.Black)

	f.FillRect(0, 0, half, half, pixel.Red)          // top-left
	f.FillRect(half, 0, half, half, pixel.Green)     // top-right
	f.FillRect(0, half, half, half, pixel.Blue)      // bottom-left
	f.FillRect(half, half, half, half, pixel.Yellow) // bottom-right

	// Border lines last so they stay on top of the panel fills
	f.FillRect(half-1, 0, 2, frame.Height, pixel.White)
	f.FillRect(0, half-1, frame.Width, 2, pixel.White)
}

func (q *Quadrant) Shutdown() {}
