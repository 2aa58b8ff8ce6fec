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
		Name:       "ball",
		New:        func() plugin.Effect { return &Ball{} },
	})
}

// Ball bounces a circle off the display edges, tinting it by speed and
// trailing fading echoes behind it. A grows the ball, B shrinks it.
type Ball struct {
	x, y   int
	vx, vy int
	radius int
}

const (
	ballMinRadius = 2
	ballMaxRadius = 32
)

func (e *Ball) Init(ctx *plugin.Context) error {
	e.x, e.y = frame.Width/2, frame.Height/2
	e.vx, e.vy = 2, 3
	e.radius = 8
	return nil
}

func (e *Ball) Update(ctx *plugin.Context, in plugin.Inputs) {
	f := ctx.Frame

	if in.A() && e.radius < ballMaxRadius {
		e.radius++
	}
	if in.B() && e.radius > ballMinRadius {
		e.radius--
	}

	f.Clear(pixel.Black)

	e.x += e.vx
	e.y += e.vy

	if e.x-e.radius <= 0 || e.x+e.radius >= frame.Width {
		e.vx = -e.vx
		e.x = clamp(e.x, e.radius, frame.Width-e.radius)
	}
	if e.y-e.radius <= 0 || e.y+e.radius >= frame.Height {
		e.vy = -e.vy
		e.y = clamp(e.y, e.radius, frame.Height-e.radius)
	}

	speed := abs(e.vx) + abs(e.vy)
	color := pixel.Pack(sat8(speed*30), sat8(200-speed*20), 150)
	f.DrawCircle(e.x, e.y, e.radius, color)

	// Echoes along the reversed velocity, dimming with distance
	for i := 1; i < 4; i++ {
		trail := pixel.Pack(sat8(speed*10/i), uint8(80/i), uint8(60/i))
		f.DrawCircle(e.x-e.vx*i, e.y-e.vy*i, e.radius/2, trail)
	}
}

func (e *Ball) Shutdown() {}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sat8 clamps an int to the 8-bit channel range.
func sat8(v int) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
