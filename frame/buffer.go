package frame

import "github.com/matrixfx/matrixfx/pixel"

// Display dimensions. The buffer size is fixed at compile time; every
// drawing operation clips to these bounds.
const (
	Width      = 128
	Height     = 128
	PixelCount = Width * Height
)

// Offset returns the row-major linear index for (x, y). Callers must
// pass in-range coordinates; drawing code that iterates the full grid
// uses this with Pix for direct buffer access.
func Offset(x, y int) int {
	return y*Width + x
}

// Buffer is a fixed-size grid of packed RGB565 pixels. The host owns
// exactly one Buffer for the lifetime of a plugin session and lends it
// to the active effect one update call at a time.
type Buffer struct {
	pix [PixelCount]uint16
}

// Pix returns the raw pixel storage. Effects that rewrite the whole
// grid index it with Offset; the presentation layer reads it verbatim.
func (b *Buffer) Pix() []uint16 {
	return b.pix[:]
}

// Set writes one pixel, ignoring out-of-range coordinates.
func (b *Buffer) Set(x, y int, c uint16) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b.pix[y*Width+x] = c
}

// At returns the pixel at (x, y), or black when out of range.
func (b *Buffer) At(x, y int) uint16 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return pixel.Black
	}
	return b.pix[y*Width+x]
}

// Clear fills the entire buffer with one color.
func (b *Buffer) Clear(c uint16) {
	if c == 0 {
		b.pix = [PixelCount]uint16{}
		return
	}
	// Exponential copy
	b.pix[0] = c
	for filled := 1; filled < PixelCount; filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// FillRect fills a rectangle, clipped to the buffer. Zero or negative
// extents fill nothing. The clip is a correctness invariant even for
// callers whose rectangles never leave the grid.
func (b *Buffer) FillRect(x, y, w, h int, c uint16) {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, Width)
	y1 := min(y+h, Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		row := b.pix[py*Width+x0 : py*Width+x1]
		for i := range row {
			row[i] = c
		}
	}
}

// DrawLine draws a Bresenham line between two points, clipping each
// pixel individually so endpoints may lie outside the grid.
func (b *Buffer) DrawLine(x0, y0, x1, y1 int, c uint16) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		b.Set(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm.
// Negative radius draws nothing.
func (b *Buffer) DrawCircle(cx, cy, radius int, c uint16) {
	if radius < 0 {
		return
	}
	x := radius
	y := 0
	decision := 1 - radius

	for x >= y {
		b.Set(cx+x, cy+y, c)
		b.Set(cx-x, cy+y, c)
		b.Set(cx+x, cy-y, c)
		b.Set(cx-x, cy-y, c)
		b.Set(cx+y, cy+x, c)
		b.Set(cx-y, cy+x, c)
		b.Set(cx+y, cy-x, c)
		b.Set(cx-y, cy-x, c)

		y++
		if decision <= 0 {
			decision += 2*y + 1
		} else {
			x--
			decision += 2*(y-x) + 1
		}
	}
}

// Blit copies a w*h block of packed pixels to (x, y), clipped to the
// buffer. src must hold at least w*h values or nothing is drawn.
func (b *Buffer) Blit(x, y, w, h int, src []uint16) {
	if w <= 0 || h <= 0 || len(src) < w*h {
		return
	}
	for sy := 0; sy < h; sy++ {
		dy := y + sy
		if dy < 0 || dy >= Height {
			continue
		}
		for sx := 0; sx < w; sx++ {
			dx := x + sx
			if dx < 0 || dx >= Width {
				continue
			}
			b.pix[dy*Width+dx] = src[sy*w+sx]
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
