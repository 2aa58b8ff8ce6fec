package effects

import (
	"testing"

	"github.com/matrixfx/matrixfx/frame"
	"github.com/matrixfx/matrixfx/pixel"
	"github.com/matrixfx/matrixfx/plugin"
)

func TestQuadrantScenario(t *testing.T) {
	ctx := testContext()
	q := &Quadrant{}
	if err := q.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	q.Update(ctx, 0)

	cases := []struct {
		x, y int
		want uint16
		name string
	}{
		{10, 10, pixel.Pack(255, 0, 0), "top-left red"},
		{100, 10, pixel.Pack(0, 255, 0), "top-right green"},
		{10, 100, pixel.Pack(0, 0, 255), "bottom-left blue"},
		{100, 100, pixel.Pack(255, 255, 0), "bottom-right yellow"},
		{63, 63, pixel.Pack(255, 255, 255), "border center"},
	}
	for _, c := range cases {
		if got := ctx.Frame.At(c.x, c.y); got != c.want {
			t.Errorf("Pixel (%d,%d) = %#04x, want %#04x (%s)", c.x, c.y, got, c.want, c.name)
		}
	}
}

func TestQuadrantIdempotent(t *testing.T) {
	ctx := testContext()
	q := &Quadrant{}
	q.Init(ctx)

	q.Update(ctx, 0)
	first := make([]uint16, frame.PixelCount)
	copy(first, ctx.Frame.Pix())

	for i := 0; i < 4; i++ {
		q.Update(ctx, plugin.InputUp|plugin.InputB)
	}
	for i, c := range ctx.Frame.Pix() {
		if c != first[i] {
			t.Fatalf("Repeated updates diverge at pixel %d", i)
		}
	}
}

func TestQuadrantPartitionCoverage(t *testing.T) {
	ctx := testContext()
	q := &Quadrant{}
	q.Init(ctx)
	q.Update(ctx, 0)

	const half = frame.Width / 2
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			got := ctx.Frame.At(x, y)

			onBorder := (x == half-1 || x == half) || (y == half-1 || y == half)
			var want uint16
			switch {
			case onBorder:
				want = pixel.White
			case x < half && y < half:
				want = pixel.Red
			case x >= half && y < half:
				want = pixel.Green
			case x < half && y >= half:
				want = pixel.Blue
			default:
				want = pixel.Yellow
			}
			if got != want {
				t.Fatalf("Pixel (%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestQuadrantBorderWidth(t *testing.T) {
	ctx := testContext()
	q := &Quadrant{}
	q.Init(ctx)
	q.Update(ctx, 0)

	const half = frame.Width / 2
	// Exactly columns 63 and 64 (and rows 63 and 64) are border
	for y := 0; y < frame.Height; y++ {
		if ctx.Frame.At(half-2, y) == pixel.White && y != half-1 && y != half {
			t.Fatalf("Border too wide at column %d, row %d", half-2, y)
		}
		if ctx.Frame.At(half+1, y) == pixel.White && y != half-1 && y != half {
			t.Fatalf("Border too wide at column %d, row %d", half+1, y)
		}
	}
}
