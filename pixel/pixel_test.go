package pixel

import "testing"

func TestPackKnownValues(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
		{255, 255, 0, 0xFFE0},
		{0, 255, 255, 0x07FF},
		{255, 0, 255, 0xF81F},
	}
	for _, c := range cases {
		if got := Pack(c.r, c.g, c.b); got != c.want {
			t.Errorf("Pack(%d,%d,%d) = %#04x, want %#04x", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestPackTruncates(t *testing.T) {
	// Low bits below the kept channel width must not contribute
	if Pack(7, 3, 7) != 0 {
		t.Errorf("Expected sub-threshold channels to truncate to black, got %#04x", Pack(7, 3, 7))
	}
	if Pack(248, 252, 248) != Pack(255, 255, 255) {
		t.Error("Expected truncation to ignore the dropped low bits")
	}
}

func TestPackedConstantsMatchPack(t *testing.T) {
	if Black != Pack(0, 0, 0) {
		t.Error("Black constant diverges from Pack")
	}
	if White != Pack(255, 255, 255) {
		t.Error("White constant diverges from Pack")
	}
	if Red != Pack(255, 0, 0) || Green != Pack(0, 255, 0) || Blue != Pack(0, 0, 255) {
		t.Error("Primary constants diverge from Pack")
	}
	if Yellow != Pack(255, 255, 0) || Cyan != Pack(0, 255, 255) || Magenta != Pack(255, 0, 255) {
		t.Error("Secondary constants diverge from Pack")
	}
}

func TestRepackIdempotent(t *testing.T) {
	// Packing the expanded channels of an already-packed color must be
	// the identity, for every representable packed value.
	for c := 0; c <= 0xFFFF; c++ {
		p := uint16(c)
		if got := Pack(R(p), G(p), B(p)); got != p {
			t.Fatalf("Repack of %#04x = %#04x, not idempotent", p, got)
		}
	}
}

func TestUnpackRoundTrip(t *testing.T) {
	c := Pack(200, 100, 50)
	rgb := Unpack(c)
	if rgb.Packed() != c {
		t.Errorf("Unpack then Packed = %#04x, want %#04x", rgb.Packed(), c)
	}
	// Expanded channels keep only the stored precision
	if rgb.R != 200&0xF8 || rgb.G != 100&0xFC || rgb.B != 48 {
		t.Errorf("Unexpected expanded channels: %+v", rgb)
	}
}

func TestRGBScale(t *testing.T) {
	c := RGB{200, 100, 50}
	if got := c.Scale(0.5); got.R != 100 || got.G != 50 || got.B != 25 {
		t.Errorf("Scale(0.5) = %+v", got)
	}
	if got := c.Scale(0); got != (RGB{}) {
		t.Errorf("Scale(0) = %+v, want zero", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Scale(2) = %+v, want unchanged", got)
	}
}
