package pixel

// RGB stores explicit 8-bit color channels, decoupled from the packed
// wire format. Used where effects compose colors before packing.
type RGB struct {
	R, G, B uint8
}

// Packed converts to the RGB565 wire format.
func (c RGB) Packed() uint16 {
	return Pack(c.R, c.G, c.B)
}

// Unpack expands a packed color into 8-bit channels.
func Unpack(c uint16) RGB {
	return RGB{R: R(c), G: G(c), B: B(c)}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGB{}
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
